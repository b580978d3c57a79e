//go:build linux || darwin

package main

import (
	"context"
	"runtime/debug"
	"strconv"

	"github.com/keymapper-dev/keymapper/internal/logging"
	"golang.org/x/sys/unix"
)

// prepareCrashDumps asks for a full goroutine dump on fatal errors and lifts
// the soft core file limit up to the hard one.
func prepareCrashDumps(ctx context.Context) {
	debug.SetTraceback("crash")
	log := logging.FromContext(ctx)

	var lim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_CORE, &lim); err != nil {
		log.Debug().Err(err).Msg("core limit unavailable")
		return
	}

	before := lim.Cur
	if lim.Cur < lim.Max {
		lim.Cur = lim.Max
		if err := unix.Setrlimit(unix.RLIMIT_CORE, &lim); err != nil {
			log.Debug().Err(err).Msg("raise core limit")
			lim.Cur = before
		}
	}

	log.Debug().
		Str("was", formatLimit(before)).
		Str("soft", formatLimit(lim.Cur)).
		Str("hard", formatLimit(lim.Max)).
		Msg("core file limit")
}

func formatLimit(v uint64) string {
	if v == unix.RLIM_INFINITY {
		return "unlimited"
	}
	return strconv.FormatUint(v, 10)
}
