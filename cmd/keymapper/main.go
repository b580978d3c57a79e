package main

import (
	"context"
	"runtime"

	"github.com/keymapper-dev/keymapper/internal/cli/cmd"
	"github.com/keymapper-dev/keymapper/internal/domain/build"
	"github.com/keymapper-dev/keymapper/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	prepareCrashDumps(logging.WithContext(context.Background(), logging.NewFromEnv()))

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	cmd.Execute()
}
