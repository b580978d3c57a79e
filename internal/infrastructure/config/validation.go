package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/keymapper-dev/keymapper/internal/logging"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// FieldError describes one configuration value that failed validation.
type FieldError struct {
	Key    string
	Value  any
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s (got: %v)", e.Key, e.Reason, e.Value)
}

var (
	logFormats = []string{"console", "json"}
	yamlExts   = []string{".yaml", ".yml"}
)

// validateConfig checks every value and reports all failures at once.
func validateConfig(cfg *Config) error {
	var problems []error
	check := func(ok bool, key string, value any, reason string) {
		if !ok {
			problems = append(problems, &FieldError{Key: key, Value: value, Reason: reason})
		}
	}

	_, levelOK := logging.ParseLevel(cfg.Logging.Level)
	check(levelOK, "logging.level", cfg.Logging.Level,
		"must be one of: trace, debug, info, warn, error, disabled")
	check(slices.Contains(logFormats, cfg.Logging.Format), "logging.format", cfg.Logging.Format,
		"must be one of: "+strings.Join(logFormats, ", "))

	seconds := cfg.Record.CountdownSeconds
	check(seconds >= minCountdownSeconds && seconds <= maxCountdownSeconds,
		"record.countdown_seconds", seconds,
		fmt.Sprintf("must be between %d and %d", minCountdownSeconds, maxCountdownSeconds))

	check(isYAMLPath(cfg.KeyMaps.File), "keymaps.file", cfg.KeyMaps.File, "must be a .yaml or .yml file")
	check(isYAMLPath(cfg.Device.Profile), "device.profile", cfg.Device.Profile, "must be a .yaml or .yml file")

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w:\n  - %w", ErrInvalidConfig, joinLines(problems))
}

// isYAMLPath accepts empty paths, which select the default.
func isYAMLPath(path string) bool {
	if path == "" {
		return true
	}
	return slices.Contains(yamlExts, strings.ToLower(filepath.Ext(path)))
}

type lineErrors []error

func (l lineErrors) Error() string {
	msgs := make([]string, len(l))
	for i, err := range l {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n  - ")
}

func (l lineErrors) Unwrap() []error { return l }

func joinLines(errs []error) error { return lineErrors(errs) }
