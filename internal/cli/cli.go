// Package cli provides the process-level glue shared by all diagnostic
// programs: logging setup, the mapping of errors to exit codes and optional
// profiling.
package cli

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ErrUsage is an error that occurs when a program is called with missing or
// invalid arguments. No I/O is performed in that case.
var ErrUsage = errors.New("usage error")

// SetupLogging installs the default logger. Logs go to standard error, as
// standard output is reserved for the measurements.
func SetupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

// ExitCode maps the outcome of a program to its exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitUsage
	default:
		return ExitFailure
	}
}
