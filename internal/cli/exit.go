package cli

import (
	"errors"

	"github.com/katalvlaran/gausstrace/gauss"
	"github.com/katalvlaran/gausstrace/internal/config"
	"github.com/katalvlaran/gausstrace/internal/input"
	"github.com/katalvlaran/gausstrace/render"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitUnsolved = 1 // singular, unstable, or an I/O failure
	ExitUsage    = 2 // bad input, flags or configuration
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case gauss.IsInputError(err),
		errors.Is(err, config.ErrInvalid),
		errors.Is(err, input.ErrNoRows),
		errors.Is(err, input.ErrMalformed),
		errors.Is(err, render.ErrUnknownFormat):
		return ExitUsage
	default:
		return ExitUnsolved
	}
}
