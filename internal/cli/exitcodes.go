package cli

import (
	"errors"
)

// Exit codes for sexpr.
const (
	// ExitSuccess indicates every input was read successfully.
	ExitSuccess = 0

	// ExitParseError indicates malformed input.
	ExitParseError = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Error classes used to pick an exit code.
var (
	ErrUsage = errors.New("invalid usage")
	ErrIO    = errors.New("i/o error")
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrIO):
		return ExitIOError
	default:
		return ExitParseError
	}
}
