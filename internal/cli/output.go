package cli

import (
	"errors"
	"fmt"
	"io"
)

// Exit codes for the command.
const (
	ExitSuccess      = 0 // All checks passed
	ExitFailure      = 1 // One or more checks failed
	ExitCommandError = 2 // Command error (bad flags, unreadable or invalid config, etc.)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitCommandError if the error is not an
// ExitError, since those come from cobra itself (unknown flags and the like).
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// reportError writes err to w unless it only signals failed checks, which
// the summary already reported.
func reportError(w io.Writer, err error) {
	if GetExitCode(err) == ExitFailure {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
