package apperrors

import (
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess      = 0 // Indicates successful execution.
	ExitErrorGeneric = 1 // Indicates a generic error.
	ExitErrorConfig  = 4 // Indicates a configuration error.
)

// ConfigError represents a user configuration error, such as a missing or
// malformed worker count. It indicates that the application cannot proceed
// and that nothing has been computed.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// WorkerError records a fault raised inside one parallel worker. The fault is
// isolated to that worker: it never aborts its siblings or the aggregation.
type WorkerError struct {
	// WorkerID is the index of the faulted worker.
	WorkerID int
	// Cause is the underlying error or the recovered panic value.
	Cause error
	// Stack is the goroutine stack captured when the fault was recovered.
	Stack []byte
}

// Error returns a message naming the worker and its cause.
func (e WorkerError) Error() string {
	return fmt.Sprintf("worker %d: %v", e.WorkerID, e.Cause)
}

// Unwrap returns the original cause, allowing for error chain inspection.
func (e WorkerError) Unwrap() error { return e.Cause }

// NewWorkerError builds a WorkerError from a value recovered from a panic.
// Error values are kept as the cause; anything else is formatted.
func NewWorkerError(workerID int, recovered any, stack []byte) WorkerError {
	cause, ok := recovered.(error)
	if !ok {
		cause = fmt.Errorf("panic: %v", recovered)
	}
	return WorkerError{WorkerID: workerID, Cause: cause, Stack: stack}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsConfigError reports whether err is, or wraps, a ConfigError.
func IsConfigError(err error) bool {
	var ce ConfigError
	return errors.As(err, &ce)
}

// ExitCode maps an error returned by application setup to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case IsConfigError(err):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
