package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/studentsync/internal/models"
	recordservice "github.com/thenoetrevino/studentsync/internal/services/record"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, or any error that doesn't fit the specific
	// categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Malformed --set values, bad position arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested record was not found.
	// Use for: Positions that resolve to a missing id or fall outside the listing.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Unknown collections or fields, missing filters, collections
	// without a selector.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code for a failed command
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// UsageError wraps err with ExitUsage
func UsageError(format string, args ...any) error {
	return &ExitCodeError{Code: ExitUsage, Err: fmt.Errorf(format, args...)}
}

// ExitCodeFor maps an error returned by a command to its exit code
func ExitCodeFor(err error) int {
	var exitErr *ExitCodeError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrPositionOutOfRange):
		return ExitNotFound
	case errors.Is(err, models.ErrUnknownCollection),
		errors.Is(err, models.ErrUnknownField),
		errors.Is(err, models.ErrNotSelectable),
		errors.Is(err, recordservice.ErrMissingFilter),
		errors.Is(err, recordservice.ErrNoValues):
		return ExitValidation
	default:
		return ExitError
	}
}

// ErrorCode returns the machine-readable code reported in JSON errors
func ErrorCode(err error) string {
	switch ExitCodeFor(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitValidation:
		return "VALIDATION_ERROR"
	default:
		return "ERROR"
	}
}

// reportedError marks an error that has already been written for the user
type reportedError struct {
	error
}

func (e *reportedError) Unwrap() error {
	return e.error
}

// Reported marks err as already shown to the user
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err}
}

// IsReported reports whether err was already shown to the user
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}
