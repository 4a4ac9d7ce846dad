package cli

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/handoff/internal/domain/backlog"
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts known domain errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var nfErr *backlog.NotFoundError
	if errors.As(err, &nfErr) {
		return NewCLIError(
			nfErr.Error(),
			"Run 'handoff stats' to see what the backlog contains",
			err,
		)
	}

	var emptyErr *backlog.EmptyCollectionError
	if errors.As(err, &emptyErr) {
		return NewCLIError(
			emptyErr.Error(),
			"Nothing to export yet — add tasks under this target first",
			err,
		)
	}

	var transErr *backlog.TransitionError
	if errors.As(err, &transErr) {
		return NewCLIError(
			transErr.Error(),
			fmt.Sprintf("Valid events from %q: %v", transErr.FromStatus, transErr.FromStatus.ValidEvents()),
			err,
		)
	}

	return err
}

// printHint writes the hint of a CLIError, if any, after the error itself.
func printHint(err error) {
	var cliErr *CLIError
	if errors.As(err, &cliErr) && cliErr.Hint != "" {
		fmt.Printf("Hint: %s\n", cliErr.Hint)
	}
}
