package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// UsageError indicates a user-facing mistake in args or flags (exit code 2).
type UsageError struct {
	Err error
}

func (e UsageError) Error() string { return e.Err.Error() }
func (e UsageError) Unwrap() error { return e.Err }
func (e UsageError) ExitCode() int { return 2 }

func usageErrorf(format string, args ...any) UsageError {
	return UsageError{Err: fmt.Errorf(format, args...)}
}

// usageArgs wraps a cobra args validator so that its errors are UsageErrors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return UsageError{Err: err}
		}
		return nil
	}
}

func flagUsageError(_ *cobra.Command, err error) error {
	return UsageError{Err: err}
}

// exitCode returns 0 for nil, 2 for a UsageError, and 1 otherwise.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var usage UsageError
	if errors.As(err, &usage) {
		return usage.ExitCode()
	}
	return 1
}
