package cli

import (
	"errors"
	"fmt"
)

// UsageError signals that a command was invoked incorrectly, and that its usage should be shown to the user.
// [CommandSet.Exec] records which command failed in Command.
type UsageError struct {
	Command string
	wrapped error
}

func (e *UsageError) Error() string {
	prefix := "usage error"
	if len(e.Command) > 0 {
		prefix = fmt.Sprintf("usage error in '%s'", e.Command)
	}
	if e.wrapped == nil {
		return prefix
	}
	return prefix + ": " + e.wrapped.Error()
}

// Is matches any [*UsageError], so errors.Is(err, new(UsageError)) detects usage errors.
func (e *UsageError) Is(err error) bool {
	_, ok := err.(*UsageError)
	return ok
}

func (e *UsageError) Unwrap() error {
	return e.wrapped
}

// NewUsageError creates a [UsageError] that isn't attributed to a command yet.
// The format and args parameters are passed to [fmt.Errorf] to create the underlying error.
func NewUsageError(format string, args ...any) error {
	return &UsageError{wrapped: fmt.Errorf(format, args...)}
}

// attribute sets the command of a [UsageError] in err's chain, unless one is already set.
func attribute(err error, command string) {
	var uerr *UsageError
	if errors.As(err, &uerr) && len(uerr.Command) == 0 {
		uerr.Command = command
	}
}
