package cli

import (
	"fmt"
)

// UsageError signals that the user invoked a [Command] incorrectly, and should be shown its usage.
// Check for it with errors.Is(err, &UsageError{}).
type UsageError struct {
	wrapped error
}

func (e *UsageError) Error() string {
	if e.wrapped == nil {
		return "usage error"
	}
	return "usage error: " + e.wrapped.Error()
}

// Is matches any *UsageError, regardless of what it wraps.
func (e *UsageError) Is(err error) bool {
	_, ok := err.(*UsageError)
	return ok
}

func (e *UsageError) Unwrap() error {
	return e.wrapped
}

// NewUsageError creates a [UsageError] wrapping fmt.Errorf(format, args...).
func NewUsageError(format string, args ...any) error {
	return &UsageError{wrapped: fmt.Errorf(format, args...)}
}
