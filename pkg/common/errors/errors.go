package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the gopatterns library

var (
	// ErrClosed indicates that an operation was attempted on a closed component
	ErrClosed = errors.New("component is closed")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")

	// ErrExhausted indicates that no pooled resource was available
	ErrExhausted = errors.New("no resources available")

	// ErrNotFound indicates that a named entry is not registered
	ErrNotFound = errors.New("not registered")

	// ErrDuplicate indicates that a name is already registered
	ErrDuplicate = errors.New("already registered")

	// ErrNoStrategy indicates that a context has no strategy assigned
	ErrNoStrategy = errors.New("no strategy assigned")

	// ErrForeignResource indicates a release of a resource the pool does not own
	ErrForeignResource = errors.New("resource does not belong to this pool")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// IsRetryable returns true if the error indicates a condition that might
// be resolved by retrying the operation
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrExhausted)
}

// IsTemporary returns true if the error indicates a temporary condition
func IsTemporary(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrExhausted)
}

// ValidationError describes a rejected configuration value. It unwraps to
// ErrInvalidConfiguration so callers can match with errors.Is.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// NewValidationError creates a ValidationError for the given module and field.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a remediation hint and returns the error for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s %s (got %v)", e.Module, e.Field, e.Reason, e.Value)
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}
