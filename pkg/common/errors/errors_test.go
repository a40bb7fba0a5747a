package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrClosed", ErrClosed, "component is closed"},
		{"ErrTimeout", ErrTimeout, "operation timed out"},
		{"ErrExhausted", ErrExhausted, "no resources available"},
		{"ErrNotFound", ErrNotFound, "not registered"},
		{"ErrDuplicate", ErrDuplicate, "already registered"},
		{"ErrNoStrategy", ErrNoStrategy, "no strategy assigned"},
		{"ErrForeignResource", ErrForeignResource, "resource does not belong to this pool"},
		{"ErrInvalidConfiguration", ErrInvalidConfiguration, "invalid configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("error should not be nil")
			}
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"timeout error", ErrTimeout, true},
		{"exhausted error", ErrExhausted, true},
		{"closed error", ErrClosed, false},
		{"not found error", ErrNotFound, false},
		{"wrapped timeout", fmt.Errorf("pool: %w", ErrTimeout), true},
		{"wrapped exhausted", fmt.Errorf("pool: %w", ErrExhausted), true},
		{"random error", errors.New("random"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsTemporary(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"timeout error", ErrTimeout, true},
		{"exhausted error", ErrExhausted, true},
		{"duplicate error", ErrDuplicate, false},
		{"closed error", ErrClosed, false},
		{"random error", errors.New("random"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTemporary(tt.err); got != tt.want {
				t.Errorf("IsTemporary() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "without hint",
			err: &ValidationError{
				Module: "pool",
				Field:  "capacity",
				Value:  -1,
				Reason: "must be positive",
			},
			want: "pool: capacity must be positive (got -1)",
		},
		{
			name: "with hint",
			err: &ValidationError{
				Module: "pool",
				Field:  "capacity",
				Value:  0,
				Reason: "must be positive",
				Hint:   "value must be greater than 0",
			},
			want: "pool: capacity must be positive (got 0): value must be greater than 0",
		},
		{
			name: "string value",
			err: &ValidationError{
				Module: "factory",
				Field:  "name",
				Value:  "",
				Reason: "cannot be empty",
			},
			want: "factory: name cannot be empty (got )",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	verr := NewValidationError("pool", "capacity", 0, "must be positive")

	if verr.Unwrap() != ErrInvalidConfiguration {
		t.Errorf("Unwrap() = %v, want ErrInvalidConfiguration", verr.Unwrap())
	}
	if !errors.Is(verr, ErrInvalidConfiguration) {
		t.Error("ValidationError should match ErrInvalidConfiguration via errors.Is")
	}

	var target *ValidationError
	if !errors.As(fmt.Errorf("wrapped: %w", verr), &target) {
		t.Error("errors.As should find ValidationError through wrapping")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("strategy", "name", 123, "test reason")

	if err.Module != "strategy" {
		t.Errorf("Module = %q, want %q", err.Module, "strategy")
	}
	if err.Field != "name" {
		t.Errorf("Field = %q, want %q", err.Field, "name")
	}
	if err.Value != 123 {
		t.Errorf("Value = %v, want %v", err.Value, 123)
	}
	if err.Reason != "test reason" {
		t.Errorf("Reason = %q, want %q", err.Reason, "test reason")
	}
	if err.Hint != "" {
		t.Errorf("Hint = %q, want empty string", err.Hint)
	}
}

func TestValidationError_WithHint(t *testing.T) {
	err := NewValidationError("pool", "constructor", nil, "cannot be nil").
		WithHint("provide a constructor function")

	if err.Hint != "provide a constructor function" {
		t.Errorf("Hint = %q, want %q", err.Hint, "provide a constructor function")
	}

	// Should return the same instance for chaining
	if result := err.WithHint("new hint"); result != err {
		t.Error("WithHint should return the same instance")
	}
}

func TestValidationErrorMessageComponents(t *testing.T) {
	err := NewValidationError("observer", "observer", nil, "cannot be nil").
		WithHint("provide a valid observer")

	msg := err.Error()
	for _, part := range []string{"observer", "cannot be nil", "provide a valid observer"} {
		if !strings.Contains(msg, part) {
			t.Errorf("error message should contain %q, got %q", part, msg)
		}
	}
}
