package validation

import (
	"errors"
	"testing"

	gperrors "github.com/vnykmshr/gopatterns/pkg/common/errors"
)

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		wantError bool
	}{
		{"positive value", 10, false},
		{"positive value 1", 1, false},
		{"zero value", 0, true},
		{"negative value", -1, true},
		{"large positive", 1000000, false},
		{"large negative", -1000000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositive("test", "count", tt.value)

			if tt.wantError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, gperrors.ErrInvalidConfiguration) {
					t.Errorf("expected ErrInvalidConfiguration, got %v", err)
				}
			} else if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateNonNegative(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		wantError bool
	}{
		{"positive value", 10.5, false},
		{"zero value", 0.0, false},
		{"negative value", -1.5, true},
		{"small positive", 0.001, false},
		{"small negative", -0.001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNonNegative("test", "rate", tt.value)

			if tt.wantError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, gperrors.ErrInvalidConfiguration) {
					t.Errorf("expected ErrInvalidConfiguration, got %v", err)
				}
			} else if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateNotNil(t *testing.T) {
	tests := []struct {
		name      string
		value     interface{}
		wantError bool
	}{
		{"non-nil int", 123, false},
		{"non-nil string", "value", false},
		{"non-nil struct", struct{}{}, false},
		{"non-nil pointer", new(int), false},
		{"non-nil slice", []int{}, false},
		{"nil value", nil, true},
		{"typed nil pointer", (*int)(nil), false}, // typed nil is not a nil interface
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNotNil("test", "config", tt.value)

			if tt.wantError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, gperrors.ErrInvalidConfiguration) {
					t.Errorf("expected ErrInvalidConfiguration, got %v", err)
				}
			} else if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateNotEmpty(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantError bool
	}{
		{"non-empty string", "value", false},
		{"single char", "a", false},
		{"whitespace", " ", false}, // whitespace is not empty
		{"empty string", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNotEmpty("test", "name", tt.value)

			if tt.wantError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, gperrors.ErrInvalidConfiguration) {
					t.Errorf("expected ErrInvalidConfiguration, got %v", err)
				}
			} else if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidationErrorDetails(t *testing.T) {
	t.Run("ValidatePositive error details", func(t *testing.T) {
		err := ValidatePositive("pool", "capacity", -5)
		if err == nil {
			t.Fatal("expected error")
		}

		var valErr *gperrors.ValidationError
		if !errors.As(err, &valErr) {
			t.Fatal("expected ValidationError")
		}

		if valErr.Module != "pool" {
			t.Errorf("Module = %q, want %q", valErr.Module, "pool")
		}
		if valErr.Field != "capacity" {
			t.Errorf("Field = %q, want %q", valErr.Field, "capacity")
		}
		if valErr.Value != -5 {
			t.Errorf("Value = %v, want %v", valErr.Value, -5)
		}
		if valErr.Reason != "must be positive" {
			t.Errorf("Reason = %q, want %q", valErr.Reason, "must be positive")
		}
		if valErr.Hint != "value must be greater than 0" {
			t.Errorf("Hint = %q, want %q", valErr.Hint, "value must be greater than 0")
		}
	})

	t.Run("ValidateNotNil error details", func(t *testing.T) {
		err := ValidateNotNil("observer", "observer", nil)
		if err == nil {
			t.Fatal("expected error")
		}

		var valErr *gperrors.ValidationError
		if !errors.As(err, &valErr) {
			t.Fatal("expected ValidationError")
		}
		if valErr.Reason != "cannot be nil" {
			t.Errorf("Reason = %q, want %q", valErr.Reason, "cannot be nil")
		}
		if valErr.Hint != "provide a valid observer" {
			t.Errorf("Hint = %q, want %q", valErr.Hint, "provide a valid observer")
		}
	})

	t.Run("ValidateNotEmpty error details", func(t *testing.T) {
		err := ValidateNotEmpty("factory", "name", "")
		if err == nil {
			t.Fatal("expected error")
		}

		var valErr *gperrors.ValidationError
		if !errors.As(err, &valErr) {
			t.Fatal("expected ValidationError")
		}
		if valErr.Reason != "cannot be empty" {
			t.Errorf("Reason = %q, want %q", valErr.Reason, "cannot be empty")
		}
		if valErr.Hint != "provide a non-empty name" {
			t.Errorf("Hint = %q, want %q", valErr.Hint, "provide a non-empty name")
		}
	})
}

func TestValidationErrorWrapping(t *testing.T) {
	testCases := []struct {
		name string
		err  error
	}{
		{"ValidatePositive", ValidatePositive("test", "field", -1)},
		{"ValidateNonNegative", ValidateNonNegative("test", "field", -1.0)},
		{"ValidateNotNil", ValidateNotNil("test", "field", nil)},
		{"ValidateNotEmpty", ValidateNotEmpty("test", "field", "")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(tc.err, gperrors.ErrInvalidConfiguration) {
				t.Error("validation errors should wrap ErrInvalidConfiguration")
			}
		})
	}
}
