package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_IsAndMessage(t *testing.T) {
	err := Invalid("partner_code", "must match %s", "[A-Z0-9_]+")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected errors.Is(err, ErrValidation)")
	}
	if got, want := err.Error(), "partner_code: must match [A-Z0-9_]+"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}

	wrapped := fmt.Errorf("create: %w", err)
	var ve *ValidationError
	if !errors.As(wrapped, &ve) || ve.Field != "partner_code" {
		t.Fatalf("errors.As failed: %+v", ve)
	}

	bare := &ValidationError{Message: "company name is required"}
	if bare.Error() != "company name is required" {
		t.Fatalf("Error() = %q", bare.Error())
	}
}

func TestUnknown_WrapsInvalidConfiguration(t *testing.T) {
	err := Unknown("tank", "9000")
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
	if errors.Is(err, ErrValidation) {
		t.Fatalf("unknown catalog key must not be a validation error")
	}
}
