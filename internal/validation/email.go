// Package validation adapts go-playground/validator to the domain.
package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/msomdec/signup-api/internal/domain"
)

var _ domain.EmailValidator = (*EmailValidatorAdapter)(nil)

// EmailValidatorAdapter checks email syntax with go-playground/validator.
// A validator.Validate caches rule parsing and is safe for concurrent use.
type EmailValidatorAdapter struct {
	validate *validator.Validate
}

// NewEmailValidatorAdapter creates an EmailValidatorAdapter.
func NewEmailValidatorAdapter() *EmailValidatorAdapter {
	return &EmailValidatorAdapter{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// IsValid reports whether email is a well-formed address.
func (a *EmailValidatorAdapter) IsValid(email string) bool {
	return a.validate.Var(email, "required,email") == nil
}
