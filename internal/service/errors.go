package service

import (
	"errors"

	"github.com/vinay461as/recipi-api/internal/validators"
)

var (
	// ErrValidation is the sentinel every ValidationError unwraps to.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials covers every token-issuance failure: unknown
	// email, wrong password, deactivated account. Callers cannot distinguish
	// which one occurred.
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)

// ValidationError carries per-field problem descriptions for a rejected
// payload. It unwraps to ErrValidation so callers can branch with errors.Is
// without losing the field detail.
type ValidationError struct {
	Fields validators.FieldErrors
}

func (e *ValidationError) Error() string {
	return e.Fields.Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// newFieldError builds a ValidationError for a single offending field.
func newFieldError(field, problem string) *ValidationError {
	return &ValidationError{Fields: validators.FieldErrors{field: problem}}
}
