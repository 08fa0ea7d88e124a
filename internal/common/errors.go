package common

import "errors"

// Sentinel errors for the resource operations. Handlers translate
// these into the HTTP error envelope; nothing else escapes the
// endpoint boundary.
var (
	ErrUnauthenticated = errors.New("unauthorized")
	ErrInvalidInput    = errors.New("missing id")
	ErrNotFound        = errors.New("not found")
)

// ValidationError reports a request body that fails the entity's
// field schema. It is a separate channel from ErrInvalidInput so a
// schema rejection never reads like a domain failure.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
