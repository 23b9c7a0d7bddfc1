// Package common defines errors and helpers shared by the client layers.
// Callers should match errors with errors.Is / errors.As.
package common

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation error")

	// ErrNotLoggedIn is returned when an operation needs an identity and
	// the session is anonymous.
	ErrNotLoggedIn = errors.New("user not logged in")
)

// ValidationError is a client-side input failure detected before any
// request leaves the process.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
