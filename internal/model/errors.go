package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity or blob does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError indicates a missing or malformed required field.
type ValidationError struct {
	msg string
}

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.msg
}
