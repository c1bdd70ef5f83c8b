package services

import (
	"errors"
	"fmt"
)

// ValidationError communicates a rule violation back to HTTP handlers.
type ValidationError struct {
	message string
}

func (e ValidationError) Error() string { return e.message }

func invalid(format string, args ...any) error {
	return ValidationError{message: fmt.Sprintf(format, args...)}
}

// IsValidation separates business rule failures from infrastructure ones.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrEmailTaken         = errors.New("email already registered")
)
