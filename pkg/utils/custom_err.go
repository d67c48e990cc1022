package utils

import (
	"errors"
	"fmt"
)

var (
	ErrDatabaseError = errors.New("database error")

	// chat pipeline
	ErrRateLimitExceeded   = errors.New("rate limit exceeded")
	ErrValidationFailed    = errors.New("validation failed")
	ErrProviderUnavailable = errors.New("language model provider unavailable")
	ErrPersistenceFailed   = errors.New("failed to persist chat exchange")
	ErrInternal            = errors.New("internal error")

	// catalog
	ErrDestinationNotFound = errors.New("destination not found")

	// accounts
	ErrAccountNotFound     = errors.New("account not found")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrPasswordTooShort    = errors.New("password too short")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRequestInput = errors.New("invalid request input")
)

// Validation rejection reasons.
const (
	ReasonNotAString       = "not_a_string"
	ReasonEmpty            = "empty"
	ReasonTooLong          = "too_long"
	ReasonForbiddenPattern = "forbidden_pattern"
)

// ValidationError is returned by the input validator. It matches
// ErrValidationFailed under errors.Is.
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
