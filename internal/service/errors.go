package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrExternalService is returned when an external service call fails.
	ErrExternalService = errors.New("external service error")
	// ErrRateLimited is returned when an external service signals rate limiting.
	ErrRateLimited = errors.New("rate limited")
	// ErrInvalidState is returned when an operation cannot proceed from the
	// current state, e.g. a transcript that cleans down to nothing.
	ErrInvalidState = errors.New("invalid state")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// notFound tags err as ErrNotFound while keeping the entity name in the
// message, so use cases never leak storage vocabulary.
func notFound(entity string) error {
	return fmt.Errorf("%s: %w", entity, ErrNotFound)
}
