// Package errors provides domain-specific error types and sentinel errors
// for improved error handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrNotFound indicates a requested table entry was not found.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput indicates the dialog event is malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownIntent indicates the dialog manager sent an intent this bot
	// was never configured to fulfill. It is not recoverable by re-prompting.
	ErrUnknownIntent = errors.New("unknown intent")

	// ErrRateLimitExceeded indicates rate limit has been exceeded.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
)

// ValidationError represents input validation failures.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidInput.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// UnknownIntentError carries the intent name that could not be routed.
type UnknownIntentError struct {
	Intent string
}

func (e *UnknownIntentError) Error() string {
	return fmt.Sprintf("intent with name %s not supported", e.Intent)
}

func (e *UnknownIntentError) Unwrap() error {
	return ErrUnknownIntent
}

// NewUnknownIntentError creates a new unknown intent error.
func NewUnknownIntentError(intent string) *UnknownIntentError {
	return &UnknownIntentError{Intent: intent}
}

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInput reports whether err is or wraps ErrInvalidInput.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnknownIntent reports whether err is or wraps ErrUnknownIntent.
func IsUnknownIntent(err error) bool {
	return errors.Is(err, ErrUnknownIntent)
}

// IsRateLimitExceeded reports whether err is or wraps ErrRateLimitExceeded.
func IsRateLimitExceeded(err error) bool {
	return errors.Is(err, ErrRateLimitExceeded)
}
