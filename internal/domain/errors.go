package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned when a value type is built from malformed input.
	ErrValidation = errors.New("invalid value")

	// ErrNotFound is returned when a contact or phone number does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientArguments is returned when an operation receives fewer
	// positional values than it requires.
	ErrInsufficientArguments = errors.New("not enough arguments")
)

// DomainError wraps one of the sentinel errors with a human-readable message.
type DomainError struct {
	// Base is the sentinel (ErrValidation, ErrNotFound, ...).
	Base error

	// Message is shown to the user as-is.
	Message string

	// Field names the offending value for validation errors.
	Field string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Base.Error())
	}
	return e.Base.Error()
}

// Unwrap returns the base error for errors.Is/As support.
func (e *DomainError) Unwrap() error { return e.Base }

// NewValidationError creates a validation error for field. An empty message
// renders as "<field>: invalid value".
func NewValidationError(field, message string) *DomainError {
	return &DomainError{Base: ErrValidation, Message: message, Field: field}
}

// NewNotFoundError creates a not-found error with a user-facing message.
func NewNotFoundError(message string) *DomainError {
	return &DomainError{Base: ErrNotFound, Message: message}
}

// NewContactNotFoundError reports a name missing from the book.
func NewContactNotFoundError(name string) *DomainError {
	return NewNotFoundError(fmt.Sprintf("Contact '%s' not found.", name))
}

// NewInsufficientArgumentsError reports that usage needs want values but got fewer.
func NewInsufficientArgumentsError(usage string, want, got int) *DomainError {
	return &DomainError{
		Base:    ErrInsufficientArguments,
		Message: fmt.Sprintf("%s needs %d argument(s), got %d", usage, want, got),
	}
}

// IsValidationError reports whether err is a validation error.
func IsValidationError(err error) bool { return errors.Is(err, ErrValidation) }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsInsufficientArguments reports whether err is an argument-count error.
func IsInsufficientArguments(err error) bool { return errors.Is(err, ErrInsufficientArguments) }
