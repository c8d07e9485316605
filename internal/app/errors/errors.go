package errors

import (
	"fmt"
)

// Provider registry errors
var (
	// ErrMissingCredential means the secret a provider requires is absent or blank.
	ErrMissingCredential = New("credential not configured")

	// ErrUnknownProvider means an identifier has no catalog entry or construction case.
	ErrUnknownProvider = New("unknown provider")

	// ErrConstructionFailure wraps any error raised by a provider client constructor.
	ErrConstructionFailure = New("provider construction failed")

	// ErrRegistryUninitialized is returned when the provider set is read before it was built.
	ErrRegistryUninitialized = New("provider registry not initialized")
)

// Configuration errors
var (
	ErrInvalidConfig = New("invalid configuration")
)

// Error represents a standardized error
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// Kind attaches a sentinel to a contextual error so errors.Is matches both.
//
//	Kind(ErrMissingCredential, "cartesia: CARTESIA_API_KEY is empty")
func Kind(sentinel *Error, detail string) error {
	return &Error{
		message: detail,
		cause:   sentinel,
	}
}

// Kindf is Kind with a format string.
func Kindf(sentinel *Error, format string, args ...interface{}) error {
	return Kind(sentinel, fmt.Sprintf(format, args...))
}
