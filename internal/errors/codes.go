// Package errors defines the structured failure values returned by the
// reminder core. Every failure except STORAGE is recoverable by re-prompting.
package errors

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrorCode represents a specific failure kind.
type ErrorCode string

const (
	// ErrCodeNotRecognized indicates the input text matched no expected pattern.
	ErrCodeNotRecognized ErrorCode = "NOT_RECOGNIZED"
	// ErrCodeInvalid indicates well-formed components that do not compose into a real calendar instant.
	ErrCodeInvalid ErrorCode = "INVALID"
	// ErrCodePastInstant indicates the composed instant is not in the future.
	ErrCodePastInstant ErrorCode = "PAST_INSTANT"
	// ErrCodeDuplicateKey indicates the store already has a record at that exact instant.
	ErrCodeDuplicateKey ErrorCode = "DUPLICATE_KEY"
	// ErrCodeNotFound indicates no record exists for the requested key.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeStorage indicates the reminder store could not be read or written.
	ErrCodeStorage ErrorCode = "STORAGE"
)

// Error is a structured reminder error.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// NotRecognized creates a not recognized error.
func NotRecognized(format string, args ...any) *Error {
	return &Error{Code: ErrCodeNotRecognized, Message: fmt.Sprintf(format, args...)}
}

// Invalid creates an invalid calendar instant error.
func Invalid(format string, args ...any) *Error {
	return &Error{Code: ErrCodeInvalid, Message: fmt.Sprintf(format, args...)}
}

// PastInstant creates a past instant error.
func PastInstant(key string) *Error {
	return &Error{
		Code:    ErrCodePastInstant,
		Message: fmt.Sprintf("instant is already over: %s", key),
	}
}

// DuplicateKey creates a duplicate key error.
func DuplicateKey(key string) *Error {
	return &Error{
		Code:    ErrCodeDuplicateKey,
		Message: fmt.Sprintf("reminder already exists at %s", key),
	}
}

// NotFound creates a not found error.
func NotFound(key string) *Error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("reminder not found: %s", key),
	}
}

// Storage wraps a store failure.
func Storage(cause error, msg string) *Error {
	return &Error{Code: ErrCodeStorage, Message: msg, Cause: cause}
}

// Wrap wraps an existing error with a code.
func Wrap(cause error, code ErrorCode, msg string) *Error {
	return &Error{Code: code, Message: msg, Cause: cause}
}

// IsCode checks if an error, or any error it wraps, carries the given code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if pkgerrors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCodeFromError extracts the error code from any error.
// Returns the provided default code if the error is not an *Error.
func GetCodeFromError(err error, defaultCode ErrorCode) ErrorCode {
	var e *Error
	if pkgerrors.As(err, &e) {
		return e.Code
	}
	return defaultCode
}
