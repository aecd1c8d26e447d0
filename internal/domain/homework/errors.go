package homework

import (
	"errors"
	"fmt"
)

// Base error kinds that can be used for error checking with errors.Is().
var (
	// API communication errors
	ErrTransport  = errors.New("transport error")
	ErrStatusCode = errors.New("unexpected status code")
	ErrDecode     = errors.New("decode error")

	// Response content errors
	ErrShape         = errors.New("malformed response")
	ErrUnknownStatus = errors.New("unknown homework status")

	// Messaging errors
	ErrNotify = errors.New("notify error")
)

// Error represents a bot error with context. Kind carries the base error
// for errors.Is() matching, Err the underlying cause when there is one.
type Error struct {
	Op      string // Operation that failed, e.g., "Fetch", "CheckResponse"
	Kind    error  // Base error kind for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *Error) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching against the error kind.
func (e *Error) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewError creates a new bot error.
func NewError(op string, kind error, message string) *Error {
	return &Error{
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with operation context.
func WrapError(op string, kind error, message string, err error) *Error {
	return &Error{
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}
