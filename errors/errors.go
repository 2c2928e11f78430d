// Package errors provides structured errors for failures detected locally,
// before any request leaves the process: invalid configuration, invalid
// arguments, and unexpected internal faults. Failures reported by the remote
// API are represented by bitly.Error instead.
package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is a local application error.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// InvalidInput creates an error for an invalid argument.
func InvalidInput(field, reason string) *AppError {
	e := New(ErrCodeInvalidInput, fmt.Sprintf("Invalid input: %s", reason))
	if field != "" {
		e.WithDetail("field", field)
	}
	return e
}

// MissingField creates an error for a missing required field.
func MissingField(field string) *AppError {
	return New(ErrCodeMissingField, fmt.Sprintf("Missing required field: %s", field)).
		WithDetail("field", field)
}

// Validation creates an error for failed struct validation.
func Validation(message string) *AppError {
	return New(ErrCodeInvalidInput, message)
}

// Configuration creates an error for an unusable configuration.
func Configuration(message string, cause error) *AppError {
	return New(ErrCodeConfiguration, message).WithCause(cause)
}

// Internal wraps an unexpected failure.
func Internal(cause error) *AppError {
	return New(ErrCodeInternal, "An unexpected error occurred.").WithCause(cause)
}

// IsAppError reports whether err is or wraps an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError extracts an AppError from err.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}
