package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrorCode classifies transport-level failures.
type ErrorCode int

const (
	// ErrCodeBuild indicates the request URL or request could not be assembled.
	ErrCodeBuild ErrorCode = iota
	// ErrCodeEncode indicates the request payload could not be serialized.
	ErrCodeEncode
	// ErrCodeConnection indicates the exchange failed on the wire (refused, DNS, reset).
	ErrCodeConnection
	// ErrCodeTimeout indicates the exchange exceeded its deadline.
	ErrCodeTimeout
	// ErrCodeCanceled indicates the caller canceled the context.
	ErrCodeCanceled
	// ErrCodeDecode indicates an accepted response body could not be deserialized.
	ErrCodeDecode
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeBuild:
		return "build"
	case ErrCodeEncode:
		return "encode"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeCanceled:
		return "canceled"
	case ErrCodeDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is a transport failure that never produced a classifiable response.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// Method is the HTTP verb of the failed exchange.
	Method string
	// URL is the request target, empty when the URL itself failed to build.
	URL string
	// Message describes the error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("httpclient: %s: %s %s: %s", e.Code, e.Method, e.URL, e.Message)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code ErrorCode, method, url string, err error) *Error {
	return &Error{
		Code:    code,
		Method:  method,
		URL:     url,
		Message: err.Error(),
		Err:     err,
	}
}

// NewBuildError creates a request assembly error.
func NewBuildError(method string, err error) *Error {
	return newError(ErrCodeBuild, method, "", err)
}

// NewEncodeError creates a payload serialization error.
func NewEncodeError(method, url string, err error) *Error {
	return newError(ErrCodeEncode, method, url, err)
}

// NewConnectionError creates a connection error.
func NewConnectionError(method, url string, err error) *Error {
	return newError(ErrCodeConnection, method, url, err)
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(method, url string, err error) *Error {
	return newError(ErrCodeTimeout, method, url, err)
}

// NewDecodeError creates a response deserialization error.
func NewDecodeError(method, url string, err error) *Error {
	return newError(ErrCodeDecode, method, url, err)
}

// classifyTransportError maps an error returned by http.Client.Do.
func classifyTransportError(ctx context.Context, method, url string, err error) *Error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return newError(ErrCodeCanceled, method, url, err)
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return newError(ErrCodeTimeout, method, url, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return newError(ErrCodeTimeout, method, url, err)
	default:
		return newError(ErrCodeConnection, method, url, err)
	}
}

// IsTimeout reports whether err is a transport timeout.
func IsTimeout(err error) bool {
	return hasCode(err, ErrCodeTimeout)
}

// IsConnection reports whether err is a connection failure.
func IsConnection(err error) bool {
	return hasCode(err, ErrCodeConnection)
}

// IsCanceled reports whether err stems from context cancellation.
func IsCanceled(err error) bool {
	return hasCode(err, ErrCodeCanceled)
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// StatusError is the default rejection for a response outside the accepted
// status set.
type StatusError struct {
	Method     string
	StatusCode int
	Reason     string
	Body       []byte
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned response %d %s", e.Method, e.StatusCode, e.Reason)
}

// RejectFunc converts a response outside the accepted set into an error.
type RejectFunc func(method string, resp *Response) error

// DefaultReject returns a *StatusError.
func DefaultReject(method string, resp *Response) error {
	return &StatusError{
		Method:     method,
		StatusCode: resp.StatusCode,
		Reason:     resp.Reason,
		Body:       resp.Body,
	}
}

// Accepted reports whether status is one of 200, 201 or 204.
func Accepted(status int) bool {
	switch status {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return true
	default:
		return false
	}
}

// HasEntity reports whether an accepted response carries a result body.
// Only 200 and 201 with a non-blank body qualify.
func HasEntity(resp *Response) bool {
	if resp == nil {
		return false
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return false
	}
	return len(bytes.TrimSpace(resp.Body)) > 0
}
