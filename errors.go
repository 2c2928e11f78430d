package bitly

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/kbukum/bitly/httpclient"
)

// FieldError is one entry of the errors list in the API error envelope.
type FieldError struct {
	Field     string `json:"field"`
	Message   string `json:"message"`
	ErrorCode string `json:"error_code"`
}

// ErrorResponse is the error envelope returned by the API.
type ErrorResponse struct {
	Message     string       `json:"message"`
	Resource    string       `json:"resource,omitempty"`
	Description string       `json:"description,omitempty"`
	Errors      []FieldError `json:"errors,omitempty"`
}

// Error is returned when the API answers with a status outside 200, 201 and
// 204. Response is nil when the body was empty or not a valid envelope.
type Error struct {
	Method   string
	Status   int
	Reason   string
	Response *ErrorResponse
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s returned response %d %s", e.Method, e.Status, e.Reason)
	if e.Response == nil || e.Response.Message == "" {
		return msg
	}
	msg += ": " + e.Response.Message
	if e.Response.Description != "" {
		msg += " (" + e.Response.Description + ")"
	}
	return msg
}

// reject builds an *Error from a rejected exchange.
func reject(method string, resp *httpclient.Response) error {
	return &Error{
		Method:   method,
		Status:   resp.StatusCode,
		Reason:   resp.Reason,
		Response: parseErrorResponse(resp.Body),
	}
}

func parseErrorResponse(body []byte) *ErrorResponse {
	if strings.TrimSpace(string(body)) == "" {
		return nil
	}
	var envelope ErrorResponse
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.empty() {
		return nil
	}
	return &envelope
}

func (r *ErrorResponse) empty() bool {
	return r.Message == "" && r.Resource == "" && r.Description == "" && len(r.Errors) == 0
}

// AsError extracts an *Error from err.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsNotFound reports whether err is a 404 rejection.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsForbidden reports whether err is a 403 rejection.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsRateLimited reports whether err is a 429 rejection.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

func hasStatus(err error, status int) bool {
	e, ok := AsError(err)
	return ok && e.Status == status
}
