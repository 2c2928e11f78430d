package bitly

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/kbukum/bitly/httpclient"
)

func TestReject_ParsesEnvelope(t *testing.T) {
	resp := &httpclient.Response{
		StatusCode: http.StatusBadRequest,
		Reason:     "Bad Request",
		Body: []byte(`{"message":"INVALID_ARG_LONG_URL","resource":"bitlinks","description":"The value provided is invalid.",
			"errors":[{"field":"long_url","error_code":"invalid"}]}`),
	}

	err := reject(http.MethodPost, resp)
	e, ok := AsError(err)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if e.Status != 400 || e.Reason != "Bad Request" || e.Method != http.MethodPost {
		t.Errorf("unexpected error %+v", e)
	}
	if e.Response == nil || e.Response.Message != "INVALID_ARG_LONG_URL" {
		t.Fatalf("unexpected envelope %+v", e.Response)
	}
	if len(e.Response.Errors) != 1 || e.Response.Errors[0].Field != "long_url" || e.Response.Errors[0].ErrorCode != "invalid" {
		t.Errorf("unexpected field errors %+v", e.Response.Errors)
	}

	want := "POST returned response 400 Bad Request: INVALID_ARG_LONG_URL (The value provided is invalid.)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestReject_UnparseableBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"whitespace", "  \n"},
		{"html", "<html>gateway timeout</html>"},
		{"null", "null"},
		{"empty object", "{}"},
		{"unrelated object", `{"status":"down","retry":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reject(http.MethodGet, &httpclient.Response{StatusCode: 502, Reason: "Bad Gateway", Body: []byte(tt.body)})
			e, ok := AsError(err)
			if !ok {
				t.Fatalf("expected *Error, got %T", err)
			}
			if e.Response != nil {
				t.Errorf("expected nil envelope, got %+v", e.Response)
			}
			if got := e.Error(); got != "GET returned response 502 Bad Gateway" {
				t.Errorf("unexpected message %q", got)
			}
		})
	}
}

func TestStatusHelpers(t *testing.T) {
	wrap := func(status int) error {
		return fmt.Errorf("shorten: %w", &Error{Method: http.MethodGet, Status: status})
	}

	if !IsNotFound(wrap(404)) || IsNotFound(wrap(403)) {
		t.Error("IsNotFound mismatch")
	}
	if !IsForbidden(wrap(403)) {
		t.Error("IsForbidden mismatch")
	}
	if !IsRateLimited(wrap(429)) {
		t.Error("IsRateLimited mismatch")
	}
	if IsNotFound(errors.New("plain")) {
		t.Error("plain errors are not rejections")
	}
	if _, ok := AsError(nil); ok {
		t.Error("nil is not an *Error")
	}
}
