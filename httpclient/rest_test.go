package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

type shortenRequest struct {
	LongURL string `json:"long_url"`
}

type bitlink struct {
	ID   string `json:"id"`
	Link string `json:"link"`
}

func TestGet_DecodesResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.RawQuery; got != "unit=day&units=7" {
			t.Errorf("unexpected query %q", got)
		}
		_, _ = w.Write([]byte(`{"id":"bit.ly/abc","link":"https://bit.ly/abc","unknown":true}`))
	}))
	defer srv.Close()

	c := newServerClient(t, srv)
	got, err := Get[bitlink](context.Background(), c, "/v4/bitlinks/bit.ly/abc", WithQuery("unit", "day"), WithQuery("units", "7"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Link != "https://bit.ly/abc" {
		t.Errorf("unexpected result %+v", got)
	}
}

func TestGet_EmptyResults(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"no content", http.StatusNoContent, ""},
		{"empty ok", http.StatusOK, ""},
		{"blank created", http.StatusCreated, "  \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := newServerClient(t, srv)
			got, err := Get[bitlink](context.Background(), c, "/v4/x")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != nil {
				t.Errorf("expected nil result, got %+v", got)
			}
		})
	}
}

func TestGet_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := newServerClient(t, srv)
	_, err := Get[bitlink](context.Background(), c, "/v4/x")
	var e *Error
	if !errors.As(err, &e) || e.Code != ErrCodeDecode {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestPost_SendsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		var req shortenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(bitlink{ID: "bit.ly/new", Link: "https://bit.ly/new"})
	}))
	defer srv.Close()

	c := newServerClient(t, srv)
	got, err := Post[bitlink](context.Background(), c, "/v4/shorten", shortenRequest{LongURL: "https://example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "bit.ly/new" {
		t.Errorf("unexpected id %q", got.ID)
	}
}

func TestPatch_UsesPatchVerb(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH, got %s", r.Method)
		}
		_, _ = w.Write([]byte(`{"id":"bit.ly/abc"}`))
	}))
	defer srv.Close()

	c := newServerClient(t, srv)
	if _, err := Patch[bitlink](context.Background(), c, "/v4/bitlinks/bit.ly/abc", map[string]string{"title": "t"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPostRaw(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	c := newServerClient(t, srv)
	resp, err := PostRaw(context.Background(), c, "/echo", json.RawMessage(`{"raw":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Body) != `{"raw":1}` {
		t.Errorf("unexpected body %q", resp.Body)
	}
}

func TestSend_DiscardsResult(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`not even json`))
	}))
	defer srv.Close()

	c := newServerClient(t, srv)
	if err := Send(context.Background(), c, http.MethodPost, "/x", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestWithHeaders_Copies(t *testing.T) {
	headers := map[string]string{"X-A": "1"}
	var req Request
	WithHeaders(headers)(&req)
	WithHeader("X-B", "2")(&req)

	if _, ok := headers["X-B"]; ok {
		t.Error("caller map must not be mutated")
	}
	if req.Headers["X-A"] != "1" || req.Headers["X-B"] != "2" {
		t.Errorf("unexpected headers %v", req.Headers)
	}
}

func TestDecodeResponse_NilResponse(t *testing.T) {
	got, err := DecodeResponse[bitlink](http.MethodGet, nil)
	if got != nil || err != nil {
		t.Errorf("expected nil, nil; got %v, %v", got, err)
	}
}
