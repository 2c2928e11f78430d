package httpclient

import (
	"encoding/json"
	"io"
	"testing"
)

func TestEncodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		want    string
		nilBody bool
	}{
		{name: "nil", payload: nil, nilBody: true},
		{name: "struct", payload: shortenRequest{LongURL: "https://example.com"}, want: `{"long_url":"https://example.com"}`},
		{name: "bytes", payload: []byte(`{"a":1}`), want: `{"a":1}`},
		{name: "raw message", payload: json.RawMessage(`[1,2]`), want: `[1,2]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := EncodeJSON(tt.payload)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.nilBody {
				if r != nil {
					t.Error("expected nil reader")
				}
				return
			}
			data, _ := io.ReadAll(r)
			if string(data) != tt.want {
				t.Errorf("got %s, want %s", data, tt.want)
			}
		})
	}
}

func TestEncodeJSON_Unsupported(t *testing.T) {
	if _, err := EncodeJSON(func() {}); err == nil {
		t.Fatal("expected error for func payload")
	}
}

func TestDecodeJSON_IgnoresUnknownFields(t *testing.T) {
	got, err := DecodeJSON[bitlink]([]byte(`{"id":"bit.ly/x","extra":{"nested":true}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "bit.ly/x" {
		t.Errorf("unexpected id %q", got.ID)
	}
}
