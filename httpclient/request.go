package httpclient

import "net/http"

// Request describes one outbound exchange. It is built fresh for every call.
type Request struct {
	// Method is GET, POST, PATCH or DELETE.
	Method string
	// Path is relative to the client base URL and must begin with "/".
	Path string
	// Headers are applied verbatim after the client defaults.
	Headers map[string]string
	// Query is an ordered list of alternating keys and values.
	Query []string
	// Body is serialized to JSON when non-nil. []byte and json.RawMessage
	// are sent unchanged.
	Body any
}

// Response is the outcome of a completed exchange.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Reason is the status reason phrase, e.g. "Bad Request".
	Reason string
	// Headers are the response headers.
	Headers http.Header
	// Body is the raw response body; empty when the server sent none.
	Body []byte
	// URL is the absolute request target.
	URL string
}

// IsAccepted reports whether the exchange was classified as a success.
func (r *Response) IsAccepted() bool {
	return Accepted(r.StatusCode)
}
