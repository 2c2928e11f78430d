package httpclient

import (
	"context"
	"net/http"
)

// RequestOption configures a single request.
type RequestOption func(*Request)

// WithHeaders sets a copy of headers on the request, overriding any set before.
func WithHeaders(headers map[string]string) RequestOption {
	return func(r *Request) {
		r.Headers = mergeHeaders(r.Headers, headers)
	}
}

// WithHeader sets one header on the request.
func WithHeader(key, value string) RequestOption {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string)
		}
		r.Headers[key] = value
	}
}

// WithQuery appends alternating key-value pairs to the query list.
func WithQuery(kv ...string) RequestOption {
	return func(r *Request) {
		r.Query = append(r.Query, kv...)
	}
}

// Get performs a GET and decodes the result into T. The result is nil with
// a nil error when the accepted response carries no body.
func Get[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (*T, error) {
	return doTyped[T](ctx, c, http.MethodGet, path, nil, opts...)
}

// Post performs a POST with a JSON payload and decodes the result into T.
func Post[T any](ctx context.Context, c *Client, path string, payload any, opts ...RequestOption) (*T, error) {
	return doTyped[T](ctx, c, http.MethodPost, path, payload, opts...)
}

// Patch performs a PATCH with a JSON payload and decodes the result into T.
func Patch[T any](ctx context.Context, c *Client, path string, payload any, opts ...RequestOption) (*T, error) {
	return doTyped[T](ctx, c, http.MethodPatch, path, payload, opts...)
}

// PostRaw performs a POST and returns the accepted response undecoded.
func PostRaw(ctx context.Context, c *Client, path string, payload any, opts ...RequestOption) (*Response, error) {
	resp, err := c.Do(ctx, newRequest(http.MethodPost, path, payload, opts))
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Send performs an exchange whose result is discarded.
func Send(ctx context.Context, c *Client, method, path string, payload any, opts ...RequestOption) error {
	_, err := c.Do(ctx, newRequest(method, path, payload, opts))
	return err
}

// Delete performs a DELETE whose result is discarded.
func Delete(ctx context.Context, c *Client, path string, opts ...RequestOption) error {
	return Send(ctx, c, http.MethodDelete, path, nil, opts...)
}

// DecodeResponse extracts T from an accepted response.
func DecodeResponse[T any](method string, resp *Response) (*T, error) {
	if !HasEntity(resp) {
		return nil, nil
	}
	out, err := DecodeJSON[T](resp.Body)
	if err != nil {
		return nil, NewDecodeError(method, resp.URL, err)
	}
	return out, nil
}

func doTyped[T any](ctx context.Context, c *Client, method, path string, payload any, opts ...RequestOption) (*T, error) {
	resp, err := c.Do(ctx, newRequest(method, path, payload, opts))
	if err != nil {
		return nil, err
	}
	return DecodeResponse[T](method, resp)
}

func newRequest(method, path string, payload any, opts []RequestOption) Request {
	req := Request{
		Method: method,
		Path:   path,
		Body:   payload,
	}
	for _, opt := range opts {
		opt(&req)
	}
	return req
}
