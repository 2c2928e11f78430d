// Package httpclient provides the JSON transport shared by every API call:
// URL composition against a fixed host, header assembly, classification of
// responses into accepted or rejected, and typed decoding.
//
// A Client owns (or shares, via WithHTTPClient) one pooled *http.Client and
// is safe for concurrent use. Every exchange is logged at debug level as
// "url => status line"; statuses above 300 are also logged at warn level.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    Host:    "api-ssl.bitly.com",
//	    Headers: httpclient.BearerHeaders(token),
//	})
//
//	user, err := httpclient.Get[User](ctx, client, "/v4/user")
//
// # Classification
//
// Statuses 200, 201 and 204 are accepted. A result is decoded only for 200
// and 201 with a non-blank body; otherwise the typed verbs return a nil
// result and a nil error. Any other status is passed to the RejectFunc,
// which defaults to DefaultReject.
package httpclient
