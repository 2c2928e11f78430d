package httpclient

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// BuildURL resolves path and an ordered query list against the client base.
// Query pairs are appended in the order given and repeated keys are kept.
func (c *Client) BuildURL(path string, query ...string) (*url.URL, error) {
	return buildURL(c.config.Scheme, c.config.Host, c.config.Port, path, query)
}

func buildURL(scheme, host string, port int, path string, query []string) (*url.URL, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("path %q must begin with /", path)
	}
	if strings.ContainsAny(path, "?#") {
		return nil, fmt.Errorf("path %q must not contain a query or fragment", path)
	}
	if len(query)%2 != 0 {
		return nil, fmt.Errorf("query list has odd length %d", len(query))
	}

	raw := fmt.Sprintf("%s://%s%s", scheme, hostPort(host, port), path)
	if q := encodeQuery(query); q != "" {
		raw += "?" + q
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", raw, err)
	}
	return u, nil
}

// encodeQuery keeps insertion order; url.Values.Encode sorts by key.
func encodeQuery(query []string) string {
	var b strings.Builder
	for i := 0; i < len(query); i += 2 {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(query[i]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(query[i+1]))
	}
	return b.String()
}

func hostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
