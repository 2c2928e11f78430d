package httpclient

// ContentTypeJSON is the media type of every request and response body.
const ContentTypeJSON = "application/json"

// BearerHeaders returns the authorization and content headers for a token.
func BearerHeaders(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
		"Content-Type":  ContentTypeJSON,
	}
}

// mergeHeaders copies base and then overrides into a fresh map.
func mergeHeaders(base map[string]string, overrides map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}
