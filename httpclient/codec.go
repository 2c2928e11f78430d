package httpclient

import (
	"bytes"
	"encoding/json"
	"io"
)

// EncodeJSON serializes a payload for the wire. A nil payload yields no body;
// []byte and json.RawMessage are passed through unchanged.
func EncodeJSON(payload any) (io.Reader, error) {
	switch v := payload.(type) {
	case nil:
		return nil, nil
	case []byte:
		return bytes.NewReader(v), nil
	case json.RawMessage:
		return bytes.NewReader(v), nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(data), nil
	}
}

// DecodeJSON deserializes data into a new T. Fields unknown to T are ignored.
func DecodeJSON[T any](data []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
