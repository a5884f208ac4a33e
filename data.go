package xevent

import (
	"encoding/json"
	"strings"
)

// Data is the event payload. Exactly one of the three shapes is used:
// raw bytes, a non-JSON string, or a decoded JSON value.
type Data interface {
	// Bytes renders the payload in its wire form.
	Bytes() ([]byte, error)

	isData()
}

type BinaryData []byte

func (d BinaryData) Bytes() ([]byte, error) { return d, nil }
func (BinaryData) isData()                  {}

type TextData string

func (d TextData) Bytes() ([]byte, error) { return []byte(d), nil }
func (TextData) isData()                  {}

// JSONData holds a decoded JSON value (the result of json.Unmarshal into
// any).
type JSONData struct{ Value any }

func (d JSONData) Bytes() ([]byte, error) {
	b, err := json.Marshal(d.Value)
	if err != nil {
		return nil, &JSONError{Err: err}
	}
	return b, nil
}

func (JSONData) isData() {}

func isJSONContentType(ct string) bool {
	return strings.HasPrefix(ct, "application/json") ||
		strings.HasPrefix(ct, "text/json") ||
		strings.HasSuffix(mediaType(ct), "+json")
}

// mediaType strips content-type parameters ("application/json; charset=utf-8").
func mediaType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(ct)
}

// NewDataFromBytes interprets wire bytes according to the datacontenttype
// of the enclosing event. An absent content type leaves the payload opaque;
// JSON content types are decoded and fail with a JSONError when malformed.
func NewDataFromBytes(contentType string, b []byte) (Data, error) {
	if contentType == "" || !isJSONContentType(contentType) {
		return BinaryData(b), nil
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, &JSONError{Err: err}
	}
	return JSONData{Value: v}, nil
}
