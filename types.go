package xevent

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// ValueKind tags the concrete type carried by a Value.
type ValueKind int8

const (
	KindBool ValueKind = iota
	KindInt
	KindString
	KindBinary
	KindURI
	KindURIRef
	KindTime
)

func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindURI:
		return "uri"
	case KindURIRef:
		return "uriref"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// Value is an attribute or extension value traveling through the binary
// serialization protocol. It is a tagged union over the CloudEvents type
// system: Boolean, Integer, String, Binary, URI, URI-reference, Timestamp.
//
// Stringification is lossless: ParseValue(v.Kind(), v.String()) yields a
// value equal to v. Binary values stringify as standard base64.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	s    string
	bin  []byte
	u    *url.URL
	t    time.Time
}

func BoolValue(b bool) Value     { return Value{kind: KindBool, b: b} }
func IntValue(i int64) Value     { return Value{kind: KindInt, i: i} }
func StringValue(s string) Value { return Value{kind: KindString, s: s} }
func BinaryValue(b []byte) Value { return Value{kind: KindBinary, bin: b} }
func URIValue(u *url.URL) Value  { return Value{kind: KindURI, u: u} }
func URIRefValue(s string) Value { return Value{kind: KindURIRef, s: s} }

// TimeValue normalizes t to UTC so stringification and re-parsing are
// identity.
func TimeValue(t time.Time) Value { return Value{kind: KindTime, t: t.UTC()} }

func (v Value) Kind() ValueKind { return v.kind }

// String renders the value in its canonical wire form.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindString, KindURIRef:
		return v.s
	case KindBinary:
		return base64.StdEncoding.EncodeToString(v.bin)
	case KindURI:
		if v.u == nil {
			return ""
		}
		return v.u.String()
	case KindTime:
		return v.t.Format(time.RFC3339Nano)
	default:
		return ""
	}
}

// ParseValue parses the canonical wire form s back into a Value of the
// requested kind.
func ParseValue(kind ValueKind, s string) (Value, error) {
	switch kind {
	case KindBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return Value{}, err
		}
		return BoolValue(b), nil
	case KindInt:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return IntValue(i), nil
	case KindString:
		return StringValue(s), nil
	case KindBinary:
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return Value{}, &Base64DecodingError{Err: err}
		}
		return BinaryValue(b), nil
	case KindURI:
		u, err := url.Parse(s)
		if err != nil {
			return Value{}, &ParseURLError{Err: err}
		}
		return URIValue(u), nil
	case KindURIRef:
		return URIRefValue(s), nil
	case KindTime:
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return Value{}, &ParseTimeError{Err: err}
		}
		return TimeValue(t), nil
	default:
		return Value{}, fmt.Errorf("unknown value kind %s", kind)
	}
}

// Bool returns the boolean payload, parsing the string form when needed.
func (v Value) Bool() (bool, error) {
	if v.kind == KindBool {
		return v.b, nil
	}
	return strconv.ParseBool(v.String())
}

// Int returns the integer payload, parsing the string form when needed.
func (v Value) Int() (int64, error) {
	if v.kind == KindInt {
		return v.i, nil
	}
	return strconv.ParseInt(v.String(), 10, 64)
}

// Binary returns the raw bytes, base64-decoding the string form when needed.
func (v Value) Binary() ([]byte, error) {
	if v.kind == KindBinary {
		return v.bin, nil
	}
	b, err := base64.StdEncoding.DecodeString(v.String())
	if err != nil {
		return nil, &Base64DecodingError{Err: err}
	}
	return b, nil
}

// URL parses the value into an absolute URL.
func (v Value) URL() (*url.URL, error) {
	if v.kind == KindURI && v.u != nil {
		return v.u, nil
	}
	u, err := url.Parse(v.String())
	if err != nil {
		return nil, &ParseURLError{Err: err}
	}
	return u, nil
}

// Time parses the value into an RFC3339 timestamp.
func (v Value) Time() (time.Time, error) {
	if v.kind == KindTime {
		return v.t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, v.String())
	if err != nil {
		return time.Time{}, &ParseTimeError{Err: err}
	}
	return t.UTC(), nil
}
