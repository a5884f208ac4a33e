package xevent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ExtensionKind tags the concrete type carried by an ExtensionValue.
type ExtensionKind int8

const (
	ExtensionString ExtensionKind = iota
	ExtensionBool
	ExtensionInt
)

// ExtensionValue is the restricted union carried by extension attributes:
// string, boolean or integer. Richer kinds coming off the wire (binary,
// URI, timestamp) degrade to their string form.
type ExtensionValue struct {
	kind ExtensionKind
	s    string
	b    bool
	i    int64
}

func StringExtension(s string) ExtensionValue { return ExtensionValue{kind: ExtensionString, s: s} }
func BoolExtension(b bool) ExtensionValue     { return ExtensionValue{kind: ExtensionBool, b: b} }
func IntExtension(i int64) ExtensionValue     { return ExtensionValue{kind: ExtensionInt, i: i} }

// NewExtensionValue coerces a Go value into an ExtensionValue.
func NewExtensionValue(v any) (ExtensionValue, error) {
	switch x := v.(type) {
	case string:
		return StringExtension(x), nil
	case bool:
		return BoolExtension(x), nil
	case int:
		return IntExtension(int64(x)), nil
	case int32:
		return IntExtension(int64(x)), nil
	case int64:
		return IntExtension(x), nil
	case ExtensionValue:
		return x, nil
	case Value:
		return x.Extension(), nil
	default:
		return ExtensionValue{}, fmt.Errorf("unsupported extension value type %T", v)
	}
}

func (e ExtensionValue) Kind() ExtensionKind { return e.kind }

func (e ExtensionValue) String() string {
	switch e.kind {
	case ExtensionBool:
		return strconv.FormatBool(e.b)
	case ExtensionInt:
		return strconv.FormatInt(e.i, 10)
	default:
		return e.s
	}
}

func (e ExtensionValue) Bool() (bool, bool)  { return e.b, e.kind == ExtensionBool }
func (e ExtensionValue) Int() (int64, bool)  { return e.i, e.kind == ExtensionInt }
func (e ExtensionValue) Str() (string, bool) { return e.s, e.kind == ExtensionString }

// Value widens the extension into a protocol Value.
func (e ExtensionValue) Value() Value {
	switch e.kind {
	case ExtensionBool:
		return BoolValue(e.b)
	case ExtensionInt:
		return IntValue(e.i)
	default:
		return StringValue(e.s)
	}
}

// Extension narrows a protocol Value into the extension union. Bool and
// integer survive as-is, everything else becomes its string form.
func (v Value) Extension() ExtensionValue {
	switch v.kind {
	case KindBool:
		return BoolExtension(v.b)
	case KindInt:
		return IntExtension(v.i)
	default:
		return StringExtension(v.String())
	}
}

// MarshalJSON keeps the native JSON type of the extension. Structured mode
// deliberately preserves bool/int typing that binary mode flattens to
// strings.
func (e ExtensionValue) MarshalJSON() ([]byte, error) {
	switch e.kind {
	case ExtensionBool:
		return json.Marshal(e.b)
	case ExtensionInt:
		return json.Marshal(e.i)
	default:
		return json.Marshal(e.s)
	}
}

func (e *ExtensionValue) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return &JSONError{Err: err}
	}
	switch x := raw.(type) {
	case string:
		*e = StringExtension(x)
	case bool:
		*e = BoolExtension(x)
	case json.Number:
		i, err := strconv.ParseInt(x.String(), 10, 64)
		if err != nil {
			return &JSONError{Err: err}
		}
		*e = IntExtension(i)
	default:
		return &JSONError{Err: fmt.Errorf("unsupported extension value %s", string(data))}
	}
	return nil
}
