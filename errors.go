package xevent

import (
	"errors"
	"fmt"
)

// ErrWrongEncoding is returned when a binary-mode operation runs against a
// structured-mode message or vice versa.
var ErrWrongEncoding = errors.New("wrong encoding")

type UnknownSpecVersionError struct{ Value string }

func (e *UnknownSpecVersionError) Error() string {
	return fmt.Sprintf("Invalid specversion %s", e.Value)
}

// UnknownAttributeError reports an attribute name that does not exist in
// the active spec version.
type UnknownAttributeError struct{ Name string }

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("unknown attribute in this spec version: %s", e.Name)
}

type MissingRequiredAttributeError struct{ Attribute string }

func (e *MissingRequiredAttributeError) Error() string {
	return fmt.Sprintf("missing required attribute %s", e.Attribute)
}

type ParseTimeError struct {
	Attribute string
	Err       error
}

func (e *ParseTimeError) Error() string {
	return fmt.Sprintf("error while parsing attribute %q as timestamp: %v", e.Attribute, e.Err)
}

func (e *ParseTimeError) Unwrap() error { return e.Err }

type ParseURLError struct {
	Attribute string
	Err       error
}

func (e *ParseURLError) Error() string {
	return fmt.Sprintf("error while parsing attribute %q as url: %v", e.Attribute, e.Err)
}

func (e *ParseURLError) Unwrap() error { return e.Err }

type Base64DecodingError struct{ Err error }

func (e *Base64DecodingError) Error() string {
	return fmt.Sprintf("error while decoding base64: %v", e.Err)
}

func (e *Base64DecodingError) Unwrap() error { return e.Err }

// JSONError wraps failures of the structured-mode JSON codec and of JSON
// payload interpretation.
type JSONError struct{ Err error }

func (e *JSONError) Error() string {
	return fmt.Sprintf("error while serializing/deserializing to json: %v", e.Err)
}

func (e *JSONError) Unwrap() error { return e.Err }

// IOError wraps transport-side read failures surfaced through an adapter.
type IOError struct{ Err error }

func (e *IOError) Error() string { return fmt.Sprintf("io error: %v", e.Err) }

func (e *IOError) Unwrap() error { return e.Err }
