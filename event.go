package xevent

import (
	"net/url"
	"time"
)

// Event is the CloudEvents envelope: a version-tagged attribute bag, an
// extension map and an optional payload. Events are built through the
// per-version builders or decoded from a wire Message; every wire format
// converts through Event, which makes it the pivot between any two
// encodings.
//
// An Event exclusively owns its attributes, data and extensions. The core
// never shares or retains them, so distinct Events can be used freely from
// multiple goroutines.
type Event struct {
	attributes Attributes
	data       Data
	extensions map[string]ExtensionValue
}

// New returns an empty v1.0 event. Required attributes are unset; use a
// builder when validation is wanted.
func New() *Event {
	return &Event{
		attributes: &AttributesV10{},
		extensions: map[string]ExtensionValue{},
	}
}

func (e *Event) SpecVersion() SpecVersion { return e.attributes.SpecVersion() }

func (e *Event) ID() string              { return e.attributes.ID() }
func (e *Event) Type() string            { return e.attributes.Type() }
func (e *Event) Source() string          { return e.attributes.Source() }
func (e *Event) DataContentType() string { return e.attributes.DataContentType() }
func (e *Event) DataSchema() *url.URL    { return e.attributes.DataSchema() }
func (e *Event) Subject() string         { return e.attributes.Subject() }
func (e *Event) Time() time.Time         { return e.attributes.Time() }

func (e *Event) SetID(id string)           { e.attributes.SetID(id) }
func (e *Event) SetType(ty string)         { e.attributes.SetType(ty) }
func (e *Event) SetSource(source string)   { e.attributes.SetSource(source) }
func (e *Event) SetSubject(subject string) { e.attributes.SetSubject(subject) }
func (e *Event) SetTime(t time.Time)       { e.attributes.SetTime(t) }

// Data returns the payload, nil when the event carries none.
func (e *Event) Data() Data { return e.data }

// SetData writes a payload with its content type, clearing any schema.
func (e *Event) SetData(datacontenttype string, data Data) {
	e.attributes.SetDataContentType(datacontenttype)
	e.attributes.SetDataSchema(nil)
	e.data = data
}

// SetDataWithSchema writes a payload with its content type and schema.
func (e *Event) SetDataWithSchema(datacontenttype string, schema *url.URL, data Data) {
	e.attributes.SetDataContentType(datacontenttype)
	e.attributes.SetDataSchema(schema)
	e.data = data
}

// RemoveData drops the payload together with datacontenttype and schema.
func (e *Event) RemoveData() {
	e.data = nil
	e.attributes.SetDataContentType("")
	e.attributes.SetDataSchema(nil)
}

// Extension returns the named extension attribute.
func (e *Event) Extension(name string) (ExtensionValue, bool) {
	v, ok := e.extensions[name]
	return v, ok
}

// PutExtension records an extension attribute. The visitor-protocol
// counterpart is SetExtension, which takes a wire Value.
func (e *Event) PutExtension(name string, value ExtensionValue) {
	e.extensions[name] = value
}

// Extensions returns a copy of the extension map.
func (e *Event) Extensions() map[string]ExtensionValue {
	out := make(map[string]ExtensionValue, len(e.extensions))
	for k, v := range e.extensions {
		out[k] = v
	}
	return out
}

// IntoV03 migrates the event to spec version 0.3 in place. Identity when
// already v0.3.
func (e *Event) IntoV03() *Event {
	e.attributes = e.attributes.IntoV03()
	return e
}

// IntoV10 migrates the event to spec version 1.0 in place. Identity when
// already v1.0.
func (e *Event) IntoV10() *Event {
	e.attributes = e.attributes.IntoV10()
	return e
}

// Clone returns a deep copy of the event. Data values are immutable by
// convention, so the payload reference is shared only for JSONData values
// already decoded.
func (e *Event) Clone() *Event {
	out := &Event{extensions: make(map[string]ExtensionValue, len(e.extensions))}
	switch a := e.attributes.(type) {
	case *AttributesV03:
		cp := *a
		out.attributes = &cp
	case *AttributesV10:
		cp := *a
		out.attributes = &cp
	}
	for k, v := range e.extensions {
		out.extensions[k] = v
	}
	switch d := e.data.(type) {
	case BinaryData:
		b := make([]byte, len(d))
		copy(b, d)
		out.data = BinaryData(b)
	case TextData:
		out.data = d
	case JSONData:
		out.data = d
	}
	return out
}
