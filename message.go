package xevent

import "encoding/json"

// Event implements both sides of both protocols, which makes it the
// canonical intermediate representation: any wire format deserializes into
// an Event, and any Event serializes onto any wire format, without the two
// formats knowing about each other.

var (
	_ BinaryDeserializer     = (*Event)(nil)
	_ StructuredDeserializer = (*Event)(nil)
	_ EventSerializer        = (*Event)(nil)
)

// DeserializeBinary walks the event and pushes its contents through the
// serializer in protocol order.
func (e *Event) DeserializeBinary(s BinarySerializer) error {
	if err := s.SetSpecVersion(e.SpecVersion()); err != nil {
		return err
	}
	if err := e.attributes.visit(s); err != nil {
		return err
	}
	for name, value := range e.extensions {
		if err := s.SetExtension(name, value.Value()); err != nil {
			return err
		}
	}
	if e.data == nil {
		return s.End()
	}
	b, err := e.data.Bytes()
	if err != nil {
		return err
	}
	return s.EndWithData(b)
}

// DeserializeStructured serializes the whole event as one JSON document
// and hands it to the serializer.
func (e *Event) DeserializeStructured(s StructuredSerializer) error {
	b, err := json.Marshal(e)
	if err != nil {
		return &JSONError{Err: err}
	}
	return s.SetStructuredEvent(b)
}

// SetSpecVersion migrates the event to the incoming version in place.
func (e *Event) SetSpecVersion(v SpecVersion) error {
	switch v {
	case SpecVersionV03:
		e.attributes = e.attributes.IntoV03()
	case SpecVersionV10:
		e.attributes = e.attributes.IntoV10()
	default:
		return &UnknownSpecVersionError{Value: string(v)}
	}
	return nil
}

// SetAttribute routes a named context attribute into the version-specific
// bag, failing with UnknownAttributeError for names outside the active
// version.
func (e *Event) SetAttribute(name string, value Value) error {
	return e.attributes.set(name, value)
}

// SetExtension records an extension attribute, narrowing the value to the
// extension union.
func (e *Event) SetExtension(name string, value Value) error {
	e.extensions[name] = value.Extension()
	return nil
}

// EndWithData terminates a binary-mode conversion with a payload. The
// bytes are interpreted through the datacontenttype set by the preceding
// attribute calls: JSON content types decode into JSONData, anything else
// stays opaque.
func (e *Event) EndWithData(data []byte) error {
	d, err := NewDataFromBytes(e.DataContentType(), data)
	if err != nil {
		return err
	}
	e.data = d
	return nil
}

// End terminates a binary-mode conversion without a payload.
func (e *Event) End() error { return nil }

// SetStructuredEvent replaces the event with the decoded JSON document.
func (e *Event) SetStructuredEvent(data []byte) error {
	var in Event
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	e.attributes = in.attributes
	e.data = in.data
	e.extensions = in.extensions
	return nil
}
