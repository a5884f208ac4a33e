package xevent

// BinaryDeserializer is the source side of a binary-mode conversion: an
// inbound wire message, or an Event being projected onto a wire format.
// DeserializeBinary walks the source and pushes spec version, attributes,
// extensions and payload through the serializer in protocol order.
type BinaryDeserializer interface {
	DeserializeBinary(s BinarySerializer) error
}

// StructuredDeserializer is the source side of a structured-mode
// conversion.
type StructuredDeserializer interface {
	DeserializeStructured(s StructuredSerializer) error
}

// Message is an inbound wire message of either mode. Encoding reports the
// detected mode; a mode-specific Deserialize call against the wrong mode
// fails with ErrWrongEncoding.
type Message interface {
	BinaryDeserializer
	StructuredDeserializer
	Encoding() Encoding
}

// ToEvent fully decodes a message into a fresh Event, whichever mode it is
// in.
func ToEvent(m Message) (*Event, error) {
	e := New()
	if err := Deserialize(m, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Deserialize routes the message to the serializer through the protocol
// matching the detected encoding. Unknown-encoding messages fail inside
// the mode-specific call with ErrWrongEncoding.
func Deserialize(m Message, s EventSerializer) error {
	if m.Encoding() == EncodingStructured {
		return m.DeserializeStructured(s)
	}
	return m.DeserializeBinary(s)
}

// DeserializeBinary projects the message onto a binary-mode target. When
// the message is not in binary mode it is first decoded into an Event and
// re-serialized, making the Event the pivot between the two encodings.
func DeserializeBinary(m Message, s BinarySerializer) error {
	if m.Encoding() == EncodingBinary {
		return m.DeserializeBinary(s)
	}
	e, err := ToEvent(m)
	if err != nil {
		return err
	}
	return e.DeserializeBinary(s)
}

// DeserializeStructured is the symmetric pivot for structured-mode
// targets.
func DeserializeStructured(m Message, s StructuredSerializer) error {
	if m.Encoding() == EncodingStructured {
		return m.DeserializeStructured(s)
	}
	e, err := ToEvent(m)
	if err != nil {
		return err
	}
	return e.DeserializeStructured(s)
}
