package xevent

// BinarySerializer is implemented by the target of a binary-mode
// conversion: a wire representation under construction (an HTTP header
// map, a Kafka header list) or an Event being reassembled.
//
// A source drives it through the ordered call sequence
//
//	SetSpecVersion → SetAttribute* → SetExtension* → (EndWithData | End)
//
// The spec version always arrives first because attribute validity depends
// on it. Each call may fail; the first failure aborts the conversion and
// surfaces to the caller unchanged.
type BinarySerializer interface {
	SetSpecVersion(v SpecVersion) error
	SetAttribute(name string, value Value) error
	SetExtension(name string, value Value) error

	// EndWithData terminates the sequence with a payload.
	EndWithData(data []byte) error
	// End terminates the sequence without a payload.
	End() error
}

// StructuredSerializer is the single-blob counterpart: the whole event
// arrives as one JSON document.
type StructuredSerializer interface {
	SetStructuredEvent(data []byte) error
}

// EventSerializer is implemented by targets that accept either mode.
// *Event itself is one such target.
type EventSerializer interface {
	BinarySerializer
	StructuredSerializer
}
