package xevent

import "strings"

// Encoding classifies the wire representation of an inbound message.
type Encoding int8

const (
	// EncodingStructured carries the whole event as one JSON document.
	EncodingStructured Encoding = iota
	// EncodingBinary maps each context attribute to its own transport
	// field; the payload is the raw body.
	EncodingBinary
	// EncodingUnknown is neither: every deserialization attempt fails
	// with ErrWrongEncoding.
	EncodingUnknown
)

func (e Encoding) String() string {
	switch e {
	case EncodingStructured:
		return "structured"
	case EncodingBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// DetectEncoding classifies a message from its declared content type and
// the presence of the spec-version marker field. Pure function, evaluated
// per message:
//
//	cloudevents JSON content type          → structured
//	spec-version marker field present      → binary
//	otherwise                              → unknown
func DetectEncoding(contentType string, hasSpecVersion bool) Encoding {
	if strings.HasPrefix(contentType, ContentTypeCloudEventsJSON) ||
		strings.HasPrefix(contentType, ContentTypeCloudEventsBatchJSON) {
		return EncodingStructured
	}
	if hasSpecVersion {
		return EncodingBinary
	}
	return EncodingUnknown
}
