// Package xevent implements the CloudEvents envelope together with a
// dual-mode serialization engine that projects it onto arbitrary transport
// representations and reconstructs it from any of them.
//
// The core is a visitor-based double-dispatch protocol: sources implement
// BinaryDeserializer/StructuredDeserializer and push an event piece by
// piece into a BinarySerializer/StructuredSerializer implemented by the
// target wire format. Event implements all four, so it acts as the pivot
// between any two encodings.
//
// Transport adapters live under adapter/: http, kafka, mqtt, redisstream.
// They convert between wire messages and events and deliberately carry no
// connection management.
//
//	e, err := xevent.NewEventBuilderV10().
//	    ID("0001").
//	    Type("example.test").
//	    Source("http://localhost/").
//	    Data("application/json", xevent.JSONData{Value: map[string]any{"hello": "world"}}).
//	    Build()
package xevent
