package http

import (
	"bytes"
	"io"
	gohttp "net/http"
	"strconv"

	"github.com/trickstertwo/xevent"
)

// Builder assembles an outbound HTTP-shaped representation without the
// adapter depending on a concrete HTTP library type. Header may be called
// any number of times; exactly one of Body or Finish terminates the build.
type Builder interface {
	Header(key, value string)
	Body(data []byte) error
	Finish() error
}

// Serializer drives a Builder from the binary or structured protocol.
type Serializer struct {
	builder Builder
}

func NewSerializer(b Builder) *Serializer { return &Serializer{builder: b} }

func (s *Serializer) SetSpecVersion(v xevent.SpecVersion) error {
	s.builder.Header(SpecVersionHeader, v.String())
	return nil
}

func (s *Serializer) SetAttribute(name string, value xevent.Value) error {
	if h := xevent.HeaderFor(xevent.PrefixHTTP, name); h != "" {
		s.builder.Header(h, value.String())
	} else {
		s.builder.Header(contentTypeHeader, value.String())
	}
	return nil
}

func (s *Serializer) SetExtension(name string, value xevent.Value) error {
	s.builder.Header(xevent.HeaderFor(xevent.PrefixHTTP, name), value.String())
	return nil
}

func (s *Serializer) EndWithData(data []byte) error { return s.builder.Body(data) }

func (s *Serializer) End() error { return s.builder.Finish() }

func (s *Serializer) SetStructuredEvent(data []byte) error {
	s.builder.Header(contentTypeHeader, xevent.ContentTypeCloudEventsJSON)
	return s.builder.Body(data)
}

var _ xevent.EventSerializer = (*Serializer)(nil)

type requestBuilder struct{ req *gohttp.Request }

func (b *requestBuilder) Header(key, value string) { b.req.Header.Add(key, value) }

func (b *requestBuilder) Body(data []byte) error {
	b.req.Body = io.NopCloser(bytes.NewReader(data))
	b.req.ContentLength = int64(len(data))
	return nil
}

func (b *requestBuilder) Finish() error { return nil }

// WriteRequest projects an event onto an outbound request in binary mode.
func WriteRequest(e *xevent.Event, req *gohttp.Request) error {
	return e.DeserializeBinary(NewSerializer(&requestBuilder{req: req}))
}

// WriteRequestStructured projects an event onto an outbound request as one
// JSON document.
func WriteRequestStructured(e *xevent.Event, req *gohttp.Request) error {
	return e.DeserializeStructured(NewSerializer(&requestBuilder{req: req}))
}

type responseBuilder struct {
	w      gohttp.ResponseWriter
	status int
}

func (b *responseBuilder) Header(key, value string) { b.w.Header().Add(key, value) }

func (b *responseBuilder) Body(data []byte) error {
	b.w.Header().Set("content-length", strconv.Itoa(len(data)))
	b.w.WriteHeader(b.status)
	_, err := b.w.Write(data)
	if err != nil {
		return &xevent.IOError{Err: err}
	}
	return nil
}

func (b *responseBuilder) Finish() error {
	b.w.WriteHeader(b.status)
	return nil
}

// WriteResponse projects an event onto a response in binary mode.
func WriteResponse(e *xevent.Event, w gohttp.ResponseWriter, status int) error {
	return e.DeserializeBinary(NewSerializer(&responseBuilder{w: w, status: status}))
}

// WriteResponseStructured projects an event onto a response as one JSON
// document.
func WriteResponseStructured(e *xevent.Event, w gohttp.ResponseWriter, status int) error {
	return e.DeserializeStructured(NewSerializer(&responseBuilder{w: w, status: status}))
}
