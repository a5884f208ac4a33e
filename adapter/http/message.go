package http

import (
	"io"
	gohttp "net/http"

	"github.com/trickstertwo/xevent"
)

// SpecVersionHeader is the binary-mode marker field of the HTTP binding.
const SpecVersionHeader = "ce-specversion"

const contentTypeHeader = "content-type"

// Message is an inbound HTTP-shaped message: a pile of headers and a body.
type Message struct {
	headers Headers
	body    []byte
}

// NewMessage wraps already-materialized headers and body.
func NewMessage(headers Headers, body []byte) *Message {
	return &Message{headers: headers, body: body}
}

// NewMessageFromRequest drains the request body and wraps the request.
func NewMessageFromRequest(r *gohttp.Request) (*Message, error) {
	var body []byte
	if r.Body != nil {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, &xevent.IOError{Err: err}
		}
		body = b
	}
	return NewMessage(HeaderMap(r.Header), body), nil
}

// ToEvent turns an HTTP request into an event, whichever mode it is in.
func ToEvent(r *gohttp.Request) (*xevent.Event, error) {
	m, err := NewMessageFromRequest(r)
	if err != nil {
		return nil, err
	}
	return xevent.ToEvent(m)
}

func (m *Message) Encoding() xevent.Encoding {
	ct, _ := m.headers.Get(contentTypeHeader)
	_, hasSpecVersion := m.headers.Get(SpecVersionHeader)
	return xevent.DetectEncoding(ct, hasSpecVersion)
}

func (m *Message) DeserializeBinary(s xevent.BinarySerializer) error {
	if m.Encoding() != xevent.EncodingBinary {
		return xevent.ErrWrongEncoding
	}

	raw, _ := m.headers.Get(SpecVersionHeader)
	version, err := xevent.ParseSpecVersion(raw)
	if err != nil {
		return err
	}
	if err := s.SetSpecVersion(version); err != nil {
		return err
	}

	var visitErr error
	m.headers.Visit(func(name, value string) {
		if visitErr != nil || name == SpecVersionHeader {
			return
		}
		attr, ok := xevent.AttributeNameOf(xevent.PrefixHTTP, name)
		if !ok {
			return
		}
		if version.HasAttribute(attr) {
			visitErr = s.SetAttribute(attr, xevent.StringValue(value))
		} else {
			visitErr = s.SetExtension(attr, xevent.StringValue(value))
		}
	})
	if visitErr != nil {
		return visitErr
	}

	if ct, ok := m.headers.Get(contentTypeHeader); ok && ct != "" {
		if err := s.SetAttribute("datacontenttype", xevent.StringValue(ct)); err != nil {
			return err
		}
	}

	if len(m.body) > 0 {
		return s.EndWithData(m.body)
	}
	return s.End()
}

func (m *Message) DeserializeStructured(s xevent.StructuredSerializer) error {
	if m.Encoding() != xevent.EncodingStructured {
		return xevent.ErrWrongEncoding
	}
	return s.SetStructuredEvent(m.body)
}

var _ xevent.Message = (*Message)(nil)
