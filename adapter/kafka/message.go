// Package kafka binds events to Kafka records: context attributes travel
// as ce_-prefixed record headers in binary mode, the record value carries
// the payload.
package kafka

import (
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/trickstertwo/xevent"
)

// SpecVersionHeader is the binary-mode marker field of the Kafka binding.
const SpecVersionHeader = "ce_specversion"

const contentTypeHeader = "content-type"

// Message wraps a consumed Kafka record.
type Message struct {
	record *kafka.Message
}

// NewMessage wraps an already-consumed record.
func NewMessage(record *kafka.Message) *Message {
	return &Message{record: record}
}

// ToEvent turns a consumed record into an event, whichever mode it is in.
func ToEvent(record *kafka.Message) (*xevent.Event, error) {
	return xevent.ToEvent(NewMessage(record))
}

func (m *Message) header(name string) (string, bool) {
	for _, h := range m.record.Headers {
		if h.Key == name {
			return string(h.Value), true
		}
	}
	return "", false
}

func (m *Message) Encoding() xevent.Encoding {
	ct, _ := m.header(contentTypeHeader)
	_, hasSpecVersion := m.header(SpecVersionHeader)
	return xevent.DetectEncoding(ct, hasSpecVersion)
}

func (m *Message) DeserializeBinary(s xevent.BinarySerializer) error {
	if m.Encoding() != xevent.EncodingBinary {
		return xevent.ErrWrongEncoding
	}

	raw, _ := m.header(SpecVersionHeader)
	version, err := xevent.ParseSpecVersion(raw)
	if err != nil {
		return err
	}
	if err := s.SetSpecVersion(version); err != nil {
		return err
	}

	for _, h := range m.record.Headers {
		if h.Key == SpecVersionHeader {
			continue
		}
		attr, ok := xevent.AttributeNameOf(xevent.PrefixKafka, h.Key)
		if !ok {
			continue
		}
		value := xevent.StringValue(string(h.Value))
		if version.HasAttribute(attr) {
			err = s.SetAttribute(attr, value)
		} else {
			err = s.SetExtension(attr, value)
		}
		if err != nil {
			return err
		}
	}

	if ct, ok := m.header(contentTypeHeader); ok && ct != "" {
		if err := s.SetAttribute("datacontenttype", xevent.StringValue(ct)); err != nil {
			return err
		}
	}

	if len(m.record.Value) > 0 {
		return s.EndWithData(m.record.Value)
	}
	return s.End()
}

func (m *Message) DeserializeStructured(s xevent.StructuredSerializer) error {
	if m.Encoding() != xevent.EncodingStructured {
		return xevent.ErrWrongEncoding
	}
	return s.SetStructuredEvent(m.record.Value)
}

var _ xevent.Message = (*Message)(nil)
