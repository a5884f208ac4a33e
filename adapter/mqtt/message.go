// Package mqtt binds events to MQTT v5 PUBLISH packets: context attributes
// travel as ce_-prefixed user properties in binary mode, the packet
// payload carries the data and the native ContentType property carries
// datacontenttype.
package mqtt

import (
	"github.com/eclipse/paho.golang/paho"
	"github.com/trickstertwo/xevent"
)

// SpecVersionProperty is the binary-mode marker field of the MQTT binding.
const SpecVersionProperty = "ce_specversion"

// Message wraps a received PUBLISH packet.
type Message struct {
	publish *paho.Publish
}

// NewMessage wraps an already-received packet.
func NewMessage(p *paho.Publish) *Message { return &Message{publish: p} }

// ToEvent turns a received packet into an event, whichever mode it is in.
func ToEvent(p *paho.Publish) (*xevent.Event, error) {
	return xevent.ToEvent(NewMessage(p))
}

func (m *Message) userProperty(name string) (string, bool) {
	if m.publish.Properties == nil {
		return "", false
	}
	for _, p := range m.publish.Properties.User {
		if p.Key == name {
			return p.Value, true
		}
	}
	return "", false
}

func (m *Message) contentType() string {
	if m.publish.Properties == nil {
		return ""
	}
	return m.publish.Properties.ContentType
}

func (m *Message) Encoding() xevent.Encoding {
	_, hasSpecVersion := m.userProperty(SpecVersionProperty)
	return xevent.DetectEncoding(m.contentType(), hasSpecVersion)
}

func (m *Message) DeserializeBinary(s xevent.BinarySerializer) error {
	if m.Encoding() != xevent.EncodingBinary {
		return xevent.ErrWrongEncoding
	}

	raw, _ := m.userProperty(SpecVersionProperty)
	version, err := xevent.ParseSpecVersion(raw)
	if err != nil {
		return err
	}
	if err := s.SetSpecVersion(version); err != nil {
		return err
	}

	for _, p := range m.publish.Properties.User {
		if p.Key == SpecVersionProperty {
			continue
		}
		attr, ok := xevent.AttributeNameOf(xevent.PrefixMQTT, p.Key)
		if !ok {
			continue
		}
		value := xevent.StringValue(p.Value)
		if version.HasAttribute(attr) {
			err = s.SetAttribute(attr, value)
		} else {
			err = s.SetExtension(attr, value)
		}
		if err != nil {
			return err
		}
	}

	if ct := m.contentType(); ct != "" {
		if err := s.SetAttribute("datacontenttype", xevent.StringValue(ct)); err != nil {
			return err
		}
	}

	if len(m.publish.Payload) > 0 {
		return s.EndWithData(m.publish.Payload)
	}
	return s.End()
}

func (m *Message) DeserializeStructured(s xevent.StructuredSerializer) error {
	if m.Encoding() != xevent.EncodingStructured {
		return xevent.ErrWrongEncoding
	}
	return s.SetStructuredEvent(m.publish.Payload)
}

var _ xevent.Message = (*Message)(nil)
