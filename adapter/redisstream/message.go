package redisstream

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/trickstertwo/xevent"
)

// Stream field names. Attributes and extensions use the ce_ prefix;
// underscores keep the fields safe for every Redis client.
const (
	SpecVersionField = "ce_specversion"

	attrPrefix       = "ce_"
	contentTypeField = "content_type"
	dataField        = "data"
)

// Message wraps a stream entry read via XREAD/XREADGROUP.
type Message struct {
	fields map[string]string
}

// NewMessage extracts the string fields of a stream entry.
func NewMessage(m redis.XMessage) *Message {
	fields := make(map[string]string, len(m.Values))
	for k, v := range m.Values {
		switch x := v.(type) {
		case string:
			fields[k] = x
		case []byte:
			fields[k] = string(x)
		default:
			fields[k] = fmt.Sprint(x)
		}
	}
	return &Message{fields: fields}
}

// ToEvent turns a stream entry into an event, whichever mode it is in.
func ToEvent(m redis.XMessage) (*xevent.Event, error) {
	return xevent.ToEvent(NewMessage(m))
}

func (m *Message) Encoding() xevent.Encoding {
	_, hasSpecVersion := m.fields[SpecVersionField]
	return xevent.DetectEncoding(m.fields[contentTypeField], hasSpecVersion)
}

func (m *Message) DeserializeBinary(s xevent.BinarySerializer) error {
	if m.Encoding() != xevent.EncodingBinary {
		return xevent.ErrWrongEncoding
	}

	version, err := xevent.ParseSpecVersion(m.fields[SpecVersionField])
	if err != nil {
		return err
	}
	if err := s.SetSpecVersion(version); err != nil {
		return err
	}

	for name, value := range m.fields {
		if name == SpecVersionField {
			continue
		}
		attr, ok := xevent.AttributeNameOf(attrPrefix, name)
		if !ok {
			continue
		}
		if version.HasAttribute(attr) {
			err = s.SetAttribute(attr, xevent.StringValue(value))
		} else {
			err = s.SetExtension(attr, xevent.StringValue(value))
		}
		if err != nil {
			return err
		}
	}

	if ct := m.fields[contentTypeField]; ct != "" {
		if err := s.SetAttribute("datacontenttype", xevent.StringValue(ct)); err != nil {
			return err
		}
	}

	if body := m.fields[dataField]; body != "" {
		return s.EndWithData([]byte(body))
	}
	return s.End()
}

func (m *Message) DeserializeStructured(s xevent.StructuredSerializer) error {
	if m.Encoding() != xevent.EncodingStructured {
		return xevent.ErrWrongEncoding
	}
	return s.SetStructuredEvent([]byte(m.fields[dataField]))
}

var _ xevent.Message = (*Message)(nil)
