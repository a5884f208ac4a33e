package redisstream

import (
	"github.com/redis/go-redis/v9"
	"github.com/trickstertwo/xevent"
)

// entryWriter assembles the field map of an outbound stream entry.
type entryWriter struct {
	values map[string]any
}

func (w *entryWriter) SetSpecVersion(v xevent.SpecVersion) error {
	w.values[SpecVersionField] = v.String()
	return nil
}

func (w *entryWriter) SetAttribute(name string, value xevent.Value) error {
	if f := xevent.HeaderFor(attrPrefix, name); f != "" {
		w.values[f] = value.String()
	} else {
		w.values[contentTypeField] = value.String()
	}
	return nil
}

func (w *entryWriter) SetExtension(name string, value xevent.Value) error {
	w.values[xevent.HeaderFor(attrPrefix, name)] = value.String()
	return nil
}

func (w *entryWriter) EndWithData(data []byte) error {
	// Raw payload bytes, binary-safe, no base64 encoding overhead.
	w.values[dataField] = data
	return nil
}

func (w *entryWriter) End() error { return nil }

func (w *entryWriter) SetStructuredEvent(data []byte) error {
	w.values[contentTypeField] = xevent.ContentTypeCloudEventsJSON
	w.values[dataField] = data
	return nil
}

var _ xevent.EventSerializer = (*entryWriter)(nil)

// NewXAddArgs projects an event onto an XADD call in binary mode.
func NewXAddArgs(e *xevent.Event, stream string) (*redis.XAddArgs, error) {
	w := &entryWriter{values: make(map[string]any, 8+len(e.Extensions()))}
	if err := e.DeserializeBinary(w); err != nil {
		return nil, err
	}
	return &redis.XAddArgs{Stream: stream, Values: w.values}, nil
}

// NewXAddArgsStructured projects an event onto an XADD call as one JSON
// document.
func NewXAddArgsStructured(e *xevent.Event, stream string) (*redis.XAddArgs, error) {
	w := &entryWriter{values: make(map[string]any, 2)}
	if err := e.DeserializeStructured(w); err != nil {
		return nil, err
	}
	return &redis.XAddArgs{Stream: stream, Values: w.values}, nil
}
