package xevent

import (
	"net/url"
	"time"
)

// EventBuilder constructs validated events (Builder pattern). Validation
// failures latch: the first one wins and surfaces at Build, later setter
// calls cannot clear or replace it.
type EventBuilder interface {
	Build() (*Event, error)
}

// EventBuilderV10 builds CloudEvents v1.0 events.
type EventBuilderV10 struct {
	event *Event
	err   error
}

// NewEventBuilderV10 returns a builder for an empty v1.0 event.
func NewEventBuilderV10() *EventBuilderV10 {
	return &EventBuilderV10{event: New()}
}

// EventBuilderV10From seeds a builder from an existing event, migrating it
// to v1.0.
func EventBuilderV10From(e *Event) *EventBuilderV10 {
	return &EventBuilderV10{event: e.Clone().IntoV10()}
}

func (b *EventBuilderV10) latch(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *EventBuilderV10) ID(id string) *EventBuilderV10 {
	b.event.SetID(id)
	return b
}

func (b *EventBuilderV10) Type(ty string) *EventBuilderV10 {
	b.event.SetType(ty)
	return b
}

// Source accepts any URI-reference.
func (b *EventBuilderV10) Source(source string) *EventBuilderV10 {
	b.event.SetSource(source)
	return b
}

func (b *EventBuilderV10) Subject(subject string) *EventBuilderV10 {
	b.event.SetSubject(subject)
	return b
}

func (b *EventBuilderV10) Time(t time.Time) *EventBuilderV10 {
	b.event.SetTime(t)
	return b
}

// DataSchema parses and records the dataschema attribute.
func (b *EventBuilderV10) DataSchema(schema string) *EventBuilderV10 {
	u, err := url.Parse(schema)
	if err != nil {
		b.latch(&ParseURLError{Attribute: "dataschema", Err: err})
		return b
	}
	b.event.attributes.SetDataSchema(u)
	return b
}

// Extension coerces value into the extension union; unsupported Go types
// latch an error.
func (b *EventBuilderV10) Extension(name string, value any) *EventBuilderV10 {
	ev, err := NewExtensionValue(value)
	if err != nil {
		b.latch(err)
		return b
	}
	b.event.PutExtension(name, ev)
	return b
}

func (b *EventBuilderV10) Data(datacontenttype string, data Data) *EventBuilderV10 {
	b.event.SetData(datacontenttype, data)
	return b
}

func (b *EventBuilderV10) DataWithSchema(datacontenttype, schema string, data Data) *EventBuilderV10 {
	u, err := url.Parse(schema)
	if err != nil {
		b.latch(&ParseURLError{Attribute: "dataschema", Err: err})
		return b
	}
	b.event.SetDataWithSchema(datacontenttype, u, data)
	return b
}

// Build returns the event, or the first latched validation error, or a
// MissingRequiredAttributeError when id, type or source was never set.
func (b *EventBuilderV10) Build() (*Event, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := checkRequired(b.event); err != nil {
		return nil, err
	}
	return b.event, nil
}

// EventBuilderV03 builds CloudEvents v0.3 events.
type EventBuilderV03 struct {
	event *Event
	err   error
}

// NewEventBuilderV03 returns a builder for an empty v0.3 event.
func NewEventBuilderV03() *EventBuilderV03 {
	return &EventBuilderV03{event: &Event{
		attributes: &AttributesV03{},
		extensions: map[string]ExtensionValue{},
	}}
}

// EventBuilderV03From seeds a builder from an existing event, migrating it
// to v0.3.
func EventBuilderV03From(e *Event) *EventBuilderV03 {
	return &EventBuilderV03{event: e.Clone().IntoV03()}
}

func (b *EventBuilderV03) latch(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *EventBuilderV03) ID(id string) *EventBuilderV03 {
	b.event.SetID(id)
	return b
}

func (b *EventBuilderV03) Type(ty string) *EventBuilderV03 {
	b.event.SetType(ty)
	return b
}

func (b *EventBuilderV03) Source(source string) *EventBuilderV03 {
	b.event.SetSource(source)
	return b
}

func (b *EventBuilderV03) Subject(subject string) *EventBuilderV03 {
	b.event.SetSubject(subject)
	return b
}

func (b *EventBuilderV03) Time(t time.Time) *EventBuilderV03 {
	b.event.SetTime(t)
	return b
}

// SchemaURL parses and records the schemaurl attribute.
func (b *EventBuilderV03) SchemaURL(schema string) *EventBuilderV03 {
	u, err := url.Parse(schema)
	if err != nil {
		b.latch(&ParseURLError{Attribute: "schemaurl", Err: err})
		return b
	}
	b.event.attributes.SetDataSchema(u)
	return b
}

func (b *EventBuilderV03) Extension(name string, value any) *EventBuilderV03 {
	ev, err := NewExtensionValue(value)
	if err != nil {
		b.latch(err)
		return b
	}
	b.event.PutExtension(name, ev)
	return b
}

func (b *EventBuilderV03) Data(datacontenttype string, data Data) *EventBuilderV03 {
	b.event.SetData(datacontenttype, data)
	return b
}

func (b *EventBuilderV03) DataWithSchema(datacontenttype, schema string, data Data) *EventBuilderV03 {
	u, err := url.Parse(schema)
	if err != nil {
		b.latch(&ParseURLError{Attribute: "schemaurl", Err: err})
		return b
	}
	b.event.SetDataWithSchema(datacontenttype, u, data)
	return b
}

func (b *EventBuilderV03) Build() (*Event, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := checkRequired(b.event); err != nil {
		return nil, err
	}
	return b.event, nil
}

func checkRequired(e *Event) error {
	switch {
	case e.ID() == "":
		return &MissingRequiredAttributeError{Attribute: "id"}
	case e.Type() == "":
		return &MissingRequiredAttributeError{Attribute: "type"}
	case e.Source() == "":
		return &MissingRequiredAttributeError{Attribute: "source"}
	}
	return nil
}
