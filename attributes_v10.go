package xevent

import (
	"net/url"
	"time"
)

// AttributesV10 holds the CloudEvents v1.0 context attributes.
type AttributesV10 struct {
	id              string
	ty              string
	source          string
	datacontenttype string
	dataschema      *url.URL
	subject         string
	time            time.Time
}

func (a *AttributesV10) SpecVersion() SpecVersion { return SpecVersionV10 }

func (a *AttributesV10) ID() string              { return a.id }
func (a *AttributesV10) Type() string            { return a.ty }
func (a *AttributesV10) Source() string          { return a.source }
func (a *AttributesV10) DataContentType() string { return a.datacontenttype }
func (a *AttributesV10) DataSchema() *url.URL    { return a.dataschema }
func (a *AttributesV10) Subject() string         { return a.subject }
func (a *AttributesV10) Time() time.Time         { return a.time }

func (a *AttributesV10) SetID(id string)              { a.id = id }
func (a *AttributesV10) SetType(ty string)            { a.ty = ty }
func (a *AttributesV10) SetSource(source string)      { a.source = source }
func (a *AttributesV10) SetDataContentType(ct string) { a.datacontenttype = ct }
func (a *AttributesV10) SetDataSchema(u *url.URL)     { a.dataschema = u }
func (a *AttributesV10) SetSubject(subject string)    { a.subject = subject }
func (a *AttributesV10) SetTime(t time.Time)          { a.time = t.UTC() }

func (a *AttributesV10) IntoV10() *AttributesV10 { return a }

func (a *AttributesV10) IntoV03() *AttributesV03 {
	return &AttributesV03{
		id:              a.id,
		ty:              a.ty,
		source:          a.source,
		datacontenttype: a.datacontenttype,
		schemaurl:       a.dataschema,
		subject:         a.subject,
		time:            a.time,
	}
}

func (a *AttributesV10) visit(s BinarySerializer) error {
	if err := s.SetAttribute("id", StringValue(a.id)); err != nil {
		return err
	}
	if err := s.SetAttribute("type", StringValue(a.ty)); err != nil {
		return err
	}
	if err := s.SetAttribute("source", URIRefValue(a.source)); err != nil {
		return err
	}
	if a.datacontenttype != "" {
		if err := s.SetAttribute("datacontenttype", StringValue(a.datacontenttype)); err != nil {
			return err
		}
	}
	if a.dataschema != nil {
		if err := s.SetAttribute("dataschema", URIValue(a.dataschema)); err != nil {
			return err
		}
	}
	if a.subject != "" {
		if err := s.SetAttribute("subject", StringValue(a.subject)); err != nil {
			return err
		}
	}
	if !a.time.IsZero() {
		if err := s.SetAttribute("time", TimeValue(a.time)); err != nil {
			return err
		}
	}
	return nil
}

func (a *AttributesV10) set(name string, value Value) error {
	switch name {
	case "id":
		a.id = value.String()
	case "type":
		a.ty = value.String()
	case "source":
		a.source = value.String()
	case "datacontenttype":
		a.datacontenttype = value.String()
	case "dataschema":
		u, err := value.URL()
		if err != nil {
			return err
		}
		a.dataschema = u
	case "subject":
		a.subject = value.String()
	case "time":
		t, err := value.Time()
		if err != nil {
			return err
		}
		a.time = t
	default:
		return &UnknownAttributeError{Name: name}
	}
	return nil
}
