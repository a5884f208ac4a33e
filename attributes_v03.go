package xevent

import (
	"net/url"
	"time"
)

// AttributesV03 holds the CloudEvents v0.3 context attributes. The schema
// attribute is named schemaurl in this version.
type AttributesV03 struct {
	id              string
	ty              string
	source          string
	datacontenttype string
	schemaurl       *url.URL
	subject         string
	time            time.Time
}

func (a *AttributesV03) SpecVersion() SpecVersion { return SpecVersionV03 }

func (a *AttributesV03) ID() string              { return a.id }
func (a *AttributesV03) Type() string            { return a.ty }
func (a *AttributesV03) Source() string          { return a.source }
func (a *AttributesV03) DataContentType() string { return a.datacontenttype }
func (a *AttributesV03) DataSchema() *url.URL    { return a.schemaurl }
func (a *AttributesV03) Subject() string         { return a.subject }
func (a *AttributesV03) Time() time.Time         { return a.time }

func (a *AttributesV03) SetID(id string)              { a.id = id }
func (a *AttributesV03) SetType(ty string)            { a.ty = ty }
func (a *AttributesV03) SetSource(source string)      { a.source = source }
func (a *AttributesV03) SetDataContentType(ct string) { a.datacontenttype = ct }
func (a *AttributesV03) SetDataSchema(u *url.URL)     { a.schemaurl = u }
func (a *AttributesV03) SetSubject(subject string)    { a.subject = subject }
func (a *AttributesV03) SetTime(t time.Time)          { a.time = t.UTC() }

func (a *AttributesV03) IntoV03() *AttributesV03 { return a }

func (a *AttributesV03) IntoV10() *AttributesV10 {
	return &AttributesV10{
		id:              a.id,
		ty:              a.ty,
		source:          a.source,
		datacontenttype: a.datacontenttype,
		dataschema:      a.schemaurl,
		subject:         a.subject,
		time:            a.time,
	}
}

func (a *AttributesV03) visit(s BinarySerializer) error {
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
	if a.schemaurl != nil {
		if err := s.SetAttribute("schemaurl", URIValue(a.schemaurl)); err != nil {
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

func (a *AttributesV03) set(name string, value Value) error {
	switch name {
	case "id":
		a.id = value.String()
	case "type":
		a.ty = value.String()
	case "source":
		a.source = value.String()
	case "datacontenttype":
		a.datacontenttype = value.String()
	case "schemaurl":
		u, err := value.URL()
		if err != nil {
			return err
		}
		a.schemaurl = u
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
