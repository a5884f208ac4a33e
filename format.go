package xevent

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"
)

// EventFormat is the Strategy for structured-mode document codecs. The
// JSON format is registered out of the box; additional formats register by
// media type.
type EventFormat interface {
	MediaType() string
	Marshal(e *Event) ([]byte, error)
	Unmarshal(data []byte, e *Event) error
}

var (
	formatRegistryMu sync.RWMutex
	formatRegistry   = map[string]EventFormat{
		ContentTypeCloudEventsJSON: jsonFormat{},
	}
)

// RegisterFormat registers a structured event format by its media type.
func RegisterFormat(f EventFormat) error {
	if f == nil {
		return fmt.Errorf("format must not be nil")
	}
	if f.MediaType() == "" {
		return fmt.Errorf("format media type must not be empty")
	}
	formatRegistryMu.Lock()
	formatRegistry[f.MediaType()] = f
	formatRegistryMu.Unlock()
	return nil
}

// LookupFormat resolves a format from a content type, ignoring parameters.
func LookupFormat(contentType string) (EventFormat, bool) {
	formatRegistryMu.RLock()
	f, ok := formatRegistry[mediaType(contentType)]
	formatRegistryMu.RUnlock()
	return f, ok
}

type jsonFormat struct{}

func (jsonFormat) MediaType() string { return ContentTypeCloudEventsJSON }

func (jsonFormat) Marshal(e *Event) ([]byte, error) { return json.Marshal(e) }

func (jsonFormat) Unmarshal(data []byte, e *Event) error { return json.Unmarshal(data, e) }

// MarshalJSON renders the event in the version-specific structured JSON
// form. Binary payloads go under data_base64 on v1.0 and under data plus
// datacontentencoding=base64 on v0.3. Extensions keep their native JSON
// typing.
func (e *Event) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"specversion": e.SpecVersion().String(),
		"id":          e.ID(),
		"type":        e.Type(),
		"source":      e.Source(),
	}
	if ct := e.DataContentType(); ct != "" {
		m["datacontenttype"] = ct
	}
	if u := e.DataSchema(); u != nil {
		m[e.schemaAttributeName()] = u.String()
	}
	if s := e.Subject(); s != "" {
		m["subject"] = s
	}
	if t := e.Time(); !t.IsZero() {
		m["time"] = t.Format(time.RFC3339Nano)
	}
	for name, value := range e.extensions {
		m[name] = value
	}
	switch d := e.data.(type) {
	case nil:
	case JSONData:
		m["data"] = d.Value
	case TextData:
		m["data"] = string(d)
	case BinaryData:
		enc := base64.StdEncoding.EncodeToString(d)
		if e.SpecVersion() == SpecVersionV03 {
			m["data"] = enc
			m["datacontentencoding"] = "base64"
		} else {
			m["data_base64"] = enc
		}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, &JSONError{Err: err}
	}
	return b, nil
}

func (e *Event) schemaAttributeName() string {
	if e.SpecVersion() == SpecVersionV03 {
		return "schemaurl"
	}
	return "dataschema"
}

// UnmarshalJSON decodes the version-specific structured JSON form. Fields
// not in the version's attribute set become extensions; null fields are
// treated as absent.
func (e *Event) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &JSONError{Err: err}
	}

	sv, err := popString(raw, "specversion")
	if err != nil {
		return err
	}
	if sv == "" {
		return &MissingRequiredAttributeError{Attribute: "specversion"}
	}
	version, err := ParseSpecVersion(sv)
	if err != nil {
		return err
	}

	var attrs Attributes
	if version == SpecVersionV03 {
		attrs = &AttributesV03{}
	} else {
		attrs = &AttributesV10{}
	}
	for _, name := range []string{"id", "type", "source"} {
		v, err := popString(raw, name)
		if err != nil {
			return err
		}
		if v == "" {
			return &MissingRequiredAttributeError{Attribute: name}
		}
		if err := attrs.set(name, StringValue(v)); err != nil {
			return err
		}
	}
	for _, name := range []string{"datacontenttype", "subject"} {
		v, err := popString(raw, name)
		if err != nil {
			return err
		}
		if v != "" {
			if err := attrs.set(name, StringValue(v)); err != nil {
				return err
			}
		}
	}
	schemaName := "dataschema"
	if version == SpecVersionV03 {
		schemaName = "schemaurl"
	}
	if v, err := popString(raw, schemaName); err != nil {
		return err
	} else if v != "" {
		u, err := url.Parse(v)
		if err != nil {
			return &ParseURLError{Attribute: schemaName, Err: err}
		}
		attrs.SetDataSchema(u)
	}
	if v, err := popString(raw, "time"); err != nil {
		return err
	} else if v != "" {
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return &ParseTimeError{Attribute: "time", Err: err}
		}
		attrs.SetTime(t)
	}

	payload, err := popData(raw, version, attrs.DataContentType())
	if err != nil {
		return err
	}

	extensions := make(map[string]ExtensionValue, len(raw))
	for name, rv := range raw {
		if isJSONNull(rv) {
			continue
		}
		var ev ExtensionValue
		if err := ev.UnmarshalJSON(rv); err != nil {
			return err
		}
		extensions[name] = ev
	}

	e.attributes = attrs
	e.data = payload
	e.extensions = extensions
	return nil
}

func popString(m map[string]json.RawMessage, name string) (string, error) {
	rv, ok := m[name]
	if !ok || isJSONNull(rv) {
		delete(m, name)
		return "", nil
	}
	delete(m, name)
	var s string
	if err := json.Unmarshal(rv, &s); err != nil {
		return "", &JSONError{Err: err}
	}
	return s, nil
}

func isJSONNull(rv json.RawMessage) bool {
	return len(bytes.TrimSpace(rv)) == 0 || bytes.Equal(bytes.TrimSpace(rv), []byte("null"))
}

// popData extracts the payload following the version-specific rules.
func popData(m map[string]json.RawMessage, version SpecVersion, contentType string) (Data, error) {
	isJSON := contentType == "" || isJSONContentType(contentType)

	if version == SpecVersionV03 {
		rv, ok := m["data"]
		delete(m, "data")
		enc, err := popString(m, "datacontentencoding")
		if err != nil {
			return nil, err
		}
		if !ok || isJSONNull(rv) {
			return nil, nil
		}
		if enc == "base64" {
			b, err := decodeBase64JSONString(rv)
			if err != nil {
				return nil, err
			}
			if isJSON {
				var v any
				if err := json.Unmarshal(b, &v); err != nil {
					return nil, &JSONError{Err: err}
				}
				return JSONData{Value: v}, nil
			}
			return BinaryData(b), nil
		}
		return decodePlainData(rv, isJSON)
	}

	rv, hasData := m["data"]
	rb, hasBase64 := m["data_base64"]
	delete(m, "data")
	delete(m, "data_base64")
	if hasData && isJSONNull(rv) {
		hasData = false
	}
	if hasBase64 && isJSONNull(rb) {
		hasBase64 = false
	}
	switch {
	case hasData && hasBase64:
		return nil, &JSONError{Err: fmt.Errorf("cannot have both data and data_base64 field")}
	case hasData:
		return decodePlainData(rv, isJSON)
	case hasBase64:
		b, err := decodeBase64JSONString(rb)
		if err != nil {
			return nil, err
		}
		if isJSON {
			var v any
			if err := json.Unmarshal(b, &v); err == nil {
				return JSONData{Value: v}, nil
			}
		}
		return BinaryData(b), nil
	default:
		return nil, nil
	}
}

func decodePlainData(rv json.RawMessage, isJSON bool) (Data, error) {
	if isJSON {
		var v any
		if err := json.Unmarshal(rv, &v); err != nil {
			return nil, &JSONError{Err: err}
		}
		return JSONData{Value: v}, nil
	}
	var s string
	if err := json.Unmarshal(rv, &s); err != nil {
		return nil, &JSONError{Err: err}
	}
	return TextData(s), nil
}

func decodeBase64JSONString(rv json.RawMessage) ([]byte, error) {
	var s string
	if err := json.Unmarshal(rv, &s); err != nil {
		return nil, &JSONError{Err: err}
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, &Base64DecodingError{Err: err}
	}
	return b, nil
}

// MarshalBatch renders events in the array batch form
// (application/cloudevents-batch+json).
func MarshalBatch(events []*Event) ([]byte, error) {
	b, err := json.Marshal(events)
	if err != nil {
		return nil, &JSONError{Err: err}
	}
	return b, nil
}

// UnmarshalBatch decodes the array batch form.
func UnmarshalBatch(data []byte) ([]*Event, error) {
	var events []*Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, err
	}
	return events, nil
}
