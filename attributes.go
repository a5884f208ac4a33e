package xevent

import (
	"net/url"
	"time"
)

// Attributes is the version-tagged context attribute bag of an event.
// The required attributes (id, type, source) are always present; the rest
// are optional and report their zero value when unset.
//
// The two implementations are *AttributesV03 and *AttributesV10. Migration
// between them renames dataschema and schemaurl and is the identity when
// the target version is already active.
type Attributes interface {
	SpecVersion() SpecVersion

	ID() string
	Type() string
	// Source is a URI-reference.
	Source() string
	DataContentType() string
	// DataSchema is the v1.0 dataschema / v0.3 schemaurl attribute.
	DataSchema() *url.URL
	Subject() string
	Time() time.Time

	SetID(id string)
	SetType(ty string)
	SetSource(source string)
	SetDataContentType(ct string)
	SetDataSchema(schema *url.URL)
	SetSubject(subject string)
	SetTime(t time.Time)

	// IntoV03 and IntoV10 migrate the attribute bag across versions.
	IntoV03() *AttributesV03
	IntoV10() *AttributesV10

	// visit pushes every attribute present through a binary-mode visitor,
	// in canonical order. The spec version itself is not emitted; callers
	// do that first via SetSpecVersion.
	visit(s BinarySerializer) error

	// set routes one named attribute into the bag, failing with
	// UnknownAttributeError when the name does not belong to this version.
	set(name string, value Value) error
}
