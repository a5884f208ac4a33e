package xevent

// SpecVersion identifies the CloudEvents specification revision an event
// conforms to. It governs which context attribute names are valid and how
// the event is laid out in structured mode.
type SpecVersion string

const (
	SpecVersionV03 SpecVersion = "0.3"
	SpecVersionV10 SpecVersion = "1.0"
)

// Canonical context attribute names per spec version, in iteration order.
var (
	attributeNamesV03 = []string{
		"specversion", "id", "type", "source",
		"datacontenttype", "schemaurl", "subject", "time",
	}
	attributeNamesV10 = []string{
		"specversion", "id", "type", "source",
		"datacontenttype", "dataschema", "subject", "time",
	}
)

// ParseSpecVersion parses the wire representation of a spec version.
func ParseSpecVersion(s string) (SpecVersion, error) {
	switch s {
	case "0.3":
		return SpecVersionV03, nil
	case "1.0":
		return SpecVersionV10, nil
	default:
		return "", &UnknownSpecVersionError{Value: s}
	}
}

func (v SpecVersion) String() string { return string(v) }

// AttributeNames returns the ordered canonical attribute names of this
// version. The returned slice must not be mutated.
func (v SpecVersion) AttributeNames() []string {
	switch v {
	case SpecVersionV03:
		return attributeNamesV03
	default:
		return attributeNamesV10
	}
}

// HasAttribute reports whether name is a context attribute of this version.
// Anything else found on the wire is an extension.
func (v SpecVersion) HasAttribute(name string) bool {
	for _, n := range v.AttributeNames() {
		if n == name {
			return true
		}
	}
	return false
}
