package xevent

import "strings"

// Structured-mode content type tokens.
const (
	ContentTypeCloudEventsJSON      = "application/cloudevents+json"
	ContentTypeCloudEventsBatchJSON = "application/cloudevents-batch+json"
)

// Attribute field prefixes per transport family. AMQP uses its prefix only
// in structured application property keys.
const (
	PrefixHTTP  = "ce-"
	PrefixKafka = "ce_"
	PrefixMQTT  = "ce_"
	PrefixAMQP  = "cloudEvents:"
)

// SpecVersionAttribute is the canonical name of the binary-mode marker
// attribute.
const SpecVersionAttribute = "specversion"

// DataContentTypeAttribute never travels prefixed: it reuses the
// transport's native content-type field.
const DataContentTypeAttribute = "datacontenttype"

// HeaderFor maps a canonical attribute or extension name to its wire field
// name under the given transport prefix. It returns "" for
// datacontenttype, which the adapter must place in its native content-type
// field instead.
func HeaderFor(prefix, name string) string {
	if name == DataContentTypeAttribute {
		return ""
	}
	return prefix + name
}

// AttributeNameOf inverts HeaderFor: it strips the transport prefix from a
// wire field name, reporting false for fields that are not prefixed event
// attributes. Matching is case-insensitive, as most transports normalize
// header casing.
func AttributeNameOf(prefix, header string) (string, bool) {
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.ToLower(header[len(prefix):]), true
}
