package http

import (
	gohttp "net/http"
	"strings"
)

// Headers is the capability an inbound HTTP-shaped message must expose:
// lookup plus iteration over its metadata. It decouples the adapter from
// any specific HTTP library type.
type Headers interface {
	// Get returns the first value of the named header, case-insensitively.
	Get(name string) (string, bool)
	// Visit calls fn for every header with the name lowercased. Multiple
	// values of the same header are visited individually.
	Visit(fn func(name, value string))
}

// HeaderMap adapts net/http headers to the Headers capability.
type HeaderMap gohttp.Header

func (h HeaderMap) Get(name string) (string, bool) {
	vs := gohttp.Header(h).Values(name)
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

func (h HeaderMap) Visit(fn func(name, value string)) {
	for name, vs := range h {
		lower := strings.ToLower(name)
		for _, v := range vs {
			fn(lower, v)
		}
	}
}
