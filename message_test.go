package xevent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullEventV10(t *testing.T) *Event {
	t.Helper()
	e, err := NewEventBuilderV10().
		ID("0001").
		Type("example.test").
		Source("http://localhost/").
		Subject("cloudevents-sdk").
		Time(time.Date(2020, 3, 16, 11, 50, 0, 0, time.UTC)).
		DataSchema("https://example.com/schemas/order").
		Extension("someint", 10).
		Extension("flag", true).
		Extension("tag", "blue").
		Data("application/json", JSONData{Value: map[string]any{"hello": "world"}}).
		Build()
	require.NoError(t, err)
	return e
}

// The Event is the pivot between wire formats: it implements both sides of
// both protocols, so projecting an event onto a fresh event must be the
// identity. Extensions keep their native types here because no transport
// stringification is involved.
func TestEvent_BinaryPivotRoundTripV10(t *testing.T) {
	src := fullEventV10(t)

	target := New()
	require.NoError(t, src.DeserializeBinary(target))

	assert.Equal(t, src, target)
}

func TestEvent_BinaryPivotRoundTripV03(t *testing.T) {
	src, err := NewEventBuilderV03().
		ID("0002").
		Type("example.test").
		Source("http://localhost/").
		SchemaURL("https://example.com/schemas/order").
		Extension("someint", 10).
		Data("application/json", JSONData{Value: []any{"a", "b"}}).
		Build()
	require.NoError(t, err)

	target := New()
	require.NoError(t, src.DeserializeBinary(target))

	assert.Equal(t, SpecVersionV03, target.SpecVersion())
	assert.Equal(t, src, target)
}

func TestEvent_StructuredPivotRoundTrip(t *testing.T) {
	src := fullEventV10(t)

	target := New()
	require.NoError(t, src.DeserializeStructured(target))

	assert.Equal(t, src, target)
}

// An absent datacontenttype leaves the payload opaque on the receiving
// side: bytes in, bytes out, no interpretation.
func TestEvent_BinaryPivotOpaquePayload(t *testing.T) {
	src, err := NewEventBuilderV10().
		ID("0001").
		Type("example.test").
		Source("http://localhost/").
		Data("", BinaryData([]byte{0xCA, 0xFE})).
		Build()
	require.NoError(t, err)

	target := New()
	require.NoError(t, src.DeserializeBinary(target))

	assert.Equal(t, BinaryData([]byte{0xCA, 0xFE}), target.Data())
	assert.Empty(t, target.DataContentType())
}

func TestEvent_BinaryPivotNoPayload(t *testing.T) {
	src, err := NewEventBuilderV10().
		ID("0001").
		Type("example.test").
		Source("http://localhost/").
		Build()
	require.NoError(t, err)

	target := New()
	require.NoError(t, src.DeserializeBinary(target))

	assert.Nil(t, target.Data())
	assert.Equal(t, src, target)
}

func TestEvent_SetSpecVersionMigrates(t *testing.T) {
	e := fullEventV10(t)

	require.NoError(t, e.SetSpecVersion(SpecVersionV03))
	assert.Equal(t, SpecVersionV03, e.SpecVersion())

	err := e.SetSpecVersion(SpecVersion("9.9"))
	var unknown *UnknownSpecVersionError
	require.ErrorAs(t, err, &unknown)
}

// Values arriving over a wire adapter are stringified; SetExtension narrows
// them back into the extension union, keeping bool and int alive only for
// typed values.
func TestEvent_SetExtensionNarrows(t *testing.T) {
	e := New()

	require.NoError(t, e.SetExtension("count", IntValue(10)))
	require.NoError(t, e.SetExtension("flag", BoolValue(true)))
	require.NoError(t, e.SetExtension("raw", BinaryValue([]byte("hi"))))

	ext, _ := e.Extension("count")
	assert.Equal(t, IntExtension(10), ext)
	ext, _ = e.Extension("flag")
	assert.Equal(t, BoolExtension(true), ext)
	ext, _ = e.Extension("raw")
	assert.Equal(t, StringExtension("aGk="), ext)
}
