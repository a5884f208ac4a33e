package redisstream

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trickstertwo/xevent"
)

func sampleEvent(t *testing.T) *xevent.Event {
	t.Helper()
	e, err := xevent.NewEventBuilderV10().
		ID("0001").
		Type("example.test").
		Source("http://localhost/").
		Extension("someint", "10").
		Data("application/json", xevent.JSONData{Value: map[string]any{"hello": "world"}}).
		Build()
	require.NoError(t, err)
	return e
}

// consumed simulates the entry as XREAD hands it back: the producer-side
// field map round-trips through Redis unchanged.
func consumed(args *redis.XAddArgs) redis.XMessage {
	return redis.XMessage{ID: "1-0", Values: args.Values.(map[string]any)}
}

func TestNewXAddArgs_Binary(t *testing.T) {
	args, err := NewXAddArgs(sampleEvent(t), "orders")
	require.NoError(t, err)

	assert.Equal(t, "orders", args.Stream)
	values := args.Values.(map[string]any)
	assert.Equal(t, "1.0", values["ce_specversion"])
	assert.Equal(t, "0001", values["ce_id"])
	assert.Equal(t, "10", values["ce_someint"])
	assert.Equal(t, "application/json", values["content_type"])
	assert.JSONEq(t, `{"hello":"world"}`, string(values["data"].([]byte)))
}

func TestBinaryEntry_RoundTrip(t *testing.T) {
	want := sampleEvent(t)

	args, err := NewXAddArgs(want, "orders")
	require.NoError(t, err)

	got, err := ToEvent(consumed(args))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStructuredEntry_RoundTrip(t *testing.T) {
	want := sampleEvent(t)

	args, err := NewXAddArgsStructured(want, "orders")
	require.NoError(t, err)

	values := args.Values.(map[string]any)
	assert.Equal(t, xevent.ContentTypeCloudEventsJSON, values["content_type"])

	got, err := ToEvent(consumed(args))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestToEvent_UnknownEncoding(t *testing.T) {
	_, err := ToEvent(redis.XMessage{ID: "1-0", Values: map[string]any{
		"data": `{"hello":"world"}`,
	}})
	assert.ErrorIs(t, err, xevent.ErrWrongEncoding)
}

func TestBinaryEntry_NoPayload(t *testing.T) {
	want, err := xevent.NewEventBuilderV10().
		ID("0002").
		Type("example.test").
		Source("http://localhost/").
		Build()
	require.NoError(t, err)

	args, err := NewXAddArgs(want, "orders")
	require.NoError(t, err)

	got, err := ToEvent(consumed(args))
	require.NoError(t, err)
	assert.Nil(t, got.Data())
	assert.Equal(t, want, got)
}
