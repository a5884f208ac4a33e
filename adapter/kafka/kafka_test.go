package kafka

import (
	"encoding/json"
	"testing"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
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

func headerValue(t *testing.T, record *kafka.Message, key string) string {
	t.Helper()
	for _, h := range record.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	t.Fatalf("header %q not found", key)
	return ""
}

func TestNewProducerMessage_Binary(t *testing.T) {
	record, err := NewProducerMessage(sampleEvent(t), "orders")
	require.NoError(t, err)

	assert.Equal(t, "orders", *record.TopicPartition.Topic)
	assert.Equal(t, "1.0", headerValue(t, record, "ce_specversion"))
	assert.Equal(t, "0001", headerValue(t, record, "ce_id"))
	assert.Equal(t, "10", headerValue(t, record, "ce_someint"))
	assert.Equal(t, "application/json", headerValue(t, record, "content-type"))
	assert.JSONEq(t, `{"hello":"world"}`, string(record.Value))
}

func TestBinaryRecord_RoundTrip(t *testing.T) {
	want := sampleEvent(t)

	record, err := NewProducerMessage(want, "orders")
	require.NoError(t, err)

	got, err := ToEvent(record)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStructuredRecord_RoundTrip(t *testing.T) {
	want := sampleEvent(t)

	record, err := NewProducerMessageStructured(want, "orders")
	require.NoError(t, err)
	assert.Equal(t, xevent.ContentTypeCloudEventsJSON, headerValue(t, record, "content-type"))

	got, err := ToEvent(record)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// A structured record can be transcoded straight onto a binary record
// through the event pivot, without the caller decoding anything.
func TestTranscode_StructuredToBinary(t *testing.T) {
	want := sampleEvent(t)

	structured, err := NewProducerMessageStructured(want, "orders")
	require.NoError(t, err)

	topic := "orders"
	binary := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
	}
	err = xevent.DeserializeBinary(NewMessage(structured), &recordWriter{record: binary})
	require.NoError(t, err)

	assert.Equal(t, "1.0", headerValue(t, binary, "ce_specversion"))
	got, err := ToEvent(binary)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestToEvent_UnknownEncoding(t *testing.T) {
	body, err := json.Marshal(map[string]string{"hello": "world"})
	require.NoError(t, err)

	record := &kafka.Message{Value: body}
	_, err = ToEvent(record)
	assert.ErrorIs(t, err, xevent.ErrWrongEncoding)
}

func TestDeserializeBinary_WrongEncoding(t *testing.T) {
	record, err := NewProducerMessageStructured(sampleEvent(t), "orders")
	require.NoError(t, err)

	err = NewMessage(record).DeserializeBinary(xevent.New())
	assert.ErrorIs(t, err, xevent.ErrWrongEncoding)
}
