package kafka

import (
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/trickstertwo/xevent"
)

// recordWriter assembles an outbound Kafka record from either protocol.
type recordWriter struct {
	record *kafka.Message
}

func (w *recordWriter) addHeader(key, value string) {
	w.record.Headers = append(w.record.Headers, kafka.Header{Key: key, Value: []byte(value)})
}

func (w *recordWriter) SetSpecVersion(v xevent.SpecVersion) error {
	w.addHeader(SpecVersionHeader, v.String())
	return nil
}

func (w *recordWriter) SetAttribute(name string, value xevent.Value) error {
	if h := xevent.HeaderFor(xevent.PrefixKafka, name); h != "" {
		w.addHeader(h, value.String())
	} else {
		w.addHeader(contentTypeHeader, value.String())
	}
	return nil
}

func (w *recordWriter) SetExtension(name string, value xevent.Value) error {
	w.addHeader(xevent.HeaderFor(xevent.PrefixKafka, name), value.String())
	return nil
}

func (w *recordWriter) EndWithData(data []byte) error {
	w.record.Value = data
	return nil
}

func (w *recordWriter) End() error { return nil }

func (w *recordWriter) SetStructuredEvent(data []byte) error {
	w.addHeader(contentTypeHeader, xevent.ContentTypeCloudEventsJSON)
	w.record.Value = data
	return nil
}

var _ xevent.EventSerializer = (*recordWriter)(nil)

// NewProducerMessage projects an event onto a producible record in binary
// mode.
func NewProducerMessage(e *xevent.Event, topic string) (*kafka.Message, error) {
	record := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
	}
	if err := e.DeserializeBinary(&recordWriter{record: record}); err != nil {
		return nil, err
	}
	return record, nil
}

// NewProducerMessageStructured projects an event onto a producible record
// as one JSON document.
func NewProducerMessageStructured(e *xevent.Event, topic string) (*kafka.Message, error) {
	record := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
	}
	if err := e.DeserializeStructured(&recordWriter{record: record}); err != nil {
		return nil, err
	}
	return record, nil
}
