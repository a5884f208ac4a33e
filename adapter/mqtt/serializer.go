package mqtt

import (
	"github.com/eclipse/paho.golang/paho"
	"github.com/trickstertwo/xevent"
)

// publishWriter assembles an outbound PUBLISH packet from either protocol.
type publishWriter struct {
	publish *paho.Publish
}

func (w *publishWriter) properties() *paho.PublishProperties {
	if w.publish.Properties == nil {
		w.publish.Properties = &paho.PublishProperties{}
	}
	return w.publish.Properties
}

func (w *publishWriter) SetSpecVersion(v xevent.SpecVersion) error {
	props := w.properties()
	props.User = append(props.User, paho.UserProperty{Key: SpecVersionProperty, Value: v.String()})
	return nil
}

func (w *publishWriter) SetAttribute(name string, value xevent.Value) error {
	props := w.properties()
	if h := xevent.HeaderFor(xevent.PrefixMQTT, name); h != "" {
		props.User = append(props.User, paho.UserProperty{Key: h, Value: value.String()})
	} else {
		props.ContentType = value.String()
	}
	return nil
}

func (w *publishWriter) SetExtension(name string, value xevent.Value) error {
	props := w.properties()
	props.User = append(props.User, paho.UserProperty{
		Key:   xevent.HeaderFor(xevent.PrefixMQTT, name),
		Value: value.String(),
	})
	return nil
}

func (w *publishWriter) EndWithData(data []byte) error {
	w.publish.Payload = data
	return nil
}

func (w *publishWriter) End() error { return nil }

func (w *publishWriter) SetStructuredEvent(data []byte) error {
	w.properties().ContentType = xevent.ContentTypeCloudEventsJSON
	w.publish.Payload = data
	return nil
}

var _ xevent.EventSerializer = (*publishWriter)(nil)

// NewPublish projects an event onto a publishable packet in binary mode.
func NewPublish(e *xevent.Event, topic string, qos byte) (*paho.Publish, error) {
	p := &paho.Publish{Topic: topic, QoS: qos}
	if err := e.DeserializeBinary(&publishWriter{publish: p}); err != nil {
		return nil, err
	}
	return p, nil
}

// NewPublishStructured projects an event onto a publishable packet as one
// JSON document.
func NewPublishStructured(e *xevent.Event, topic string, qos byte) (*paho.Publish, error) {
	p := &paho.Publish{Topic: topic, QoS: qos}
	if err := e.DeserializeStructured(&publishWriter{publish: p}); err != nil {
		return nil, err
	}
	return p, nil
}
