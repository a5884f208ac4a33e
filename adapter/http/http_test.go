package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	gohttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trickstertwo/xevent"
)

func binaryRequest(t *testing.T, headers map[string]string, body []byte) *gohttp.Request {
	t.Helper()
	var r *gohttp.Request
	if body != nil {
		r = httptest.NewRequest(gohttp.MethodPost, "http://localhost/", bytes.NewReader(body))
	} else {
		r = httptest.NewRequest(gohttp.MethodPost, "http://localhost/", nil)
	}
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	return r
}

func TestToEvent_BinaryWithoutPayload(t *testing.T) {
	req := binaryRequest(t, map[string]string{
		"ce-specversion": "1.0",
		"ce-id":          "0001",
		"ce-type":        "example.test",
		"ce-source":      "http://localhost/",
		"ce-someint":     "10",
	}, nil)

	e, err := ToEvent(req)
	require.NoError(t, err)

	want, err := xevent.NewEventBuilderV10().
		ID("0001").
		Type("example.test").
		Source("http://localhost/").
		Extension("someint", "10").
		Build()
	require.NoError(t, err)
	assert.Equal(t, want, e)
}

func TestToEvent_BinaryWithJSONPayload(t *testing.T) {
	req := binaryRequest(t, map[string]string{
		"ce-specversion": "1.0",
		"ce-id":          "0001",
		"ce-type":        "example.test",
		"ce-source":      "http://localhost/",
		"ce-someint":     "10",
		"content-type":   "application/json",
	}, []byte(`{"hello":"world"}`))

	e, err := ToEvent(req)
	require.NoError(t, err)

	assert.Equal(t, "application/json", e.DataContentType())
	assert.Equal(t, xevent.JSONData{Value: map[string]any{"hello": "world"}}, e.Data())
}

// An unparseable payload type stays opaque when no content type is
// declared; with a JSON content type it must parse or fail.
func TestToEvent_BinaryOpaquePayload(t *testing.T) {
	req := binaryRequest(t, map[string]string{
		"ce-specversion": "1.0",
		"ce-id":          "0001",
		"ce-type":        "example.test",
		"ce-source":      "http://localhost/",
	}, []byte(`{"hello":"world"}`))

	e, err := ToEvent(req)
	require.NoError(t, err)
	assert.Equal(t, xevent.BinaryData(`{"hello":"world"}`), e.Data())
}

func TestToEvent_InvalidSpecVersion(t *testing.T) {
	req := binaryRequest(t, map[string]string{
		"ce-specversion": "BAD SPECIFICATION",
		"ce-id":          "0001",
		"ce-type":        "example.test",
		"ce-source":      "http://localhost/",
	}, nil)

	_, err := ToEvent(req)
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid specversion BAD SPECIFICATION")
}

func TestToEvent_UnknownEncoding(t *testing.T) {
	req := binaryRequest(t, map[string]string{
		"content-type": "application/json",
	}, []byte(`{"hello":"world"}`))

	_, err := ToEvent(req)
	assert.ErrorIs(t, err, xevent.ErrWrongEncoding)
}

func TestToEvent_Structured(t *testing.T) {
	want, err := xevent.NewEventBuilderV10().
		ID("0001").
		Type("example.test").
		Source("http://localhost/").
		Extension("someint", 10).
		Data("application/json", xevent.JSONData{Value: map[string]any{"hello": "world"}}).
		Build()
	require.NoError(t, err)

	body, err := json.Marshal(want)
	require.NoError(t, err)

	req := binaryRequest(t, map[string]string{
		"content-type": xevent.ContentTypeCloudEventsJSON,
	}, body)

	e, err := ToEvent(req)
	require.NoError(t, err)
	assert.Equal(t, want, e)
}

func TestWriteRequest_BinaryRoundTrip(t *testing.T) {
	want, err := xevent.NewEventBuilderV10().
		ID("0001").
		Type("example.test").
		Source("http://localhost/").
		Subject("cloudevents-sdk").
		Extension("someint", "10").
		Data("application/json", xevent.JSONData{Value: map[string]any{"hello": "world"}}).
		Build()
	require.NoError(t, err)

	req := httptest.NewRequest(gohttp.MethodPost, "http://localhost/", nil)
	require.NoError(t, WriteRequest(want, req))

	assert.Equal(t, "1.0", req.Header.Get("ce-specversion"))
	assert.Equal(t, "0001", req.Header.Get("ce-id"))
	assert.Equal(t, "application/json", req.Header.Get("content-type"))
	assert.Empty(t, req.Header.Get("ce-datacontenttype"))

	got, err := ToEvent(req)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWriteRequestStructured_RoundTrip(t *testing.T) {
	want, err := xevent.NewEventBuilderV03().
		ID("0002").
		Type("example.test").
		Source("http://localhost/").
		Data("application/octet-stream", xevent.BinaryData([]byte{0xCA, 0xFE})).
		Build()
	require.NoError(t, err)

	req := httptest.NewRequest(gohttp.MethodPost, "http://localhost/", nil)
	require.NoError(t, WriteRequestStructured(want, req))

	assert.Equal(t, xevent.ContentTypeCloudEventsJSON, req.Header.Get("content-type"))

	got, err := ToEvent(req)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWriteResponse_Binary(t *testing.T) {
	e, err := xevent.NewEventBuilderV10().
		ID("0001").
		Type("example.test").
		Source("http://localhost/").
		Data("application/json", xevent.JSONData{Value: map[string]any{"hello": "world"}}).
		Build()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, WriteResponse(e, rec, gohttp.StatusOK))

	assert.Equal(t, gohttp.StatusOK, rec.Code)
	assert.Equal(t, "1.0", rec.Header().Get("ce-specversion"))
	assert.Equal(t, "application/json", rec.Header().Get("content-type"))
	assert.JSONEq(t, `{"hello":"world"}`, rec.Body.String())
}

func TestReceiver_DeliversEvent(t *testing.T) {
	var got *xevent.Event
	rc := NewReceiver(func(ctx context.Context, e *xevent.Event) error {
		_, hasLogger := xevent.LoggerFromContext(ctx)
		assert.True(t, hasLogger)
		_, hasClock := xevent.ClockFromContext(ctx)
		assert.True(t, hasClock)
		got = e
		return nil
	})

	req := binaryRequest(t, map[string]string{
		"ce-specversion": "1.0",
		"ce-id":          "0001",
		"ce-type":        "example.test",
		"ce-source":      "http://localhost/",
	}, nil)
	rec := httptest.NewRecorder()
	rc.ServeHTTP(rec, req)

	assert.Equal(t, gohttp.StatusNoContent, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "0001", got.ID())
}

func TestReceiver_RejectsMalformed(t *testing.T) {
	rc := NewReceiver(func(ctx context.Context, e *xevent.Event) error { return nil })

	req := binaryRequest(t, map[string]string{
		"ce-specversion": "BAD SPECIFICATION",
	}, nil)
	rec := httptest.NewRecorder()
	rc.ServeHTTP(rec, req)

	assert.Equal(t, gohttp.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid specversion BAD SPECIFICATION")
}

func TestReceiver_HandlerError(t *testing.T) {
	rc := NewReceiver(func(ctx context.Context, e *xevent.Event) error {
		return errors.New("boom")
	})

	req := binaryRequest(t, map[string]string{
		"ce-specversion": "1.0",
		"ce-id":          "0001",
		"ce-type":        "example.test",
		"ce-source":      "http://localhost/",
	}, nil)
	rec := httptest.NewRecorder()
	rc.ServeHTTP(rec, req)

	assert.Equal(t, gohttp.StatusInternalServerError, rec.Code)
}

func TestReceiver_RecoversPanic(t *testing.T) {
	rc := NewReceiver(func(ctx context.Context, e *xevent.Event) error {
		panic("kaboom")
	})

	req := binaryRequest(t, map[string]string{
		"ce-specversion": "1.0",
		"ce-id":          "0001",
		"ce-type":        "example.test",
		"ce-source":      "http://localhost/",
	}, nil)
	rec := httptest.NewRecorder()
	rc.ServeHTTP(rec, req)

	assert.Equal(t, gohttp.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "panic recovered")
}

func TestChain_Order(t *testing.T) {
	var calls []string
	mw := func(name string) Middleware {
		return func(next EventHandler) EventHandler {
			return func(ctx context.Context, e *xevent.Event) error {
				calls = append(calls, name)
				return next(ctx, e)
			}
		}
	}

	h := Chain(func(ctx context.Context, e *xevent.Event) error {
		calls = append(calls, "handler")
		return nil
	}, mw("first"), mw("second"))

	require.NoError(t, h(context.Background(), xevent.New()))
	assert.Equal(t, []string{"first", "second", "handler"}, calls)
}
