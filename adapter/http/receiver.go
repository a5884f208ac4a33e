package http

import (
	"context"
	"fmt"
	gohttp "net/http"

	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xevent"
	"github.com/trickstertwo/xlog"
)

// EventHandler processes one decoded event. Return an error to reject the
// delivery with a 500.
type EventHandler func(ctx context.Context, e *xevent.Event) error

// Middleware composes processing concerns around an EventHandler.
type Middleware func(next EventHandler) EventHandler

// Chain composes middlewares around a handler in order.
func Chain(h EventHandler, mws ...Middleware) EventHandler {
	if len(mws) == 0 {
		return h
	}
	wrapped := h
	// Apply in reverse so that first middleware wraps last.
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] == nil {
			continue
		}
		wrapped = mws[i](wrapped)
	}
	return wrapped
}

// RecoveryMiddleware prevents panics from crashing receivers and converts
// them into errors.
func RecoveryMiddleware() Middleware {
	return func(next EventHandler) EventHandler {
		return func(ctx context.Context, e *xevent.Event) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("panic recovered: %v", r)
				}
			}()
			return next(ctx, e)
		}
	}
}

// Receiver decodes inbound requests into events and drives an
// EventHandler. Malformed messages are rejected with 400 and logged.
type Receiver struct {
	handler EventHandler
	logger  *xlog.Logger
	clock   xclock.Clock
}

// Option configures a Receiver.
type Option func(*Receiver)

func WithLogger(l *xlog.Logger) Option {
	return func(r *Receiver) {
		if l != nil {
			r.logger = l
		}
	}
}

func WithClock(c xclock.Clock) Option {
	return func(r *Receiver) {
		if c != nil {
			r.clock = c
		}
	}
}

func WithMiddleware(mw ...Middleware) Option {
	return func(r *Receiver) { r.handler = Chain(r.handler, mw...) }
}

// NewReceiver wraps the handler into an http.Handler. Panic recovery is
// always enabled first for dependability.
func NewReceiver(h EventHandler, opts ...Option) *Receiver {
	r := &Receiver{
		handler: RecoveryMiddleware()(h),
		logger:  xlog.Default(),
		clock:   xclock.Default(),
	}
	for _, o := range opts {
		if o != nil {
			o(r)
		}
	}
	return r
}

func (rc *Receiver) ServeHTTP(w gohttp.ResponseWriter, req *gohttp.Request) {
	start := rc.clock.Now()

	e, err := ToEvent(req)
	if err != nil {
		rc.logger.With(
			xlog.Str("method", req.Method),
			xlog.Str("path", req.URL.Path),
		).Warn().Err(err).Msg("xevent decode failed")
		gohttp.Error(w, err.Error(), gohttp.StatusBadRequest)
		return
	}

	ctx := xevent.ContextWithLogger(req.Context(), rc.logger)
	ctx = xevent.ContextWithClock(ctx, rc.clock)

	if err := rc.handler(ctx, e); err != nil {
		rc.logger.With(
			xlog.Str("event_id", e.ID()),
			xlog.Str("event_type", e.Type()),
		).Warn().Err(err).Msg("xevent handler failed")
		gohttp.Error(w, err.Error(), gohttp.StatusInternalServerError)
		return
	}

	rc.logger.With(
		xlog.Str("event_id", e.ID()),
		xlog.Str("event_type", e.Type()),
		xlog.Dur("duration", rc.clock.Since(start)),
	).Debug().Msg("xevent handled")
	w.WriteHeader(gohttp.StatusNoContent)
}

var _ gohttp.Handler = (*Receiver)(nil)
