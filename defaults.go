package xevent

import (
	"github.com/google/uuid"
	"github.com/trickstertwo/xclock"
)

// FillDefaults assigns a fresh uuid id and the current time to an event
// that lacks them. The clock is injectable for deterministic tests; nil
// falls back to the process default.
func FillDefaults(e *Event, clk xclock.Clock) *Event {
	if clk == nil {
		clk = xclock.Default()
	}
	if e.ID() == "" {
		e.SetID(uuid.NewString())
	}
	if e.Time().IsZero() {
		e.SetTime(clk.Now().UTC())
	}
	return e
}
