package actuation

import (
	"github.com/gilestrolab/ethoscope-sub000/types"
	"github.com/gilestrolab/ethoscope-sub000/x/timex"
)

// Event is a channel state-change notification: emitted whenever a line is
// energized or de-energized by a command, a deadline expiry, the demo, or an
// emergency shutdown.
type Event struct {
	Channel int
	Role    types.Role
	On      bool
	At      timex.Ticks
}

// EventSink receives state-change notifications. Implementations must not
// block: Emit is called from the main loop tick path.
type EventSink interface {
	Emit(Event)
}

func (c *Controller) emit(ch int, on bool, now timex.Ticks) {
	if c.sink == nil {
		return
	}
	c.sink.Emit(Event{
		Channel: ch,
		Role:    c.chans[ch].spec.Role,
		On:      on,
		At:      now,
	})
}
