package actuation

import (
	"github.com/gilestrolab/ethoscope-sub000/errcode"
	"github.com/gilestrolab/ethoscope-sub000/x/timex"
)

// ActivateAll energizes every motor channel for durationMs, measured from
// command acceptance. Starts are separated by the stagger pause so that no
// two motors hit full inrush current together; the pause is a true blocking
// wait and the command parser is not serviced during it (the demo's gaps
// are cooperative — this asymmetry is intentional).
//
// A second ActivateAll before the first expires silently replaces the group
// deadline; there is no queuing or extension. A running demo rejects the
// group outright: the demo walk would otherwise keep toggling motor lines
// the group owns.
func (c *Controller) ActivateAll(durationMs int) error {
	if c.cfg.Motors == 0 {
		return &errcode.E{C: errcode.NoMotors, Msg: "module has no motor channels"}
	}
	if c.DemoActive() {
		return &errcode.E{C: errcode.DemoBusy, Msg: "demo in progress"}
	}
	if err := checkDuration(durationMs); err != nil {
		return err
	}

	// Deadline is anchored before the staggered starts so total on-time is
	// measured from acceptance, not from the last motor's start.
	c.group.deadline = c.clock.Now() + timex.Ticks(durationMs)
	c.group.active = true

	for n, ch := range c.motors {
		if n > 0 {
			c.clock.Sleep(c.timing.StaggerMs)
		}
		st := &c.chans[ch]
		st.line.Set(true)
		st.armed = false // the group deadline supersedes any per-channel deadline
		c.emit(ch, true, c.clock.Now())
	}
	return nil
}

func (c *Controller) tickGroup(now timex.Ticks) {
	if !c.group.active || !timex.Reached(now, c.group.deadline) {
		return
	}
	for n, ch := range c.motors {
		if n > 0 {
			c.clock.Sleep(c.timing.StaggerMs)
		}
		st := &c.chans[ch]
		st.line.Set(false)
		c.emit(ch, false, c.clock.Now())
	}
	c.group = groupState{}
}
