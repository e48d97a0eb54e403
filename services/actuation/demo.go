package actuation

import (
	"github.com/gilestrolab/ethoscope-sub000/errcode"
	"github.com/gilestrolab/ethoscope-sub000/types"
	"github.com/gilestrolab/ethoscope-sub000/x/timex"
)

// The demo walks every channel exactly once: motors first, then valves,
// each energized for DemoOnMs followed by a DemoGapMs pause. Unlike the
// group stagger, the pause is not a blocking wait: the demo is a small
// state machine advanced by Tick, so the command parser and the channel
// scheduler keep running between steps.

type demoPhase uint8

const (
	demoIdle demoPhase = iota
	demoOn
	demoGap
)

type demoState struct {
	phase    demoPhase
	pos      int
	order    []int
	deadline timex.Ticks
}

// StartDemo begins the walk. Rejected while a previous demo is still
// running or while a group activation owns the motor lines.
func (c *Controller) StartDemo() error {
	if c.demo.phase != demoIdle {
		return &errcode.E{C: errcode.DemoBusy, Msg: "demo already running"}
	}
	if c.group.active {
		return &errcode.E{C: errcode.GroupBusy, Msg: "group activation in progress"}
	}

	order := make([]int, 0, c.cfg.Total())
	for i, ch := range c.chans {
		if ch.spec.Role == types.RoleMotor {
			order = append(order, i)
		}
	}
	for i, ch := range c.chans {
		if ch.spec.Role == types.RoleValve {
			order = append(order, i)
		}
	}
	if len(order) == 0 {
		return &errcode.E{C: errcode.Error, Msg: "no channels"}
	}

	now := c.clock.Now()
	c.demo = demoState{phase: demoOn, pos: 0, order: order, deadline: now + timex.Ticks(c.timing.DemoOnMs)}
	c.chans[order[0]].line.Set(true)
	c.emit(order[0], true, now)
	return nil
}

// DemoActive reports whether a demo walk is in progress.
func (c *Controller) DemoActive() bool { return c.demo.phase != demoIdle }

func (c *Controller) tickDemo(now timex.Ticks) {
	d := &c.demo
	switch d.phase {
	case demoIdle:
		return
	case demoOn:
		if !timex.Reached(now, d.deadline) {
			return
		}
		ch := d.order[d.pos]
		c.chans[ch].line.Set(false)
		c.emit(ch, false, now)
		d.phase = demoGap
		d.deadline = now + timex.Ticks(c.timing.DemoGapMs)
	case demoGap:
		if !timex.Reached(now, d.deadline) {
			return
		}
		d.pos++
		if d.pos >= len(d.order) {
			c.demo = demoState{}
			return
		}
		ch := d.order[d.pos]
		c.chans[ch].line.Set(true)
		c.emit(ch, true, now)
		d.phase = demoOn
		d.deadline = now + timex.Ticks(c.timing.DemoOnMs)
	}
}
