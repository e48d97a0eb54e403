// Package actuation owns all mutable channel state: the per-channel timed
// scheduler, the all-motors group activator, the demo sequencer and the
// safety shutdown. Everything here is single-writer — only the main loop
// calls into a Controller — so there are no locks or atomics.
package actuation

import (
	"github.com/gilestrolab/ethoscope-sub000/errcode"
	"github.com/gilestrolab/ethoscope-sub000/hal"
	"github.com/gilestrolab/ethoscope-sub000/types"
	"github.com/gilestrolab/ethoscope-sub000/x/mathx"
	"github.com/gilestrolab/ethoscope-sub000/x/timex"
)

// Timing collects the per-plan timing constants the controller needs.
type Timing struct {
	StaggerMs uint32
	DemoOnMs  uint32
	DemoGapMs uint32
}

type channel struct {
	spec     types.ChannelSpec
	line     hal.Line
	armed    bool
	deadline timex.Ticks
}

type groupState struct {
	active   bool
	deadline timex.Ticks
}

// Controller is the single aggregate that owns the channel table and the
// group and demo state. It is created once at startup and lives for the
// process lifetime.
type Controller struct {
	cfg    types.ModuleConfig
	timing Timing
	clock  timex.Clock
	sink   EventSink

	chans  []channel
	motors []int // channel indices with RoleMotor, in index order
	group  groupState
	demo   demoState
}

// New wires the channel table to its physical lines and forces every line
// low. len(lines) must equal cfg.Total().
func New(cfg types.ModuleConfig, lines []hal.Line, clock timex.Clock, sink EventSink, timing Timing) (*Controller, error) {
	if len(lines) != cfg.Total() {
		return nil, &errcode.E{C: errcode.Error, Msg: "line count does not match channel table"}
	}
	timing.StaggerMs = mathx.Clamp(timing.StaggerMs, 10, 1000)
	timing.DemoOnMs = mathx.Clamp(timing.DemoOnMs, 50, 5000)
	timing.DemoGapMs = mathx.Clamp(timing.DemoGapMs, 50, 5000)

	c := &Controller{
		cfg:    cfg,
		timing: timing,
		clock:  clock,
		sink:   sink,
		chans:  make([]channel, cfg.Total()),
	}
	for i, spec := range cfg.Channels {
		if err := lines[i].ConfigureOutput(false); err != nil {
			return nil, err
		}
		c.chans[i] = channel{spec: spec, line: lines[i]}
		if spec.Role == types.RoleMotor {
			c.motors = append(c.motors, i)
		}
	}
	return c, nil
}

// Config returns the immutable module configuration.
func (c *Controller) Config() types.ModuleConfig { return c.cfg }

// Energized reports the current logic level of a channel's line.
func (c *Controller) Energized(ch int) bool { return c.chans[ch].line.Get() }

// GroupActive reports whether an all-motors activation is in flight.
func (c *Controller) GroupActive() bool { return c.group.active }

// Durations must stay far below half the tick counter range or the
// rollover-tolerant deadline compare misreads a future deadline as already
// passed. The bound also stops 64-bit hosts from silently truncating a
// huge duration when it is folded into the 32-bit clock.
const maxDurationMs = 1<<31 - 1

func checkDuration(durationMs int) error {
	if durationMs <= 0 {
		return &errcode.E{C: errcode.InvalidDuration, Msg: "duration must be positive"}
	}
	if int64(durationMs) > maxDurationMs {
		return &errcode.E{C: errcode.InvalidDuration, Msg: "duration too long"}
	}
	return nil
}

// Activate energizes one channel now and arms deadline = now + durationMs.
// A new activation replaces any prior deadline for the channel; deadlines
// never stack. This replacement is deliberate: the host re-issues commands
// to extend a stimulus.
func (c *Controller) Activate(ch, durationMs int) error {
	if !mathx.Between(ch, 0, c.cfg.Total()-1) {
		return &errcode.E{C: errcode.InvalidChannel, Msg: "channel out of range"}
	}
	if err := checkDuration(durationMs); err != nil {
		return err
	}
	now := c.clock.Now()
	st := &c.chans[ch]
	st.line.Set(true)
	st.armed = true
	st.deadline = now + timex.Ticks(durationMs)
	c.emit(ch, true, now)
	return nil
}

// Tick runs one cooperative iteration: expire per-channel deadlines, then
// the group deadline, then advance the demo. Called once per main-loop pass.
func (c *Controller) Tick() {
	now := c.clock.Now()
	c.tickScheduler(now)
	c.tickGroup(now)
	c.tickDemo(now)
}

func (c *Controller) tickScheduler(now timex.Ticks) {
	for i := range c.chans {
		st := &c.chans[i]
		if !st.armed || !timex.Reached(now, st.deadline) {
			continue
		}
		st.line.Set(false)
		st.armed = false
		c.emit(i, false, now)
	}
}

// EmergencyShutdown unconditionally de-energizes every channel, clears all
// deadlines, the group state and any running demo. Idempotent; it always
// succeeds.
func (c *Controller) EmergencyShutdown() {
	now := c.clock.Now()
	for i := range c.chans {
		st := &c.chans[i]
		wasOn := st.line.Get()
		st.line.Set(false)
		st.armed = false
		if wasOn {
			c.emit(i, false, now)
		}
	}
	c.group = groupState{}
	c.demo = demoState{}
}
