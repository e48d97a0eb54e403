// Package heartbeat blinks a status LED so a glance at the board tells you
// the main loop is alive. It is ticked cooperatively from the same loop
// that drives the actuators; a hung loop freezes the LED.
package heartbeat

import (
	"github.com/gilestrolab/ethoscope-sub000/hal"
	"github.com/gilestrolab/ethoscope-sub000/x/timex"
)

const defaultPeriodMs = 500

type Blinker struct {
	line   hal.Line
	clock  timex.Clock
	period uint32

	on       bool
	deadline timex.Ticks
}

func New(line hal.Line, clock timex.Clock, periodMs uint32) (*Blinker, error) {
	if periodMs == 0 {
		periodMs = defaultPeriodMs
	}
	if err := line.ConfigureOutput(false); err != nil {
		return nil, err
	}
	return &Blinker{
		line:     line,
		clock:    clock,
		period:   periodMs,
		deadline: clock.Now() + timex.Ticks(periodMs),
	}, nil
}

func (b *Blinker) Tick() {
	now := b.clock.Now()
	if !timex.Reached(now, b.deadline) {
		return
	}
	b.on = !b.on
	b.line.Set(b.on)
	b.deadline = now + timex.Ticks(b.period)
}
