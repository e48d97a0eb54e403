package console

import (
	"context"

	"github.com/gilestrolab/ethoscope-sub000/services/actuation"
	"github.com/gilestrolab/ethoscope-sub000/x/timex"
)

// Ticker is any cooperative task advanced once per loop iteration, in
// addition to the controller itself.
type Ticker interface {
	Tick()
}

// Run drives the cooperative main loop: per iteration, dispatch at most one
// pending command, tick the controller (scheduler, group, demo) and any
// auxiliary tickers, then idle. All mutable state is owned by this single
// goroutine.
//
// The controller is forced all-off before the first command is accepted and
// again on the way out when the context is cancelled.
func Run(ctx context.Context, d *Dispatcher, ctl *actuation.Controller, src LineSource, clock timex.Clock, idleMs uint32, aux ...Ticker) {
	if idleMs == 0 {
		idleMs = 50
	}
	ctl.EmergencyShutdown()

	for {
		if ctx.Err() != nil {
			ctl.EmergencyShutdown()
			return
		}
		if line, ok := src.PollLine(); ok {
			d.HandleLine(line)
		}
		ctl.Tick()
		for _, t := range aux {
			t.Tick()
		}
		clock.Sleep(idleMs)
	}
}
