package actuation

import (
	"testing"

	"github.com/gilestrolab/ethoscope-sub000/errcode"
	"github.com/gilestrolab/ethoscope-sub000/types"
)

// runDemo drives the tick loop with a coarse 50ms cadence until the demo
// finishes, with a hard cap so a broken state machine cannot hang the test.
func runDemo(t *testing.T, ctl *Controller, clk *fakeClock) {
	t.Helper()
	for i := 0; i < 10_000; i++ {
		if !ctl.DemoActive() {
			return
		}
		clk.advance(50)
		ctl.Tick()
	}
	t.Fatal("demo did not terminate")
}

func TestDemoCyclesEveryChannelOnceMotorsFirst(t *testing.T) {
	ctl, clk, sink := newTestController(t, 3, 3)

	if err := ctl.StartDemo(); err != nil {
		t.Fatalf("StartDemo: %v", err)
	}
	runDemo(t, ctl, clk)

	onCount := map[int]int{}
	var order []int
	for _, ev := range sink.events {
		if ev.On {
			onCount[ev.Channel]++
			order = append(order, ev.Channel)
		}
	}
	if len(onCount) != ctl.Config().Total() {
		t.Fatalf("demo visited %d channels, want %d", len(onCount), ctl.Config().Total())
	}
	for ch, n := range onCount {
		if n != 1 {
			t.Fatalf("channel %d cycled %d times, want exactly once", ch, n)
		}
	}
	// Motors first, then valves.
	seenValve := false
	for _, ch := range order {
		role := ctl.Config().Channels[ch].Role
		if role == types.RoleValve {
			seenValve = true
		} else if seenValve {
			t.Fatalf("motor channel %d cycled after a valve", ch)
		}
	}
	if on := energizedSet(ctl); len(on) != 0 {
		t.Fatalf("channels left energized after demo: %v", on)
	}
}

func TestDemoBusyRejection(t *testing.T) {
	ctl, _, _ := newTestController(t, 2, 0)
	if err := ctl.StartDemo(); err != nil {
		t.Fatalf("StartDemo: %v", err)
	}
	if err := ctl.StartDemo(); errcode.Of(err) != errcode.DemoBusy {
		t.Fatalf("second StartDemo: got %v, want demo_busy", err)
	}
}

func TestStartDemoRejectedDuringGroup(t *testing.T) {
	ctl, clk, _ := newTestController(t, 2, 0)

	if err := ctl.ActivateAll(5000); err != nil {
		t.Fatalf("ActivateAll: %v", err)
	}
	if err := ctl.StartDemo(); errcode.Of(err) != errcode.GroupBusy {
		t.Fatalf("StartDemo during group: got %v, want group_busy", err)
	}
	if ctl.DemoActive() {
		t.Fatal("rejected demo left demo state active")
	}

	// The group runs to its deadline untouched, then the demo may start.
	clk.advance(5000)
	ctl.Tick()
	if ctl.GroupActive() {
		t.Fatal("group did not expire")
	}
	if err := ctl.StartDemo(); err != nil {
		t.Fatalf("StartDemo after group expiry: %v", err)
	}
	runDemo(t, ctl, clk)
}

func TestDemoStaysCooperative(t *testing.T) {
	ctl, clk, _ := newTestController(t, 2, 2)

	if err := ctl.StartDemo(); err != nil {
		t.Fatalf("StartDemo: %v", err)
	}

	// Ride out the first on-phase into the gap.
	clk.advance(500)
	ctl.Tick()
	if !ctl.DemoActive() {
		t.Fatal("demo finished too early")
	}

	// During the gap the scheduler must keep servicing other channels.
	if err := ctl.Activate(3, 100); err != nil {
		t.Fatalf("Activate during demo gap: %v", err)
	}
	if !ctl.Energized(3) {
		t.Fatal("command not serviced during demo gap")
	}
	clk.advance(100)
	ctl.Tick()
	if ctl.Energized(3) {
		t.Fatal("channel deadline did not expire during demo gap")
	}

	runDemo(t, ctl, clk)
}
