package timex

import "time"

// Ticks is a monotonic millisecond counter that wraps at 2^32 (~49.7 days).
// Deadline arithmetic must go through Reached rather than direct comparison
// so that counter rollover never yields a spurious early or missed expiry.
type Ticks uint32

// Reached reports whether now is at or past deadline. Differences of less
// than half the counter range count as "in the past"; this holds as long as
// individual durations stay far below 2^31 ms (~24.8 days).
func Reached(now, deadline Ticks) bool { return uint32(now-deadline) < 1<<31 }

// Clock supplies time to the controller and the main loop. Firmware and the
// simulator use the wall clock; tests use a fake that advances on Sleep.
type Clock interface {
	Now() Ticks
	Sleep(ms uint32)
}

type wallClock struct {
	start time.Time
}

// NewWallClock returns a Clock backed by the process monotonic clock,
// zeroed at construction.
func NewWallClock() Clock { return &wallClock{start: time.Now()} }

func (c *wallClock) Now() Ticks      { return Ticks(time.Since(c.start).Milliseconds()) }
func (c *wallClock) Sleep(ms uint32) { time.Sleep(time.Duration(ms) * time.Millisecond) }
