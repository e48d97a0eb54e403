//go:build tinygo

package hal

import "machine"

// machineLine maps a logical line number directly to machine.Pin(n),
// matching Pico GP numbering.
type machineLine struct {
	p machine.Pin
}

// OutputLine returns a Line backed by the MCU GPIO block.
func OutputLine(pin int) Line { return &machineLine{p: machine.Pin(pin)} }

func (l *machineLine) ConfigureOutput(initial bool) error {
	l.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	l.p.Set(initial)
	return nil
}

func (l *machineLine) Set(level bool) { l.p.Set(level) }
func (l *machineLine) Get() bool      { return l.p.Get() }
func (l *machineLine) Number() int    { return int(l.p) }
