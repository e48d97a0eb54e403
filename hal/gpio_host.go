//go:build !tinygo

package hal

// MemLine is an in-memory Line for hosted builds: the simulator and package
// tests observe levels through it instead of hardware.
type MemLine struct {
	pin   int
	level bool

	// Trace, when set, is invoked on every Set with the new level.
	Trace func(pin int, level bool)
}

// OutputLine returns an in-memory Line on hosted builds, keeping call sites
// identical across firmware and simulator.
func OutputLine(pin int) Line { return &MemLine{pin: pin} }

func (l *MemLine) ConfigureOutput(initial bool) error {
	l.level = initial
	return nil
}

func (l *MemLine) Set(level bool) {
	l.level = level
	if l.Trace != nil {
		l.Trace(l.pin, level)
	}
}

func (l *MemLine) Get() bool   { return l.level }
func (l *MemLine) Number() int { return l.pin }
