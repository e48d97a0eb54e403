// Package hal abstracts the digital output lines that drive the motor and
// valve banks, so the controller core stays free of machine imports and can
// run host-side for tests and the simulator.
package hal

// Line is one logic-level digital output routed through a current-amplifying
// driver bank. Implementations must be cheap: Set/Get sit in the scheduler
// tick path.
type Line interface {
	// ConfigureOutput claims the pin as a push-pull output at the given
	// initial level.
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	// Number returns the physical line id for diagnostics.
	Number() int
}
