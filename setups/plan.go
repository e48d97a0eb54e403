// Package setups selects the module variant and PCB wiring at build time.
// Exactly one tagged file in this package defines SelectedPlan; building an
// unsupported (variant, pcb_revision) combination leaves the symbol
// undefined and the firmware cannot be produced at all.
package setups

import "github.com/gilestrolab/ethoscope-sub000/types"

// Plan specifies wiring and operating parameters chosen by a build.
type Plan struct {
	Variant     types.Variant
	PCBRev      string
	Name        string
	Description string

	MotorPins []int // GPIO numbers feeding the motor driver bank
	ValvePins []int // GPIO numbers feeding the valve driver bank

	StaggerMs uint32 // pause between sequential group starts/stops
	IdleMs    uint32 // main loop idle pause
	DemoOnMs  uint32 // demo per-channel on duration
	DemoGapMs uint32 // demo inter-channel gap
}
