//go:build !sd10 && !mv20 && !od10

package setups

import "github.com/gilestrolab/ethoscope-sub000/types"

// Default plan for hosted builds (tests, simulator): the combined variant,
// which exercises every code path. Firmware builds always carry a variant
// tag and never see this file.
var SelectedPlan = Plan{
	Variant:     types.VariantMotorAndValve,
	PCBRev:      "sim",
	Name:        "stimuli-module",
	Description: "10 motor + 10 valve combined stimulus module (simulated)",

	MotorPins: []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	ValvePins: []int{12, 13, 14, 15, 16, 17, 18, 19, 20, 21},

	StaggerMs: 100,
	IdleMs:    50,
	DemoOnMs:  500,
	DemoGapMs: 500,
}
