//go:build mv20 && pcb2

package setups

import "github.com/gilestrolab/ethoscope-sub000/types"

// Combined stimuli module: ten motors plus ten solenoid valves, pcb rev 2.
var SelectedPlan = Plan{
	Variant:     types.VariantMotorAndValve,
	PCBRev:      "2",
	Name:        "stimuli-module",
	Description: "10 motor + 10 valve combined stimulus module",

	MotorPins: []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	ValvePins: []int{12, 13, 14, 15, 16, 17, 18, 19, 20, 21},

	StaggerMs: 100,
	IdleMs:    50,
	DemoOnMs:  500,
	DemoGapMs: 500,
}
