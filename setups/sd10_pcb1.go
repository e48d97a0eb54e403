//go:build sd10 && pcb1

package setups

import "github.com/gilestrolab/ethoscope-sub000/types"

// Sleep depriver: ten gear motors, pcb rev 1.
var SelectedPlan = Plan{
	Variant:     types.VariantMotorOnly,
	PCBRev:      "1",
	Name:        "sleep-depriver",
	Description: "10-channel rotary gear motor module",

	MotorPins: []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11},

	StaggerMs: 100,
	IdleMs:    50,
	DemoOnMs:  500,
	DemoGapMs: 500,
}
