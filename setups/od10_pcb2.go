//go:build od10 && pcb2

package setups

import "github.com/gilestrolab/ethoscope-sub000/types"

// Odour deliverer: ten solenoid valves, pcb rev 2.
var SelectedPlan = Plan{
	Variant:     types.VariantValveOnly,
	PCBRev:      "2",
	Name:        "odour-deliverer",
	Description: "10-channel solenoid valve module",

	ValvePins: []int{12, 13, 14, 15, 16, 17, 18, 19, 20, 21},

	StaggerMs: 100,
	IdleMs:    50,
	DemoOnMs:  500,
	DemoGapMs: 500,
}
