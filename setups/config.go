package setups

import "github.com/gilestrolab/ethoscope-sub000/types"

// Config derives the immutable ModuleConfig from the build-selected plan.
func Config() types.ModuleConfig { return ConfigFrom(SelectedPlan) }

// ConfigFrom builds the channel table for a plan. In the combined variant,
// motor and valve channels alternate (even index motor, odd index valve) so
// that each motor sits next to its paired valve on the PCB. A malformed plan
// literal panics here; plans are compile-time data, so this can only fire
// from an edit to this package.
func ConfigFrom(p Plan) types.ModuleConfig {
	validate(p)

	var channels []types.ChannelSpec
	switch p.Variant {
	case types.VariantMotorAndValve:
		for i := range p.MotorPins {
			channels = append(channels,
				types.ChannelSpec{Index: 2 * i, Pin: p.MotorPins[i], Role: types.RoleMotor},
				types.ChannelSpec{Index: 2*i + 1, Pin: p.ValvePins[i], Role: types.RoleValve},
			)
		}
	case types.VariantMotorOnly:
		for i, pin := range p.MotorPins {
			channels = append(channels, types.ChannelSpec{Index: i, Pin: pin, Role: types.RoleMotor})
		}
	case types.VariantValveOnly:
		for i, pin := range p.ValvePins {
			channels = append(channels, types.ChannelSpec{Index: i, Pin: pin, Role: types.RoleValve})
		}
	}

	return types.ModuleConfig{
		Variant:     p.Variant,
		PCBRev:      p.PCBRev,
		Name:        p.Name,
		Description: p.Description,
		Motors:      len(p.MotorPins),
		Valves:      len(p.ValvePins),
		Channels:    channels,
	}
}

func validate(p Plan) {
	switch p.Variant {
	case types.VariantMotorOnly:
		if len(p.MotorPins) == 0 || len(p.ValvePins) != 0 {
			panic("setups: motor-only plan must have motor pins and no valve pins")
		}
	case types.VariantValveOnly:
		if len(p.ValvePins) == 0 || len(p.MotorPins) != 0 {
			panic("setups: valve-only plan must have valve pins and no motor pins")
		}
	case types.VariantMotorAndValve:
		if len(p.MotorPins) == 0 || len(p.MotorPins) != len(p.ValvePins) {
			panic("setups: combined plan needs equal, non-empty motor and valve pin sets")
		}
	default:
		panic("setups: unknown variant")
	}
	if len(p.MotorPins)+len(p.ValvePins) > types.MaxChannels {
		panic("setups: plan exceeds channel budget")
	}
	seen := map[int]bool{}
	for _, pin := range append(append([]int{}, p.MotorPins...), p.ValvePins...) {
		if pin < 0 || seen[pin] {
			panic("setups: duplicate or invalid pin in plan")
		}
		seen[pin] = true
	}
}
