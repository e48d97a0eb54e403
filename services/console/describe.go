package console

import (
	"encoding/json"

	"github.com/gilestrolab/ethoscope-sub000/types"
)

// FirmwareVersion is reported in the T capability document.
const FirmwareVersion = "2.0.0"

const maxDurationMs = 3_600_000 // advertised upper bound for host-side validation

// BuildDescribe assembles the capability document for a configuration. Pure
// function: no channel state is read or touched.
func BuildDescribe(cfg types.ModuleConfig) types.Describe {
	return types.Describe{
		Version: types.VersionInfo{
			Firmware: FirmwareVersion,
			Hardware: cfg.PCBRev,
		},
		Module: types.ModuleInfo{
			Name:        cfg.Name,
			Description: cfg.Description,
			Type:        cfg.Variant.String(),
		},
		Capabilities: types.Capabilities{
			Motors:        cfg.Motors,
			Valves:        cfg.Valves,
			TotalChannels: cfg.Total(),
		},
		Interface: types.Interface{
			Commands: commandSpecs(cfg),
		},
	}
}

// commandSpecs declares the grammar. The A command is omitted from the
// document when the module has no motors, so a host never offers an
// operation the firmware would reject.
func commandSpecs(cfg types.ModuleConfig) []types.CommandSpec {
	specs := []types.CommandSpec{
		{
			Name:        "P",
			Format:      "P <channel> <duration_ms>",
			Description: "pulse one channel for the given duration",
			Args: []types.ArgSpec{
				{Name: "channel", Min: 0, Max: cfg.Total() - 1, Description: "channel index"},
				{Name: "duration_ms", Min: 1, Max: maxDurationMs, Description: "on time in milliseconds"},
			},
		},
	}
	if cfg.Motors > 0 {
		specs = append(specs, types.CommandSpec{
			Name:        "A",
			Format:      "A <duration_ms>",
			Description: "activate all motor channels, staggered",
			Args: []types.ArgSpec{
				{Name: "duration_ms", Min: 1, Max: maxDurationMs, Description: "on time in milliseconds"},
			},
		})
	}
	specs = append(specs,
		types.CommandSpec{Name: "D", Format: "D", Description: "run the self-test demo sequence"},
		types.CommandSpec{Name: "T", Format: "T", Description: "emit this capability document"},
		types.CommandSpec{Name: "H", Format: "H", Description: "show help"},
	)
	return specs
}

func renderDescribe(cfg types.ModuleConfig) []byte {
	// The document is a pure function of the immutable configuration, so it
	// is rendered once at startup and replayed on every T.
	b, err := json.Marshal(BuildDescribe(cfg))
	if err != nil {
		// Marshalling fixed struct types cannot fail at runtime.
		return []byte(`{"error":"describe"}`)
	}
	return b
}

func renderHelp(cfg types.ModuleConfig) []byte {
	var out []byte
	out = append(out, cfg.Name...)
	out = append(out, " - "...)
	out = append(out, cfg.Description...)
	out = append(out, '\n')
	for _, c := range commandSpecs(cfg) {
		out = append(out, "  "...)
		out = append(out, c.Format...)
		for i := len(c.Format); i < 28; i++ {
			out = append(out, ' ')
		}
		out = append(out, c.Description...)
		out = append(out, '\n')
	}
	return out
}
