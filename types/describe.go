package types

// Capability document emitted in response to the T command. The host-side
// controller parses it to build UI and input validation without hardcoding
// per-module knowledge, so field names are part of the wire contract.

type Describe struct {
	Version      VersionInfo  `json:"version"`
	Module       ModuleInfo   `json:"module"`
	Capabilities Capabilities `json:"capabilities"`
	Interface    Interface    `json:"interface"`
}

type VersionInfo struct {
	Firmware string `json:"firmware"`
	Hardware string `json:"hardware"`
}

type ModuleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type Capabilities struct {
	Motors        int `json:"motors"`
	Valves        int `json:"valves"`
	TotalChannels int `json:"total_channels"`
}

type Interface struct {
	Commands []CommandSpec `json:"commands"`
}

// CommandSpec declares one command of the line grammar. The same descriptors
// back both the T document and the H help text.
type CommandSpec struct {
	Name        string    `json:"name"`
	Format      string    `json:"format"`
	Description string    `json:"description"`
	Args        []ArgSpec `json:"arguments,omitempty"`
}

type ArgSpec struct {
	Name        string `json:"name"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	Description string `json:"description"`
}
