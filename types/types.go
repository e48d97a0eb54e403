package types

// ---- Channel roles ----

type Role uint8

const (
	RoleMotor Role = iota
	RoleValve
)

func (r Role) String() string {
	switch r {
	case RoleMotor:
		return "motor"
	case RoleValve:
		return "valve"
	default:
		return "unknown"
	}
}

// ---- Module variants ----

// Variant is the build-time choice of which mix of channels is populated.
type Variant uint8

const (
	VariantMotorOnly Variant = iota
	VariantMotorAndValve
	VariantValveOnly
)

func (v Variant) String() string {
	switch v {
	case VariantMotorOnly:
		return "motor"
	case VariantMotorAndValve:
		return "motor+valve"
	case VariantValveOnly:
		return "valve"
	default:
		return "unknown"
	}
}

// MaxChannels bounds the channel table across all module variants.
const MaxChannels = 20

// ChannelSpec maps one logical channel index to a physical output line.
type ChannelSpec struct {
	Index int
	Pin   int
	Role  Role
}

// ModuleConfig is built once at startup from the selected plan and is
// immutable afterwards. Index i of Channels is channel i everywhere.
type ModuleConfig struct {
	Variant     Variant
	PCBRev      string
	Name        string
	Description string
	Motors      int
	Valves      int
	Channels    []ChannelSpec
}

// Total returns the number of populated channels.
func (c ModuleConfig) Total() int { return len(c.Channels) }
