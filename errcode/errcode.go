package errcode

// Code is a stable, protocol-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
// Codes appear verbatim after the "ERROR:" prefix on the serial line.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	InvalidChannel  Code = "invalid_channel"
	InvalidDuration Code = "invalid_duration"
	NoMotors        Code = "no_motors"
	BadArgument     Code = "bad_argument"
	MissingArgument Code = "missing_argument"
	DemoBusy        Code = "demo_busy"
	GroupBusy       Code = "group_busy"

	Error Code = "error" // generic fallback
)

// E keeps a human-readable detail next to a code. The dispatcher prints the
// detail after the code on the ERROR: line.
type E struct {
	C   Code
	Msg string
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Code() Code { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

// Detail returns the human-readable remainder of an error, if any.
func Detail(err error) string {
	if e, ok := err.(*E); ok {
		return e.Msg
	}
	return ""
}
