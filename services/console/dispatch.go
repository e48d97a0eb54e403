// Package console implements the serial line protocol: one-letter verbs,
// whitespace-separated integer arguments, free-form text responses with an
// "ERROR:" prefix on rejection. It also owns the cooperative main loop.
package console

import (
	"io"

	"github.com/gilestrolab/ethoscope-sub000/errcode"
	"github.com/gilestrolab/ethoscope-sub000/services/actuation"
	"github.com/gilestrolab/ethoscope-sub000/x/strconvx"
	"github.com/gilestrolab/ethoscope-sub000/x/strx"
)

// Dispatcher routes parsed command lines to controller operations. All
// validation happens before any state mutation; a rejected command leaves
// the channel table untouched.
type Dispatcher struct {
	ctl *actuation.Controller
	w   io.Writer

	doc  []byte // pre-rendered capability document (T)
	help []byte // pre-rendered help text (H)

	fields [4]string // scratch for the per-line split
}

func NewDispatcher(ctl *actuation.Controller, w io.Writer) *Dispatcher {
	d := &Dispatcher{ctl: ctl, w: w}
	d.doc = renderDescribe(ctl.Config())
	d.help = renderHelp(ctl.Config())
	return d
}

// HandleLine parses and executes one command line. Blank lines and unknown
// verbs are silently ignored.
func (d *Dispatcher) HandleLine(line string) {
	fields := strx.Fields(d.fields[:0], line, len(d.fields))
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "P":
		ch, dur, err := twoInts(fields[1:])
		if err != nil {
			d.writeErr(err)
			return
		}
		if err := d.ctl.Activate(ch, dur); err != nil {
			d.writeErr(err)
			return
		}
		d.writeLine("OK P " + strconvx.Itoa(ch) + " " + strconvx.Itoa(dur))
	case "A":
		dur, err := oneInt(fields[1:])
		if err != nil {
			d.writeErr(err)
			return
		}
		if err := d.ctl.ActivateAll(dur); err != nil {
			d.writeErr(err)
			return
		}
		d.writeLine("OK A " + strconvx.Itoa(dur))
	case "D":
		if err := d.ctl.StartDemo(); err != nil {
			d.writeErr(err)
			return
		}
		d.writeLine("OK D")
	case "T":
		d.write(d.doc)
		d.write(nl)
	case "H":
		d.write(d.help)
	default:
		// Unknown verbs are ignored, per protocol.
	}
}

func oneInt(args []string) (int, error) {
	if len(args) < 1 {
		return 0, &errcode.E{C: errcode.MissingArgument, Msg: "expected 1 argument"}
	}
	v, err := strconvx.Atoi(args[0])
	if err != nil {
		return 0, &errcode.E{C: errcode.BadArgument, Msg: "not an integer: " + args[0]}
	}
	return v, nil
}

func twoInts(args []string) (int, int, error) {
	if len(args) < 2 {
		return 0, 0, &errcode.E{C: errcode.MissingArgument, Msg: "expected 2 arguments"}
	}
	a, err := strconvx.Atoi(args[0])
	if err != nil {
		return 0, 0, &errcode.E{C: errcode.BadArgument, Msg: "not an integer: " + args[0]}
	}
	b, err := strconvx.Atoi(args[1])
	if err != nil {
		return 0, 0, &errcode.E{C: errcode.BadArgument, Msg: "not an integer: " + args[1]}
	}
	return a, b, nil
}

var nl = []byte{'\n'}

func (d *Dispatcher) write(b []byte) { _, _ = d.w.Write(b) }

func (d *Dispatcher) writeLine(s string) {
	d.write([]byte(s))
	d.write(nl)
}

func (d *Dispatcher) writeErr(err error) {
	line := "ERROR: " + string(errcode.Of(err))
	if detail := errcode.Detail(err); detail != "" {
		line += " " + detail
	}
	d.writeLine(line)
}
