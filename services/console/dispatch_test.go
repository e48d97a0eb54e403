package console

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gilestrolab/ethoscope-sub000/hal"
	"github.com/gilestrolab/ethoscope-sub000/services/actuation"
	"github.com/gilestrolab/ethoscope-sub000/setups"
	"github.com/gilestrolab/ethoscope-sub000/types"
	"github.com/gilestrolab/ethoscope-sub000/x/timex"
)

type fakeClock struct {
	now timex.Ticks
}

func (c *fakeClock) Now() timex.Ticks  { return c.now }
func (c *fakeClock) Sleep(ms uint32)   { c.now += timex.Ticks(ms) }
func (c *fakeClock) advance(ms uint32) { c.now += timex.Ticks(ms) }

func testPlan(motors, valves int) setups.Plan {
	p := setups.Plan{PCBRev: "t", Name: "stimuli-module", Description: "test module"}
	switch {
	case motors > 0 && valves > 0:
		p.Variant = types.VariantMotorAndValve
	case motors > 0:
		p.Variant = types.VariantMotorOnly
	default:
		p.Variant = types.VariantValveOnly
	}
	for i := 0; i < motors; i++ {
		p.MotorPins = append(p.MotorPins, 2+i)
	}
	for i := 0; i < valves; i++ {
		p.ValvePins = append(p.ValvePins, 40+i)
	}
	return p
}

func newTestDispatcher(t *testing.T, motors, valves int) (*Dispatcher, *actuation.Controller, *fakeClock, *bytes.Buffer) {
	t.Helper()
	cfg := setups.ConfigFrom(testPlan(motors, valves))
	lines := make([]hal.Line, cfg.Total())
	for i, spec := range cfg.Channels {
		lines[i] = hal.OutputLine(spec.Pin)
	}
	clk := &fakeClock{}
	ctl, err := actuation.New(cfg, lines, clk, nil, actuation.Timing{StaggerMs: 100, DemoOnMs: 500, DemoGapMs: 500})
	if err != nil {
		t.Fatalf("actuation.New: %v", err)
	}
	var out bytes.Buffer
	return NewDispatcher(ctl, &out), ctl, clk, &out
}

func anyEnergized(ctl *actuation.Controller) bool {
	for i := 0; i < ctl.Config().Total(); i++ {
		if ctl.Energized(i) {
			return true
		}
	}
	return false
}

func TestPulseCommand(t *testing.T) {
	d, ctl, clk, out := newTestDispatcher(t, 10, 10)

	d.HandleLine("P 5 1000")
	if got := out.String(); got != "OK P 5 1000\n" {
		t.Fatalf("unexpected response: %q", got)
	}
	if !ctl.Energized(5) {
		t.Fatal("channel 5 not energized")
	}

	clk.advance(1000)
	ctl.Tick()
	if ctl.Energized(5) {
		t.Fatal("channel 5 did not expire")
	}
}

func TestPulseRejections(t *testing.T) {
	d, ctl, _, out := newTestDispatcher(t, 10, 10)

	cases := []struct {
		line string
		code string
	}{
		{"P 25 1000", "invalid_channel"},
		{"P -1 1000", "invalid_channel"},
		{"P 20 1000", "invalid_channel"},
		{"P 5 0", "invalid_duration"},
		{"P 5 -100", "invalid_duration"},
		{"P 5", "missing_argument"},
		{"P", "missing_argument"},
		{"P x 1000", "bad_argument"},
		{"P 5 10s", "bad_argument"},
	}
	for _, c := range cases {
		out.Reset()
		d.HandleLine(c.line)
		got := out.String()
		if !strings.HasPrefix(got, "ERROR: "+c.code) {
			t.Fatalf("%q: got %q, want ERROR: %s", c.line, got, c.code)
		}
	}
	if anyEnergized(ctl) {
		t.Fatal("a rejected command mutated channel state")
	}
}

func TestUnknownVerbsIgnored(t *testing.T) {
	d, ctl, _, out := newTestDispatcher(t, 2, 2)

	for _, line := range []string{"", "   ", "Q", "p 1 1000", "X 3", "PULSE 1 10"} {
		d.HandleLine(line)
	}
	if out.Len() != 0 {
		t.Fatalf("ignored input produced output: %q", out.String())
	}
	if anyEnergized(ctl) {
		t.Fatal("ignored input mutated state")
	}
}

func TestActivateAllCommand(t *testing.T) {
	d, ctl, _, out := newTestDispatcher(t, 4, 4)

	d.HandleLine("A 5000")
	if got := out.String(); got != "OK A 5000\n" {
		t.Fatalf("unexpected response: %q", got)
	}
	for i, spec := range ctl.Config().Channels {
		want := spec.Role == types.RoleMotor
		if ctl.Energized(i) != want {
			t.Fatalf("channel %d (%v): energized=%v", i, spec.Role, ctl.Energized(i))
		}
	}

	out.Reset()
	d.HandleLine("A 0")
	if !strings.HasPrefix(out.String(), "ERROR: invalid_duration") {
		t.Fatalf("A 0: got %q", out.String())
	}
}

func TestActivateAllRejectedWithoutMotors(t *testing.T) {
	d, ctl, _, out := newTestDispatcher(t, 0, 10)

	d.HandleLine("A 1000")
	if !strings.HasPrefix(out.String(), "ERROR: no_motors") {
		t.Fatalf("got %q", out.String())
	}
	if anyEnergized(ctl) {
		t.Fatal("rejected A mutated state")
	}
}

func TestDemoCommand(t *testing.T) {
	d, ctl, clk, out := newTestDispatcher(t, 2, 0)

	d.HandleLine("D")
	if got := out.String(); got != "OK D\n" {
		t.Fatalf("unexpected response: %q", got)
	}
	out.Reset()
	d.HandleLine("D")
	if !strings.HasPrefix(out.String(), "ERROR: demo_busy") {
		t.Fatalf("second D: got %q", out.String())
	}

	for i := 0; i < 1000 && ctl.DemoActive(); i++ {
		clk.advance(50)
		ctl.Tick()
	}
	if ctl.DemoActive() {
		t.Fatal("demo did not finish")
	}
}

func TestDescribeCommand(t *testing.T) {
	d, ctl, _, out := newTestDispatcher(t, 10, 10)

	d.HandleLine("T")
	var doc types.Describe
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("T output is not valid JSON: %v\n%s", err, out.String())
	}
	cfg := ctl.Config()
	if doc.Capabilities.Motors != cfg.Motors ||
		doc.Capabilities.Valves != cfg.Valves ||
		doc.Capabilities.TotalChannels != cfg.Total() {
		t.Fatalf("capabilities mismatch: %+v vs %+v", doc.Capabilities, cfg)
	}
	if doc.Module.Name != cfg.Name {
		t.Fatalf("module name %q, want %q", doc.Module.Name, cfg.Name)
	}
	if doc.Version.Firmware != FirmwareVersion {
		t.Fatalf("firmware version %q", doc.Version.Firmware)
	}

	names := map[string]types.CommandSpec{}
	for _, c := range doc.Interface.Commands {
		names[c.Name] = c
	}
	for _, want := range []string{"P", "A", "D", "T", "H"} {
		if _, ok := names[want]; !ok {
			t.Fatalf("command %q missing from document", want)
		}
	}
	p := names["P"]
	if len(p.Args) != 2 || p.Args[0].Max != cfg.Total()-1 || p.Args[1].Min != 1 {
		t.Fatalf("P argument descriptors wrong: %+v", p.Args)
	}
}

func TestDescribeOmitsAOnValveOnlyModule(t *testing.T) {
	d, _, _, out := newTestDispatcher(t, 0, 10)

	d.HandleLine("T")
	var doc types.Describe
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, c := range doc.Interface.Commands {
		if c.Name == "A" {
			t.Fatal("A advertised on a module with no motors")
		}
	}
}

func TestHelpCommand(t *testing.T) {
	d, _, _, out := newTestDispatcher(t, 2, 2)

	d.HandleLine("H")
	help := out.String()
	for _, want := range []string{"P <channel> <duration_ms>", "A <duration_ms>", "D", "T", "H"} {
		if !strings.Contains(help, want) {
			t.Fatalf("help text missing %q:\n%s", want, help)
		}
	}
}
