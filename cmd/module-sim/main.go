//go:build !tinygo

// module-sim runs the firmware control loop on a workstation: the protocol
// on stdin/stdout, channel state changes logged instead of driving GPIO.
// Useful for exercising host-side tooling without a board on the bench.
package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/gilestrolab/ethoscope-sub000/hal"
	"github.com/gilestrolab/ethoscope-sub000/services/actuation"
	"github.com/gilestrolab/ethoscope-sub000/services/console"
	"github.com/gilestrolab/ethoscope-sub000/setups"
	"github.com/gilestrolab/ethoscope-sub000/x/timex"
)

// stdinSource feeds complete lines from stdin into a channel so the
// cooperative loop can poll without blocking on a read.
type stdinSource struct {
	ch chan string
}

func newStdinSource() *stdinSource {
	s := &stdinSource{ch: make(chan string, 8)}
	go func() {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			s.ch <- sc.Text()
		}
		close(s.ch)
	}()
	return s
}

func (s *stdinSource) PollLine() (string, bool) {
	select {
	case line, ok := <-s.ch:
		return line, ok
	default:
		return "", false
	}
}

// logSink logs every channel transition the controller emits.
type logSink struct {
	log zerolog.Logger
}

func (s *logSink) Emit(ev actuation.Event) {
	s.log.Info().
		Int("channel", ev.Channel).
		Str("role", ev.Role.String()).
		Bool("on", ev.On).
		Uint32("at_ms", uint32(ev.At)).
		Msg("channel")
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := setups.Config()
	plan := setups.SelectedPlan
	log.Info().
		Str("name", cfg.Name).
		Str("rev", cfg.PCBRev).
		Int("motors", cfg.Motors).
		Int("valves", cfg.Valves).
		Msg("simulator starting")

	lines := make([]hal.Line, cfg.Total())
	for i, spec := range cfg.Channels {
		lines[i] = hal.OutputLine(spec.Pin)
	}

	clk := timex.NewWallClock()
	ctl, err := actuation.New(cfg, lines, clk, &logSink{log: log}, actuation.Timing{
		StaggerMs: plan.StaggerMs,
		DemoOnMs:  plan.DemoOnMs,
		DemoGapMs: plan.DemoGapMs,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("controller init failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console.Run(ctx, console.NewDispatcher(ctl, os.Stdout), ctl, newStdinSource(), clk, plan.IdleMs)
	log.Info().Msg("simulator stopped, all channels off")
}
