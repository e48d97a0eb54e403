//go:build tinygo

// Firmware entry point. The console protocol is served on UART0; println
// diagnostics go to the USB CDC port.
package main

import (
	"context"
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"github.com/gilestrolab/ethoscope-sub000/hal"
	"github.com/gilestrolab/ethoscope-sub000/services/actuation"
	"github.com/gilestrolab/ethoscope-sub000/services/console"
	"github.com/gilestrolab/ethoscope-sub000/services/heartbeat"
	"github.com/gilestrolab/ethoscope-sub000/setups"
	"github.com/gilestrolab/ethoscope-sub000/x/timex"
)

const (
	consoleBaud = 115200
	consoleTX   = 0 // GP0
	consoleRX   = 1 // GP1

	statusLED = 25 // Pico onboard LED
)

// uartSource pumps received bytes into a buffered channel so the control
// loop can poll without blocking. Bytes arriving while the channel is full
// are dropped; the line accumulator discards the mangled line at the next
// newline.
type uartSource struct {
	ch chan byte
}

func newUARTSource(ctx context.Context, u *uartx.UART) *uartSource {
	s := &uartSource{ch: make(chan byte, 256)}
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := u.RecvSomeContext(ctx, buf)
			if err != nil {
				return
			}
			for _, b := range buf[:n] {
				select {
				case s.ch <- b:
				default:
				}
			}
		}
	}()
	return s
}

func (s *uartSource) ReadByte() (byte, bool) {
	select {
	case b := <-s.ch:
		return b, true
	default:
		return 0, false
	}
}

func main() {
	// Give the USB CDC port time to enumerate before the boot banner.
	time.Sleep(1500 * time.Millisecond)

	cfg := setups.Config()
	plan := setups.SelectedPlan
	println("[boot]", cfg.Name, "rev", cfg.PCBRev,
		"motors:", cfg.Motors, "valves:", cfg.Valves)

	u := uartx.UART0
	if err := u.Configure(uartx.UARTConfig{
		BaudRate: consoleBaud,
		TX:       machine.Pin(consoleTX),
		RX:       machine.Pin(consoleRX),
	}); err != nil {
		println("[boot] uart configure failed:", err.Error())
		return
	}

	lines := make([]hal.Line, cfg.Total())
	for i, spec := range cfg.Channels {
		lines[i] = hal.OutputLine(spec.Pin)
	}

	clk := timex.NewWallClock()
	ctl, err := actuation.New(cfg, lines, clk, nil, actuation.Timing{
		StaggerMs: plan.StaggerMs,
		DemoOnMs:  plan.DemoOnMs,
		DemoGapMs: plan.DemoGapMs,
	})
	if err != nil {
		println("[boot] controller init failed:", err.Error())
		return
	}

	hb, err := heartbeat.New(hal.OutputLine(statusLED), clk, 0)
	if err != nil {
		println("[boot] status LED init failed:", err.Error())
		return
	}

	ctx := context.Background()
	src := console.NewAccumulator(newUARTSource(ctx, u), 0)

	println("[boot] console ready on uart0 @", consoleBaud)
	console.Run(ctx, console.NewDispatcher(ctl, u), ctl, src, clk, plan.IdleMs, hb)
}
