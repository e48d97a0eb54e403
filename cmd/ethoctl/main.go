//go:build !tinygo

// ethoctl is the bench-side companion tool: it opens the module's serial
// console and drives the line protocol for probing, manual pulses, and
// demo runs.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	logger zerolog.Logger

	flagPort    string
	flagBaud    int
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ethoctl",
	Short: "Control an ethoscope actuator module over its serial console",
	Long: "ethoctl talks the module's line protocol over a serial port: probe " +
		"capabilities, pulse individual channels, trigger the staggered group " +
		"activation, and run the hardware self-test demo.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if flagVerbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).With().Timestamp().Logger()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPort, "port", "",
		"serial port device (autodetected from ttyUSB*/ttyACM* when empty)")
	rootCmd.PersistentFlags().IntVar(&flagBaud, "baud", 115200, "serial baud rate")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
