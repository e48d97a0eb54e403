//go:build !tinygo

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var pulseCmd = &cobra.Command{
	Use:   "pulse <channel> <duration_ms>",
	Short: "Pulse one channel for a duration",
	Args:  cobra.ExactArgs(2),
	RunE:  runPulse,
}

var allCmd = &cobra.Command{
	Use:   "all <duration_ms>",
	Short: "Activate every motor channel with the staggered group start",
	Args:  cobra.ExactArgs(1),
	RunE:  runAll,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the hardware self-test demo sequence",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(pulseCmd, allCmd, demoCmd)
}

func runPulse(cmd *cobra.Command, args []string) error {
	ch, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("channel must be an integer: %q", args[0])
	}
	dur, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("duration must be an integer: %q", args[1])
	}
	return sendAndAck(fmt.Sprintf("P %d %d", ch, dur))
}

func runAll(cmd *cobra.Command, args []string) error {
	dur, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("duration must be an integer: %q", args[0])
	}
	// The firmware blocks during the staggered start pass, so allow for 20
	// channels' worth of pauses before giving up on the acknowledgement.
	return sendAndAckTimeout(fmt.Sprintf("A %d", dur), 30*time.Second)
}

func runDemo(cmd *cobra.Command, args []string) error {
	return sendAndAck("D")
}

func sendAndAck(line string) error {
	return sendAndAckTimeout(line, 3*time.Second)
}

func sendAndAckTimeout(line string, timeout time.Duration) error {
	s, err := openSession(flagPort, flagBaud)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.SendLine(line); err != nil {
		return err
	}
	ack, err := s.Ack(timeout)
	if err != nil {
		return err
	}
	logger.Info().Str("ack", ack).Msg("accepted")
	return nil
}
