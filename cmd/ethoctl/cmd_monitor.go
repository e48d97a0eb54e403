//go:build !tinygo

package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Print everything the module writes to its console",
	Long: "Attach to the serial console and echo every line the firmware " +
		"emits until interrupted. Useful for watching boot banners and " +
		"responses while another process drives the module.",
	Args: cobra.NoArgs,
	RunE: runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	s, err := openSession(flagPort, flagBaud)
	if err != nil {
		return err
	}
	defer s.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	logger.Info().Str("port", s.name).Msg("monitoring, ^C to stop")

	for {
		select {
		case <-interrupt:
			return nil
		default:
		}
		line, err := s.ReadLine(500 * time.Millisecond)
		if errors.Is(err, errTimeout) {
			// Quiet ports time out constantly.
			continue
		}
		if err != nil {
			return err
		}
		fmt.Println(line)
	}
}
