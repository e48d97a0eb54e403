//go:build !tinygo

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gilestrolab/ethoscope-sub000/types"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Query the module's capability document",
	Long: "Send the T command and print the module's capability document: " +
		"identity, channel counts, and the command grammar it accepts.",
	RunE: runProbe,
}

var probeRaw bool

func init() {
	probeCmd.Flags().BoolVar(&probeRaw, "raw", false, "print the document JSON unformatted")
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	s, err := openSession(flagPort, flagBaud)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.SendLine("T"); err != nil {
		return err
	}

	// Skip boot chatter until the JSON document arrives.
	deadline := time.Now().Add(3 * time.Second)
	var raw string
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return fmt.Errorf("module never answered T")
		}
		line, err := s.ReadLine(remaining)
		if err != nil {
			return err
		}
		if strings.HasPrefix(line, "{") {
			raw = line
			break
		}
	}

	var doc types.Describe
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return fmt.Errorf("malformed capability document: %w", err)
	}

	if probeRaw {
		fmt.Println(raw)
		return nil
	}

	fmt.Printf("%s (%s)\n", doc.Module.Name, doc.Module.Type)
	if doc.Module.Description != "" {
		fmt.Printf("  %s\n", doc.Module.Description)
	}
	fmt.Printf("  firmware %s, hardware %s\n", doc.Version.Firmware, doc.Version.Hardware)
	fmt.Printf("  channels: %d (%d motors, %d valves)\n",
		doc.Capabilities.TotalChannels, doc.Capabilities.Motors, doc.Capabilities.Valves)
	fmt.Println("  commands:")
	w := os.Stdout
	for _, c := range doc.Interface.Commands {
		fmt.Fprintf(w, "    %-28s%s\n", c.Format, c.Description)
		for _, a := range c.Args {
			fmt.Fprintf(w, "      %s: %d..%d (%s)\n", a.Name, a.Min, a.Max, a.Description)
		}
	}
	return nil
}
