//go:build !tinygo

package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.bug.st/serial"
)

// errTimeout marks a ReadLine that ran out of time rather than hitting an
// I/O failure.
var errTimeout = errors.New("timed out")

// session wraps one open serial console. Reads go through a small
// accumulator so callers always see whole lines regardless of how the OS
// chunks the stream.
type session struct {
	port serial.Port
	name string

	pending []byte
}

// openSession opens the named port, or the first USB serial adapter on the
// system when name is empty. The ethoscope node wires modules over both
// FTDI headers and native USB, so both ttyUSB and ttyACM devices qualify.
func openSession(name string, baud int) (*session, error) {
	if name == "" {
		ports, err := serial.GetPortsList()
		if err != nil {
			return nil, fmt.Errorf("list serial ports: %w", err)
		}
		for _, p := range ports {
			if strings.Contains(p, "ttyUSB") || strings.Contains(p, "ttyACM") ||
				strings.Contains(p, "usbmodem") || strings.Contains(p, "usbserial") {
				name = p
				break
			}
		}
		if name == "" {
			return nil, fmt.Errorf("no USB serial port found; pass --port")
		}
		logger.Debug().Str("port", name).Msg("autodetected port")
	}

	port, err := serial.Open(name, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	if err := port.SetReadTimeout(100 * time.Millisecond); err != nil {
		port.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", name, err)
	}
	return &session{port: port, name: name}, nil
}

func (s *session) Close() error { return s.port.Close() }

func (s *session) SendLine(line string) error {
	logger.Debug().Str("tx", line).Msg("send")
	if _, err := s.port.Write([]byte(line + "\n")); err != nil {
		return fmt.Errorf("write %s: %w", s.name, err)
	}
	return nil
}

// ReadLine returns the next newline-terminated line, waiting up to the
// deadline. CR bytes are stripped.
func (s *session) ReadLine(timeout time.Duration) (string, error) {
	deadline := time.Now().Add(timeout)
	buf := make([]byte, 256)
	for {
		if i := bytes.IndexByte(s.pending, '\n'); i >= 0 {
			line := strings.TrimRight(string(s.pending[:i]), "\r")
			s.pending = s.pending[i+1:]
			logger.Debug().Str("rx", line).Msg("recv")
			return line, nil
		}
		if time.Now().After(deadline) {
			return "", fmt.Errorf("%w: no response from %s", errTimeout, s.name)
		}
		n, err := s.port.Read(buf)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", s.name, err)
		}
		s.pending = append(s.pending, buf[:n]...)
	}
}

// Ack waits for the firmware's OK or ERROR response to the previous
// command, skipping any boot chatter in between.
func (s *session) Ack(timeout time.Duration) (string, error) {
	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return "", fmt.Errorf("no acknowledgement from %s", s.name)
		}
		line, err := s.ReadLine(remaining)
		if err != nil {
			return "", err
		}
		if strings.HasPrefix(line, "OK") {
			return line, nil
		}
		if strings.HasPrefix(line, "ERROR:") {
			return "", fmt.Errorf("module rejected command: %s", strings.TrimSpace(line[len("ERROR:"):]))
		}
	}
}
