package console

// ByteSource yields pending input bytes without blocking. ok is false when
// no byte is waiting. MCU builds back this with the UART; the simulator
// feeds it from stdin.
type ByteSource interface {
	ReadByte() (b byte, ok bool)
}

// LineSource yields at most one complete command line per poll.
type LineSource interface {
	PollLine() (line string, ok bool)
}

// Accumulator assembles newline-terminated lines from a ByteSource.
// CR is ignored so both \n and \r\n hosts work; input past the cap is
// dropped until the next newline, which keeps a babbling host from growing
// the buffer unboundedly.
type Accumulator struct {
	src      ByteSource
	buf      []byte
	max      int
	overflow bool
}

const defaultLineCap = 64

func NewAccumulator(src ByteSource, max int) *Accumulator {
	if max <= 0 {
		max = defaultLineCap
	}
	return &Accumulator{src: src, buf: make([]byte, 0, max), max: max}
}

// PollLine drains pending bytes and returns one line when a newline has
// arrived. Further complete lines stay buffered in the source for the next
// poll, preserving the one-command-per-iteration cadence.
func (a *Accumulator) PollLine() (string, bool) {
	for {
		b, ok := a.src.ReadByte()
		if !ok {
			return "", false
		}
		switch b {
		case '\n':
			if a.overflow {
				// An over-long line is discarded whole rather than
				// truncated, so a clipped command can never run.
				a.buf = a.buf[:0]
				a.overflow = false
				continue
			}
			line := string(a.buf)
			a.buf = a.buf[:0]
			return line, true
		case '\r':
			// ignore
		default:
			if a.overflow {
				continue
			}
			if len(a.buf) == a.max {
				a.overflow = true
				continue
			}
			a.buf = append(a.buf, b)
		}
	}
}
