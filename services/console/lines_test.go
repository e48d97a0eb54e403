package console

import "testing"

// queueSource replays a fixed byte stream in caller-defined chunks.
type queueSource struct {
	data []byte
}

func (q *queueSource) ReadByte() (byte, bool) {
	if len(q.data) == 0 {
		return 0, false
	}
	b := q.data[0]
	q.data = q.data[1:]
	return b, true
}

func (q *queueSource) feed(s string) { q.data = append(q.data, s...) }

func TestAccumulatorAssemblesLines(t *testing.T) {
	src := &queueSource{}
	acc := NewAccumulator(src, 0)

	if _, ok := acc.PollLine(); ok {
		t.Fatal("line from empty source")
	}

	src.feed("P 5 10")
	if _, ok := acc.PollLine(); ok {
		t.Fatal("line before newline arrived")
	}

	src.feed("00\n")
	line, ok := acc.PollLine()
	if !ok || line != "P 5 1000" {
		t.Fatalf("got %q, %v", line, ok)
	}
}

func TestAccumulatorOneLinePerPoll(t *testing.T) {
	src := &queueSource{}
	acc := NewAccumulator(src, 0)
	src.feed("H\nT\n")

	line, ok := acc.PollLine()
	if !ok || line != "H" {
		t.Fatalf("first poll: %q, %v", line, ok)
	}
	line, ok = acc.PollLine()
	if !ok || line != "T" {
		t.Fatalf("second poll: %q, %v", line, ok)
	}
	if _, ok := acc.PollLine(); ok {
		t.Fatal("third poll produced a line")
	}
}

func TestAccumulatorIgnoresCR(t *testing.T) {
	src := &queueSource{}
	acc := NewAccumulator(src, 0)
	src.feed("P 1 100\r\n")

	line, ok := acc.PollLine()
	if !ok || line != "P 1 100" {
		t.Fatalf("got %q, %v", line, ok)
	}
}

func TestAccumulatorDiscardsOversizedLines(t *testing.T) {
	src := &queueSource{}
	acc := NewAccumulator(src, 8)
	src.feed("P 5 100000000\nH\n")

	line, ok := acc.PollLine()
	if !ok || line != "H" {
		t.Fatalf("got %q, %v; the clipped line must not surface", line, ok)
	}
}
