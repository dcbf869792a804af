package input

import (
	"bufio"
	"time"
)

// EventKind distinguishes presses from releases.
type EventKind int

const (
	Press EventKind = iota
	Release
)

// Event is a decoded key event.
type Event struct {
	Kind EventKind
	Key  Key
}

// Stream delivers terminal input bytes via a channel and tracks which
// directional keys are held.
type Stream struct {
	ch      chan byte
	holds   *HoldTracker
	closed  bool
	pending []byte // Incomplete escape sequence carried to the next poll
	buf     []byte
	events  []Event
}

func newStream(hold time.Duration) *Stream {
	return &Stream{
		ch:    make(chan byte, 128),
		holds: NewHoldTracker(hold),
	}
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader, hold time.Duration) *Stream {
	s := newStream(hold)
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// Poll drains all available bytes (non-blocking) and returns the key events
// they produce, followed by releases for directional keys whose hold expired.
// The returned slice is reused by the next call.
func (s *Stream) Poll(now time.Time) []Event {
	s.events = s.events[:0]
	s.buf = append(s.buf[:0], s.pending...)
	s.pending = s.pending[:0]

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			s.buf = append(s.buf, b)
		default:
			break drain
		}
	}

	keys, rest := Decode(s.buf)
	s.pending = append(s.pending, rest...)

	for _, k := range keys {
		if s.holds.Press(k, now) {
			s.events = append(s.events, Event{Kind: Press, Key: k})
		}
	}

	s.events = s.holds.Expire(now, s.events)
	return s.events
}

// Reset releases every held key without emitting events.
func (s *Stream) Reset() {
	s.holds.Reset()
}

// Decode parses raw terminal bytes into keys. Arrow keys arrive as CSI
// (ESC [ params A..D) or SS3 (ESC O A..D) sequences; modifier parameters
// such as ESC [1;2D are ignored and other sequences are dropped whole.
// A trailing incomplete sequence is returned as rest so the caller can
// retry once more bytes arrive.
func Decode(buf []byte) (keys []Key, rest []byte) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != '\x1b' {
			if k := KeyForByte(b); k != KeyNone {
				keys = append(keys, k)
			}
			continue
		}

		// ESC alone at the end may be the start of a sequence.
		if i+1 >= len(buf) {
			return keys, buf[i:]
		}
		if buf[i+1] != '[' && buf[i+1] != 'O' {
			continue // Bare escape, ignored
		}

		// Skip parameter (0x30-0x3F) and intermediate (0x20-0x2F) bytes
		// up to the final byte (0x40-0x7E).
		j := i + 2
		for j < len(buf) && buf[j] >= 0x20 && buf[j] <= 0x3f {
			j++
		}
		if j >= len(buf) {
			return keys, buf[i:]
		}
		final := buf[j]
		if final < 0x40 || final > 0x7e {
			i = j - 1 // Broken sequence; decode the stray byte on its own
			continue
		}
		if k := arrowKey(final); k != KeyNone {
			keys = append(keys, k)
		}
		i = j
	}
	return keys, nil
}

// arrowKey maps the final byte of a cursor-key sequence.
func arrowKey(final byte) Key {
	switch final {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	}
	return KeyNone
}
