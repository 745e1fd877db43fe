// Package input reads terminal key bytes and merges them into the logical
// per-frame control vector the simulation consumes.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals deliver repeats rather than press/release events, so keys are
// treated as held for a short window after each byte arrives.
const keyHoldDuration = 30 * time.Millisecond

// Input is the logical control vector for one frame. The simulation core does
// not care whether it came from a keyboard, touch buttons or a websocket
// message.
type Input struct {
	Left  bool
	Right bool
	Boost bool
	Shoot bool
	Pause bool
	Start bool
	Quit  bool
}

// keyState tracks the last time each logical key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
	boost time.Time
	shoot time.Time
	pause time.Time
	start time.Time
	quit  time.Time
}

// Stream delivers input bytes via a channel and tracks key state so
// simultaneous combinations (move + boost + shoot) register together.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
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

// ReadInput drains all available bytes from the stream (non-blocking) and
// returns the merged control vector for this frame.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

	// Drain all available bytes
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequences for arrow keys: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.boost = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			case 'B': // Down arrow (unused)
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	return Input{
		Left:  now.Sub(s.state.left) < keyHoldDuration,
		Right: now.Sub(s.state.right) < keyHoldDuration,
		Boost: now.Sub(s.state.boost) < keyHoldDuration,
		Shoot: now.Sub(s.state.shoot) < keyHoldDuration,
		Pause: now.Sub(s.state.pause) < keyHoldDuration,
		Start: now.Sub(s.state.start) < keyHoldDuration,
		Quit:  now.Sub(s.state.quit) < keyHoldDuration,
	}
}

// ResetKeyInput clears all key state, e.g. after a screen transition so a
// held key does not leak into the next game phase.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.state = keyState{}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // q or Ctrl-C
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'k', 'K':
		state.boost = now
	case ' ':
		state.shoot = now
		state.start = now
	case '\n', '\r':
		state.start = now
	case 'p', 'P', '\x1b':
		state.pause = now
	}
}
