// Package scancode implements the two PS/2 scancode-set state machines.
// Each consumes verified bytes one at a time and emits a key transition
// event once a complete sequence has been recognised. Set 1 and Set 2 have
// deliberately separate state types: the states one set can reach are not
// representable by the other.
package scancode

import (
	"errors"

	"pckbd/keycode"
)

// ErrUnknownKeyCode means a byte (or prefixed byte pair) did not resolve in
// the active lookup table. The state machine resets to its start state
// before returning it.
var ErrUnknownKeyCode = errors.New("unknown key code")

// Prefix bytes shared by both scancode sets.
const (
	extendedCode  = 0xE0
	extended2Code = 0xE1
	releaseCode   = 0xF0
)

// Set is a scancode state machine. Advance consumes one byte; ok is true
// when a complete key event was recognised. Reset discards any in-flight
// multi-byte sequence.
type Set interface {
	Advance(code byte) (ev keycode.KeyEvent, ok bool, err error)
	Reset()
}
