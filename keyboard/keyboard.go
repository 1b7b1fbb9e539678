package keyboard

import (
	"pckbd/keycode"
	"pckbd/ps2"
	"pckbd/scancode"
)

// Keyboard chains the three pipeline stages so a caller can feed raw bits,
// bytes or words and receive key events, then feed those back through
// ProcessKeyevent for decoded characters. The three stages remain usable on
// their own; this is only glue.
//
// One Keyboard per physical keyboard. Instances share nothing, so decoding
// several keyboards concurrently needs no locking as long as each instance
// stays on one goroutine (or behind the caller's own interrupt discipline).
type Keyboard struct {
	decoder ps2.Decoder
	set     scancode.Set
	events  *EventDecoder
}

// New builds a keyboard pipeline from a scancode set and a locale layout.
func New(set scancode.Set, layout keycode.Layout, ctrl keycode.HandleControl) *Keyboard {
	return &Keyboard{
		set:    set,
		events: NewEventDecoder(layout, ctrl),
	}
}

// Clear discards any partial frame and any in-flight multi-byte sequence.
// Call on a caller-detected timeout.
func (k *Keyboard) Clear() {
	k.decoder.Clear()
	k.set.Reset()
}

// AddBit feeds one serial bit. ok is true when a full frame completed a
// key event.
func (k *Keyboard) AddBit(bit bool) (keycode.KeyEvent, bool, error) {
	data, complete, err := k.decoder.AddBit(bit)
	if err != nil {
		return keycode.KeyEvent{}, false, err
	}
	if !complete {
		return keycode.KeyEvent{}, false, nil
	}
	return k.set.Advance(data)
}

// AddWord feeds a pre-assembled 11-bit frame.
func (k *Keyboard) AddWord(word uint16) (keycode.KeyEvent, bool, error) {
	data, err := k.decoder.AddWord(word)
	if err != nil {
		return keycode.KeyEvent{}, false, err
	}
	return k.set.Advance(data)
}

// AddByte feeds a verified scancode byte, skipping the frame decoder.
func (k *Keyboard) AddByte(b byte) (keycode.KeyEvent, bool, error) {
	return k.set.Advance(b)
}

// ProcessKeyevent forwards to the event decoder.
func (k *Keyboard) ProcessKeyevent(ev keycode.KeyEvent) (keycode.DecodedKey, bool) {
	return k.events.ProcessKeyevent(ev)
}

// SetCtrlHandling changes how Ctrl+letter combinations are decoded.
func (k *Keyboard) SetCtrlHandling(ctrl keycode.HandleControl) {
	k.events.SetCtrlHandling(ctrl)
}

// Modifiers returns a read-only snapshot of the modifier state.
func (k *Keyboard) Modifiers() keycode.Modifiers {
	return k.events.Modifiers()
}

// ChangeLayout swaps the locale table.
func (k *Keyboard) ChangeLayout(layout keycode.Layout) {
	k.events.ChangeLayout(layout)
}
