// Package keyboard contains the modifier-tracking event decoder and the
// Keyboard facade that chains the frame decoder, a scancode set and the
// event decoder into one pipeline.
package keyboard

import "pckbd/keycode"

// EventDecoder turns key transition events into decoded characters. It owns
// the modifier state and delegates every non-modifier key-down to the
// configured layout. It never errors: unrecognised codes get a best-effort
// raw passthrough from the layout or nothing at all.
type EventDecoder struct {
	layout     keycode.Layout
	handleCtrl keycode.HandleControl
	modifiers  keycode.Modifiers
}

// NewEventDecoder builds an event decoder for the given layout with the
// power-on modifier state (Num Lock enabled).
func NewEventDecoder(layout keycode.Layout, ctrl keycode.HandleControl) *EventDecoder {
	return &EventDecoder{
		layout:     layout,
		handleCtrl: ctrl,
		modifiers:  keycode.DefaultModifiers(),
	}
}

// SetCtrlHandling changes how Ctrl+letter combinations are decoded.
func (d *EventDecoder) SetCtrlHandling(ctrl keycode.HandleControl) {
	d.handleCtrl = ctrl
}

// CtrlHandling returns the current Ctrl+letter behaviour.
func (d *EventDecoder) CtrlHandling() keycode.HandleControl {
	return d.handleCtrl
}

// Modifiers returns a read-only snapshot of the modifier state.
func (d *EventDecoder) Modifiers() keycode.Modifiers {
	return d.modifiers
}

// ChangeLayout swaps the locale table. Most useful with layouts.AnyLayout,
// which covers every built-in layout behind one value.
func (d *EventDecoder) ChangeLayout(layout keycode.Layout) {
	d.layout = layout
}

// Clear resets the modifier state to power-on defaults.
func (d *EventDecoder) Clear() {
	d.modifiers = keycode.DefaultModifiers()
}

// ProcessKeyevent advances the modifier state machine by one event and
// returns the decoded output, if any.
//
// Modifier keys set their flag on Down, returning a raw passthrough, and
// clear it silently on Up. CapsLock and NumpadLock toggle on Down and
// ignore Up. A NumpadLock Down while the hidden RControl2 flag is set is
// the second half of the fixed Pause sequence; it is reported as
// PauseBreak and the Num Lock toggle is left alone. Anything else goes to
// the layout on Down and produces nothing on Up.
func (d *EventDecoder) ProcessKeyevent(ev keycode.KeyEvent) (keycode.DecodedKey, bool) {
	down := ev.State == keycode.Down
	switch ev.Code {
	case keycode.LShift:
		return d.flagKey(&d.modifiers.LShift, ev.Code, down)
	case keycode.RShift:
		return d.flagKey(&d.modifiers.RShift, ev.Code, down)
	case keycode.LControl:
		return d.flagKey(&d.modifiers.LCtrl, ev.Code, down)
	case keycode.RControl:
		return d.flagKey(&d.modifiers.RCtrl, ev.Code, down)
	case keycode.LAlt:
		return d.flagKey(&d.modifiers.LAlt, ev.Code, down)
	case keycode.RAltGr:
		return d.flagKey(&d.modifiers.RAlt, ev.Code, down)
	case keycode.RControl2:
		return d.flagKey(&d.modifiers.RCtrl2, ev.Code, down)
	case keycode.CapsLock:
		if down {
			d.modifiers.CapsLock = !d.modifiers.CapsLock
			return keycode.RawKey(keycode.CapsLock), true
		}
		return keycode.DecodedKey{}, false
	case keycode.NumpadLock:
		if down {
			if d.modifiers.RCtrl2 {
				// The hidden control arrived first, so this is the
				// Pause key, not a Num Lock toggle.
				return keycode.RawKey(keycode.PauseBreak), true
			}
			d.modifiers.NumLock = !d.modifiers.NumLock
			return keycode.RawKey(keycode.NumpadLock), true
		}
		return keycode.DecodedKey{}, false
	default:
		if down {
			return d.layout.MapKeycode(ev.Code, &d.modifiers, d.handleCtrl), true
		}
		return keycode.DecodedKey{}, false
	}
}

func (d *EventDecoder) flagKey(flag *bool, code keycode.KeyCode, down bool) (keycode.DecodedKey, bool) {
	*flag = down
	if down {
		return keycode.RawKey(code), true
	}
	return keycode.DecodedKey{}, false
}
