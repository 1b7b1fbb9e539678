package scancode

import "pckbd/keycode"

// set1State is the decode state for Set 1. Releases are signalled by the
// high bit of the code byte, so Set 1 has no release states.
type set1State uint8

const (
	set1Start set1State = iota
	set1Extended
	set1Extended2
)

// Set1 decodes Scancode Set 1, the set the i8042 controller translates to
// by default. Make codes are single bytes; the matching break code is the
// make code with the high bit set. 0xE0 and 0xE1 prefix the extended
// tables.
//
// See https://wiki.osdev.org/PS/2_Keyboard#Scan_Code_Set_1
type Set1 struct {
	state set1State
}

// NewSet1 returns a Set 1 decoder in its start state.
func NewSet1() *Set1 {
	return &Set1{}
}

// Reset discards any in-flight prefix.
func (s *Set1) Reset() {
	s.state = set1Start
}

// Advance implements the Set 1 state logic:
//
//	Start:     E0 => Extended, E1 => Extended2,
//	           < 0x80 => Key Down, >= 0x80 => Key Up
//	Extended:  < 0x80 => Extended Key Down, >= 0x80 => Extended Key Up
//	Extended2: < 0x80 => Extended2 Key Down, >= 0x80 => Extended2 Key Up
func (s *Set1) Advance(code byte) (keycode.KeyEvent, bool, error) {
	switch s.state {
	case set1Extended:
		s.state = set1Start
		return event(set1ExtendedMap, code)
	case set1Extended2:
		s.state = set1Start
		return event(set1Extended2Map, code)
	default:
		switch code {
		case extendedCode:
			s.state = set1Extended
			return keycode.KeyEvent{}, false, nil
		case extended2Code:
			s.state = set1Extended2
			return keycode.KeyEvent{}, false, nil
		default:
			return event(set1Map, code)
		}
	}
}

// event strips the break bit, looks the base code up and emits Down or Up.
func event(lookup func(byte) (keycode.KeyCode, bool), code byte) (keycode.KeyEvent, bool, error) {
	state := keycode.Down
	if code >= 0x80 {
		state = keycode.Up
		code -= 0x80
	}
	kc, ok := lookup(code)
	if !ok {
		return keycode.KeyEvent{}, false, ErrUnknownKeyCode
	}
	return keycode.KeyEvent{Code: kc, State: state}, true, nil
}

// set1Map holds the single byte codes for Set 1.
func set1Map(code byte) (keycode.KeyCode, bool) {
	switch code {
	case 0x01:
		return keycode.Escape, true
	case 0x02:
		return keycode.Key1, true
	case 0x03:
		return keycode.Key2, true
	case 0x04:
		return keycode.Key3, true
	case 0x05:
		return keycode.Key4, true
	case 0x06:
		return keycode.Key5, true
	case 0x07:
		return keycode.Key6, true
	case 0x08:
		return keycode.Key7, true
	case 0x09:
		return keycode.Key8, true
	case 0x0A:
		return keycode.Key9, true
	case 0x0B:
		return keycode.Key0, true
	case 0x0C:
		return keycode.OemMinus, true
	case 0x0D:
		return keycode.OemPlus, true
	case 0x0E:
		return keycode.Backspace, true
	case 0x0F:
		return keycode.Tab, true
	case 0x10:
		return keycode.Q, true
	case 0x11:
		return keycode.W, true
	case 0x12:
		return keycode.E, true
	case 0x13:
		return keycode.R, true
	case 0x14:
		return keycode.T, true
	case 0x15:
		return keycode.Y, true
	case 0x16:
		return keycode.U, true
	case 0x17:
		return keycode.I, true
	case 0x18:
		return keycode.O, true
	case 0x19:
		return keycode.P, true
	case 0x1A:
		return keycode.Oem4, true
	case 0x1B:
		return keycode.Oem6, true
	case 0x1C:
		return keycode.Return, true
	case 0x1D:
		return keycode.LControl, true
	case 0x1E:
		return keycode.A, true
	case 0x1F:
		return keycode.S, true
	case 0x20:
		return keycode.D, true
	case 0x21:
		return keycode.F, true
	case 0x22:
		return keycode.G, true
	case 0x23:
		return keycode.H, true
	case 0x24:
		return keycode.J, true
	case 0x25:
		return keycode.K, true
	case 0x26:
		return keycode.L, true
	case 0x27:
		return keycode.Oem1, true
	case 0x28:
		return keycode.Oem3, true
	case 0x29:
		return keycode.Oem8, true
	case 0x2A:
		return keycode.LShift, true
	case 0x2B:
		return keycode.Oem7, true
	case 0x2C:
		return keycode.Z, true
	case 0x2D:
		return keycode.X, true
	case 0x2E:
		return keycode.C, true
	case 0x2F:
		return keycode.V, true
	case 0x30:
		return keycode.B, true
	case 0x31:
		return keycode.N, true
	case 0x32:
		return keycode.M, true
	case 0x33:
		return keycode.OemComma, true
	case 0x34:
		return keycode.OemPeriod, true
	case 0x35:
		return keycode.Oem2, true
	case 0x36:
		return keycode.RShift, true
	case 0x37:
		return keycode.NumpadMultiply, true
	case 0x38:
		return keycode.LAlt, true
	case 0x39:
		return keycode.Spacebar, true
	case 0x3A:
		return keycode.CapsLock, true
	case 0x3B:
		return keycode.F1, true
	case 0x3C:
		return keycode.F2, true
	case 0x3D:
		return keycode.F3, true
	case 0x3E:
		return keycode.F4, true
	case 0x3F:
		return keycode.F5, true
	case 0x40:
		return keycode.F6, true
	case 0x41:
		return keycode.F7, true
	case 0x42:
		return keycode.F8, true
	case 0x43:
		return keycode.F9, true
	case 0x44:
		return keycode.F10, true
	case 0x45:
		return keycode.NumpadLock, true
	case 0x46:
		return keycode.ScrollLock, true
	case 0x47:
		return keycode.Numpad7, true
	case 0x48:
		return keycode.Numpad8, true
	case 0x49:
		return keycode.Numpad9, true
	case 0x4A:
		return keycode.NumpadSubtract, true
	case 0x4B:
		return keycode.Numpad4, true
	case 0x4C:
		return keycode.Numpad5, true
	case 0x4D:
		return keycode.Numpad6, true
	case 0x4E:
		return keycode.NumpadAdd, true
	case 0x4F:
		return keycode.Numpad1, true
	case 0x50:
		return keycode.Numpad2, true
	case 0x51:
		return keycode.Numpad3, true
	case 0x52:
		return keycode.Numpad0, true
	case 0x53:
		return keycode.NumpadPeriod, true
	case 0x54:
		return keycode.SysRq, true
	// 0x55 is unused
	case 0x56:
		return keycode.Oem5, true
	case 0x57:
		return keycode.F11, true
	case 0x58:
		return keycode.F12, true
	default:
		return 0, false
	}
}

// set1ExtendedMap holds the E0-prefixed codes for Set 1.
func set1ExtendedMap(code byte) (keycode.KeyCode, bool) {
	switch code {
	case 0x10:
		return keycode.PrevTrack, true
	case 0x19:
		return keycode.NextTrack, true
	case 0x1C:
		return keycode.NumpadEnter, true
	case 0x1D:
		return keycode.RControl, true
	case 0x20:
		return keycode.Mute, true
	case 0x21:
		return keycode.Calculator, true
	case 0x22:
		return keycode.Play, true
	case 0x24:
		return keycode.Stop, true
	case 0x2A:
		return keycode.RAlt2, true
	case 0x2E:
		return keycode.VolumeDown, true
	case 0x30:
		return keycode.VolumeUp, true
	case 0x32:
		return keycode.WWWHome, true
	case 0x35:
		return keycode.NumpadDivide, true
	case 0x37:
		return keycode.PrintScreen, true
	case 0x38:
		return keycode.RAltGr, true
	case 0x47:
		return keycode.Home, true
	case 0x48:
		return keycode.ArrowUp, true
	case 0x49:
		return keycode.PageUp, true
	case 0x4B:
		return keycode.ArrowLeft, true
	case 0x4D:
		return keycode.ArrowRight, true
	case 0x4F:
		return keycode.End, true
	case 0x50:
		return keycode.ArrowDown, true
	case 0x51:
		return keycode.PageDown, true
	case 0x52:
		return keycode.Insert, true
	case 0x53:
		return keycode.Delete, true
	case 0x5B:
		return keycode.LWin, true
	case 0x5C:
		return keycode.RWin, true
	case 0x5D:
		return keycode.Apps, true
	case 0x70:
		return keycode.Oem11, true
	case 0x73:
		return keycode.Oem12, true
	case 0x79:
		return keycode.Oem10, true
	case 0x7B:
		return keycode.Oem9, true
	case 0x7D:
		return keycode.Oem13, true
	default:
		return 0, false
	}
}

// set1Extended2Map holds the E1-prefixed codes for Set 1. Only the hidden
// control half of the Pause sequence lives here.
func set1Extended2Map(code byte) (keycode.KeyCode, bool) {
	if code == 0x1D {
		return keycode.RControl2, true
	}
	return 0, false
}
