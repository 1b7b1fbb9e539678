package scancode

import "pckbd/keycode"

// set2State is the decode state for Set 2. Unlike Set 1, releases are
// signalled by a 0xF0 prefix, so every prefix context has a matching
// release state.
type set2State uint8

const (
	set2Start set2State = iota
	set2Release
	set2Extended
	set2ExtendedRelease
	set2Extended2
	set2Extended2Release
)

// Set2 decodes Scancode Set 2, the set keyboards actually send on the
// wire. 0xF0 prefixes a release, 0xE0 and 0xE1 prefix the extended
// tables, and the bare bytes 0x00 and 0xAA are protocol signals rather
// than keys.
//
// See https://wiki.osdev.org/PS/2_Keyboard#Scan_Code_Set_2
type Set2 struct {
	state set2State
}

// NewSet2 returns a Set 2 decoder in its start state.
func NewSet2() *Set2 {
	return &Set2{}
}

// Reset discards any in-flight prefix.
func (s *Set2) Reset() {
	s.state = set2Start
}

// Advance implements the Set 2 state logic:
//
//	Start:            F0 => Release, E0 => Extended, E1 => Extended2,
//	                  xx => Key Down (or SingleShot for protocol signals)
//	Release:          xx => Key Up
//	Extended:         F0 => ExtendedRelease, xx => Extended Key Down
//	ExtendedRelease:  xx => Extended Key Up
//	Extended2:        F0 => Extended2Release, xx => Extended2 Key Down
//	Extended2Release: xx => Extended2 Key Up
func (s *Set2) Advance(code byte) (keycode.KeyEvent, bool, error) {
	switch s.state {
	case set2Start:
		switch code {
		case extendedCode:
			s.state = set2Extended
			return keycode.KeyEvent{}, false, nil
		case extended2Code:
			s.state = set2Extended2
			return keycode.KeyEvent{}, false, nil
		case releaseCode:
			s.state = set2Release
			return keycode.KeyEvent{}, false, nil
		default:
			kc, ok := set2Map(code)
			if !ok {
				return keycode.KeyEvent{}, false, ErrUnknownKeyCode
			}
			if kc == keycode.TooManyKeys || kc == keycode.PowerOnTestOk {
				return keycode.KeyEvent{Code: kc, State: keycode.SingleShot}, true, nil
			}
			return keycode.KeyEvent{Code: kc, State: keycode.Down}, true, nil
		}
	case set2Release:
		s.state = set2Start
		return set2Event(set2Map, code, keycode.Up)
	case set2Extended:
		if code == releaseCode {
			s.state = set2ExtendedRelease
			return keycode.KeyEvent{}, false, nil
		}
		s.state = set2Start
		return set2Event(set2ExtendedMap, code, keycode.Down)
	case set2ExtendedRelease:
		s.state = set2Start
		return set2Event(set2ExtendedMap, code, keycode.Up)
	case set2Extended2:
		if code == releaseCode {
			s.state = set2Extended2Release
			return keycode.KeyEvent{}, false, nil
		}
		s.state = set2Start
		return set2Event(set2Extended2Map, code, keycode.Down)
	default: // set2Extended2Release
		s.state = set2Start
		return set2Event(set2Extended2Map, code, keycode.Up)
	}
}

func set2Event(lookup func(byte) (keycode.KeyCode, bool), code byte, state keycode.KeyState) (keycode.KeyEvent, bool, error) {
	kc, ok := lookup(code)
	if !ok {
		return keycode.KeyEvent{}, false, ErrUnknownKeyCode
	}
	return keycode.KeyEvent{Code: kc, State: state}, true, nil
}

// set2Map holds the single byte codes for Set 2.
func set2Map(code byte) (keycode.KeyCode, bool) {
	switch code {
	case 0x00:
		return keycode.TooManyKeys, true
	case 0x01:
		return keycode.F9, true
	case 0x03:
		return keycode.F5, true
	case 0x04:
		return keycode.F3, true
	case 0x05:
		return keycode.F1, true
	case 0x06:
		return keycode.F2, true
	case 0x07:
		return keycode.F12, true
	case 0x09:
		return keycode.F10, true
	case 0x0A:
		return keycode.F8, true
	case 0x0B:
		return keycode.F6, true
	case 0x0C:
		return keycode.F4, true
	case 0x0D:
		return keycode.Tab, true
	case 0x0E:
		return keycode.Oem8, true
	case 0x11:
		return keycode.LAlt, true
	case 0x12:
		return keycode.LShift, true
	case 0x13:
		return keycode.Oem11, true
	case 0x14:
		return keycode.LControl, true
	case 0x15:
		return keycode.Q, true
	case 0x16:
		return keycode.Key1, true
	case 0x1A:
		return keycode.Z, true
	case 0x1B:
		return keycode.S, true
	case 0x1C:
		return keycode.A, true
	case 0x1D:
		return keycode.W, true
	case 0x1E:
		return keycode.Key2, true
	case 0x21:
		return keycode.C, true
	case 0x22:
		return keycode.X, true
	case 0x23:
		return keycode.D, true
	case 0x24:
		return keycode.E, true
	case 0x25:
		return keycode.Key4, true
	case 0x26:
		return keycode.Key3, true
	case 0x29:
		return keycode.Spacebar, true
	case 0x2A:
		return keycode.V, true
	case 0x2B:
		return keycode.F, true
	case 0x2C:
		return keycode.T, true
	case 0x2D:
		return keycode.R, true
	case 0x2E:
		return keycode.Key5, true
	case 0x31:
		return keycode.N, true
	case 0x32:
		return keycode.B, true
	case 0x33:
		return keycode.H, true
	case 0x34:
		return keycode.G, true
	case 0x35:
		return keycode.Y, true
	case 0x36:
		return keycode.Key6, true
	case 0x3A:
		return keycode.M, true
	case 0x3B:
		return keycode.J, true
	case 0x3C:
		return keycode.U, true
	case 0x3D:
		return keycode.Key7, true
	case 0x3E:
		return keycode.Key8, true
	case 0x41:
		return keycode.OemComma, true
	case 0x42:
		return keycode.K, true
	case 0x43:
		return keycode.I, true
	case 0x44:
		return keycode.O, true
	case 0x45:
		return keycode.Key0, true
	case 0x46:
		return keycode.Key9, true
	case 0x49:
		return keycode.OemPeriod, true
	case 0x4A:
		return keycode.Oem2, true
	case 0x4B:
		return keycode.L, true
	case 0x4C:
		return keycode.Oem1, true
	case 0x4D:
		return keycode.P, true
	case 0x4E:
		return keycode.OemMinus, true
	case 0x51:
		return keycode.Oem12, true
	case 0x52:
		return keycode.Oem3, true
	case 0x54:
		return keycode.Oem4, true
	case 0x55:
		return keycode.OemPlus, true
	case 0x58:
		return keycode.CapsLock, true
	case 0x59:
		return keycode.RShift, true
	case 0x5A:
		return keycode.Return, true
	case 0x5B:
		return keycode.Oem6, true
	case 0x5D:
		return keycode.Oem7, true
	case 0x61:
		return keycode.Oem5, true
	case 0x64:
		return keycode.Oem10, true
	case 0x66:
		return keycode.Backspace, true
	case 0x67:
		return keycode.Oem9, true
	case 0x69:
		return keycode.Numpad1, true
	case 0x6A:
		return keycode.Oem13, true
	case 0x6B:
		return keycode.Numpad4, true
	case 0x6C:
		return keycode.Numpad7, true
	case 0x70:
		return keycode.Numpad0, true
	case 0x71:
		return keycode.NumpadPeriod, true
	case 0x72:
		return keycode.Numpad2, true
	case 0x73:
		return keycode.Numpad5, true
	case 0x74:
		return keycode.Numpad6, true
	case 0x75:
		return keycode.Numpad8, true
	case 0x76:
		return keycode.Escape, true
	case 0x77:
		return keycode.NumpadLock, true
	case 0x78:
		return keycode.F11, true
	case 0x79:
		return keycode.NumpadAdd, true
	case 0x7A:
		return keycode.Numpad3, true
	case 0x7B:
		return keycode.NumpadSubtract, true
	case 0x7C:
		return keycode.NumpadMultiply, true
	case 0x7D:
		return keycode.Numpad9, true
	case 0x7E:
		return keycode.ScrollLock, true
	case 0x7F:
		return keycode.SysRq, true
	case 0x83:
		return keycode.F7, true
	case 0xAA:
		return keycode.PowerOnTestOk, true
	default:
		return 0, false
	}
}

// set2ExtendedMap holds the E0-prefixed codes for Set 2.
func set2ExtendedMap(code byte) (keycode.KeyCode, bool) {
	switch code {
	case 0x11:
		return keycode.RAltGr, true
	case 0x12:
		return keycode.RAlt2, true
	case 0x14:
		return keycode.RControl, true
	case 0x15:
		return keycode.PrevTrack, true
	case 0x1F:
		return keycode.LWin, true
	case 0x21:
		return keycode.VolumeDown, true
	case 0x23:
		return keycode.Mute, true
	case 0x27:
		return keycode.RWin, true
	case 0x2B:
		return keycode.Calculator, true
	case 0x2F:
		return keycode.Apps, true
	case 0x32:
		return keycode.VolumeUp, true
	case 0x34:
		return keycode.Play, true
	case 0x3A:
		return keycode.WWWHome, true
	case 0x3B:
		return keycode.Stop, true
	case 0x4A:
		return keycode.NumpadDivide, true
	case 0x4D:
		return keycode.NextTrack, true
	case 0x5A:
		return keycode.NumpadEnter, true
	case 0x69:
		return keycode.End, true
	case 0x6B:
		return keycode.ArrowLeft, true
	case 0x6C:
		return keycode.Home, true
	case 0x70:
		return keycode.Insert, true
	case 0x71:
		return keycode.Delete, true
	case 0x72:
		return keycode.ArrowDown, true
	case 0x74:
		return keycode.ArrowRight, true
	case 0x75:
		return keycode.ArrowUp, true
	case 0x7A:
		return keycode.PageDown, true
	case 0x7C:
		return keycode.PrintScreen, true
	case 0x7D:
		return keycode.PageUp, true
	default:
		return 0, false
	}
}

// set2Extended2Map holds the E1-prefixed codes for Set 2.
func set2Extended2Map(code byte) (keycode.KeyCode, bool) {
	if code == 0x14 {
		return keycode.RControl2, true
	}
	return 0, false
}
