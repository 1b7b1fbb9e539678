package layouts

import "pckbd/keycode"

// Uk105 is the standard United Kingdom 102-key (or 105-key including
// Windows keys) keyboard. Has a 2-row high Enter key, with the backslash
// key next to the left shift.
type Uk105 struct{}

func (Uk105) Physical() keycode.PhysicalKeyboard {
	return keycode.ISO
}

func (Uk105) MapKeycode(code keycode.KeyCode, m *keycode.Modifiers, ctrl keycode.HandleControl) keycode.DecodedKey {
	switch code {
	case keycode.Oem8:
		if m.IsAltGr() {
			return keycode.Unicode('|')
		}
		return m.Symbol('`', '¬')
	case keycode.Key2:
		return m.Symbol('2', '"')
	case keycode.Oem3:
		return m.Symbol('\'', '@')
	case keycode.Key3:
		return m.Symbol('3', '£')
	case keycode.Key4:
		if m.IsAltGr() {
			return keycode.Unicode('€')
		}
		return m.Symbol('4', '$')
	case keycode.Oem7:
		return m.Symbol('#', '~')
	case keycode.Oem5:
		return m.Symbol('\\', '|')
	default:
		return Us104{}.MapKeycode(code, m, ctrl)
	}
}
