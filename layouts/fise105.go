package layouts

import "pckbd/keycode"

// FiSe105 is the standard Finnish/Swedish 102-key (or 105-key including
// Windows keys) keyboard. Has a 2-row high Enter key with the extra key
// next to the left shift.
type FiSe105 struct{}

func (FiSe105) Physical() keycode.PhysicalKeyboard {
	return keycode.ISO
}

func (FiSe105) MapKeycode(code keycode.KeyCode, m *keycode.Modifiers, ctrl keycode.HandleControl) keycode.DecodedKey {
	switch code {
	// Row 2 (the numbers)
	case keycode.Oem8:
		return m.Symbol('§', '½')
	case keycode.Key2:
		return m.SymbolAlt('2', '"', '@')
	case keycode.Key3:
		return m.SymbolAlt('3', '#', '£')
	case keycode.Key4:
		return m.SymbolAlt('4', '¤', '$')
	case keycode.Key5:
		return m.SymbolAlt('5', '%', '€')
	case keycode.Key6:
		return m.Symbol('6', '&')
	case keycode.Key7:
		return m.SymbolAlt('7', '/', '{')
	case keycode.Key8:
		return m.SymbolAlt('8', '(', '[')
	case keycode.Key9:
		return m.SymbolAlt('9', ')', ']')
	case keycode.Key0:
		return m.SymbolAlt('0', '=', '}')
	case keycode.OemMinus:
		return m.SymbolAlt('+', '?', '\\')
	case keycode.OemPlus:
		return m.Symbol('´', '`')
	// Row 3 (QWERTY)
	case keycode.E:
		return m.AsciiLetterAlt2('E', '€', '€', ctrl)
	case keycode.Oem4:
		return m.Letter('å', 'Å')
	case keycode.Oem6:
		return m.SymbolAlt('¨', '^', '~')
	// Row 4 (ASDF)
	case keycode.Oem1:
		return m.Letter('ö', 'Ö')
	case keycode.Oem3:
		return m.Letter('ä', 'Ä')
	case keycode.Oem7:
		return m.Symbol('\'', '*')
	// Row 5 (ZXCV)
	case keycode.Oem5:
		return m.SymbolAlt('<', '>', '|')
	case keycode.M:
		return m.AsciiLetterAlt2('M', 'µ', 'µ', ctrl)
	case keycode.OemComma:
		return m.Symbol(',', ';')
	case keycode.OemPeriod:
		return m.Symbol('.', ':')
	case keycode.Oem2:
		return m.Symbol('-', '_')
	case keycode.NumpadPeriod:
		if m.NumLock {
			return keycode.Unicode(',')
		}
		return Us104{}.MapKeycode(code, m, ctrl)
	default:
		return Us104{}.MapKeycode(code, m, ctrl)
	}
}
