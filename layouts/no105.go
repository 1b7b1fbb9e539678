package layouts

import "pckbd/keycode"

// No105 is the standard Norwegian 102-key (or 105-key including Windows
// keys) keyboard. Has a 2-row high Enter key with the extra key next to
// the left shift.
type No105 struct{}

func (No105) Physical() keycode.PhysicalKeyboard {
	return keycode.ISO
}

func (No105) MapKeycode(code keycode.KeyCode, m *keycode.Modifiers, ctrl keycode.HandleControl) keycode.DecodedKey {
	switch code {
	// Row 2 (the numbers)
	case keycode.Oem8:
		return m.Symbol('|', '§')
	case keycode.Key2:
		return m.SymbolAlt('2', '"', '@')
	case keycode.Key3:
		return m.SymbolAlt('3', '#', '£')
	case keycode.Key4:
		return m.SymbolAlt('4', '¤', '$')
	case keycode.Key5:
		return m.Symbol('5', '%')
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
		return m.Symbol('+', '?')
	case keycode.OemPlus:
		return m.SymbolAlt('\\', '`', '´')
	// Row 3 (QWERTY)
	case keycode.E:
		return m.AsciiLetterAlt2('E', '€', '€', ctrl)
	case keycode.Oem4:
		return m.Letter('å', 'Å')
	case keycode.Oem6:
		return m.SymbolAlt('¨', '^', '~')
	// Row 4 (ASDF)
	case keycode.Oem7:
		return m.Symbol('\'', '*')
	case keycode.Oem1:
		return m.Letter('ø', 'Ø')
	case keycode.Oem3:
		return m.Letter('æ', 'Æ')
	// Row 5 (ZXCV)
	case keycode.Oem5:
		return m.Symbol('<', '>')
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
