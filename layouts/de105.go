package layouts

import "pckbd/keycode"

// De105 is the standard German 102-key (or 105-key including Windows keys)
// keyboard. The top row spells QWERTZ. Has a 2-row high Enter key with the
// extra key next to the left shift.
type De105 struct{}

func (De105) Physical() keycode.PhysicalKeyboard {
	return keycode.ISO
}

func (De105) MapKeycode(code keycode.KeyCode, m *keycode.Modifiers, ctrl keycode.HandleControl) keycode.DecodedKey {
	switch code {
	// Row 2 (the numbers)
	case keycode.Oem8:
		return m.Symbol('^', '°')
	case keycode.Key2:
		return m.SymbolAlt('2', '"', '²')
	case keycode.Key3:
		return m.SymbolAlt('3', '§', '³')
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
		return m.SymbolAlt('ß', '?', '\\')
	case keycode.OemPlus:
		return m.Symbol('´', '`')
	// Row 3 (QWERTZ)
	case keycode.Q:
		return m.AsciiLetterAlt2('Q', '@', '@', ctrl)
	case keycode.E:
		return m.AsciiLetterAlt2('E', '€', '€', ctrl)
	case keycode.Y:
		return m.AsciiLetter('Z', ctrl)
	case keycode.Oem4:
		return m.Letter('ü', 'Ü')
	case keycode.Oem6:
		return m.SymbolAlt('+', '*', '~')
	// Row 4 (ASDF)
	case keycode.Oem1:
		return m.Letter('ö', 'Ö')
	case keycode.Oem3:
		return m.Letter('ä', 'Ä')
	case keycode.Oem7:
		return m.Symbol('#', '\'')
	// Row 5 (YXCV)
	case keycode.Oem5:
		return m.SymbolAlt('<', '>', '|')
	case keycode.Z:
		return m.AsciiLetter('Y', ctrl)
	case keycode.M:
		return m.AsciiLetterAlt2('M', 'µ', 'µ', ctrl)
	case keycode.OemComma:
		return m.Symbol(',', ';')
	case keycode.OemPeriod:
		return m.Symbol('.', ':')
	case keycode.Oem2:
		return m.Symbol('-', '_')
	default:
		return Us104{}.MapKeycode(code, m, ctrl)
	}
}
