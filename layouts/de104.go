package layouts

import "pckbd/keycode"

// De104 is the German layout on an ANSI 104-key board, for QWERTZ typists
// without the extra ISO key next to the left shift.
type De104 struct{}

func (De104) Physical() keycode.PhysicalKeyboard {
	return keycode.ANSI
}

func (De104) MapKeycode(code keycode.KeyCode, m *keycode.Modifiers, ctrl keycode.HandleControl) keycode.DecodedKey {
	switch code {
	case keycode.Escape:
		return keycode.Unicode('\x1b')
	case keycode.Oem8:
		return m.Symbol('^', '°')
	case keycode.Key1:
		return m.Symbol('1', '!')
	case keycode.Key2:
		return m.Symbol('2', '"')
	case keycode.Key3:
		return m.Symbol('3', '§')
	case keycode.Key4:
		return m.Symbol('4', '$')
	case keycode.Key5:
		return m.Symbol('5', '%')
	case keycode.Key6:
		return m.Symbol('6', '&')
	case keycode.Key7:
		return m.Symbol('7', '/')
	case keycode.Key8:
		return m.Symbol('8', '(')
	case keycode.Key9:
		return m.Symbol('9', ')')
	case keycode.Key0:
		return m.Symbol('0', '=')
	case keycode.OemMinus:
		return m.Symbol('ß', '?')
	case keycode.OemPlus:
		return m.Symbol('´', '`')
	case keycode.Backspace:
		return keycode.Unicode('\b')
	case keycode.Tab:
		return keycode.Unicode('\t')
	case keycode.Q:
		return m.AsciiLetterAlt('Q', '@', ctrl)
	case keycode.E:
		return m.AsciiLetterAlt('E', '€', ctrl)
	case keycode.Y:
		return m.AsciiLetter('Z', ctrl)
	case keycode.Oem4:
		return m.Letter('ü', 'Ü')
	case keycode.Oem6:
		if m.RAlt {
			return keycode.Unicode('~')
		}
		return m.Letter('+', '*')
	case keycode.Return:
		return keycode.Unicode('\n')
	case keycode.Oem7:
		return m.Symbol('#', '\'')
	case keycode.Oem1:
		return m.Letter('ö', 'Ö')
	case keycode.Oem3:
		return m.Letter('ä', 'Ä')
	case keycode.Z:
		return m.AsciiLetter('Y', ctrl)
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
