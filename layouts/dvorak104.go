package layouts

import "pckbd/keycode"

// Dvorak104 is a Dvorak 101-key (or 104-key including Windows keys)
// keyboard. Has a 1-row high Enter key, with the backslash key above.
type Dvorak104 struct{}

func (Dvorak104) Physical() keycode.PhysicalKeyboard {
	return keycode.ANSI
}

func (Dvorak104) MapKeycode(code keycode.KeyCode, m *keycode.Modifiers, ctrl keycode.HandleControl) keycode.DecodedKey {
	switch code {
	case keycode.OemMinus:
		return m.Symbol('[', '{')
	case keycode.OemPlus:
		return m.Symbol(']', '}')
	case keycode.Q:
		return m.Letter('\'', '"')
	case keycode.W:
		return m.Letter(',', '<')
	case keycode.E:
		return m.Letter('.', '>')
	case keycode.R:
		return m.AsciiLetter('P', ctrl)
	case keycode.T:
		return m.AsciiLetter('Y', ctrl)
	case keycode.Y:
		return m.AsciiLetter('F', ctrl)
	case keycode.U:
		return m.AsciiLetter('G', ctrl)
	case keycode.I:
		return m.AsciiLetter('C', ctrl)
	case keycode.O:
		return m.AsciiLetter('R', ctrl)
	case keycode.P:
		return m.AsciiLetter('L', ctrl)
	case keycode.Oem4:
		return m.Symbol('/', '?')
	case keycode.Oem6:
		return m.Symbol('=', '+')
	case keycode.S:
		return m.AsciiLetter('O', ctrl)
	case keycode.D:
		return m.AsciiLetter('E', ctrl)
	case keycode.F:
		return m.AsciiLetter('U', ctrl)
	case keycode.G:
		return m.AsciiLetter('I', ctrl)
	case keycode.H:
		return m.AsciiLetter('D', ctrl)
	case keycode.J:
		return m.AsciiLetter('H', ctrl)
	case keycode.K:
		return m.AsciiLetter('T', ctrl)
	case keycode.L:
		return m.AsciiLetter('N', ctrl)
	case keycode.Oem1:
		return m.AsciiLetter('S', ctrl)
	case keycode.Oem3:
		return m.Symbol('-', '_')
	case keycode.Z:
		return m.Letter(';', ':')
	case keycode.X:
		return m.AsciiLetter('Q', ctrl)
	case keycode.C:
		return m.AsciiLetter('J', ctrl)
	case keycode.V:
		return m.AsciiLetter('K', ctrl)
	case keycode.B:
		return m.AsciiLetter('X', ctrl)
	case keycode.N:
		return m.AsciiLetter('B', ctrl)
	case keycode.OemComma:
		return m.AsciiLetter('W', ctrl)
	case keycode.OemPeriod:
		return m.AsciiLetter('V', ctrl)
	case keycode.Oem2:
		return m.AsciiLetter('Z', ctrl)
	default:
		return Us104{}.MapKeycode(code, m, ctrl)
	}
}
