package layouts

import "pckbd/keycode"

// DVP104 is a Dvorak Programmer 101-key (or 104-key including Windows
// keys) keyboard. The number row produces symbols unshifted and digits
// shifted.
type DVP104 struct{}

func (DVP104) Physical() keycode.PhysicalKeyboard {
	return keycode.ANSI
}

func (DVP104) MapKeycode(code keycode.KeyCode, m *keycode.Modifiers, ctrl keycode.HandleControl) keycode.DecodedKey {
	switch code {
	// Row 2 (the numbers)
	case keycode.Oem8:
		return m.Symbol('$', '~')
	case keycode.Key1:
		return m.Symbol('&', '%')
	case keycode.Key2:
		return m.Symbol('[', '7')
	case keycode.Key3:
		return m.Symbol('{', '5')
	case keycode.Key4:
		return m.Symbol('}', '3')
	case keycode.Key5:
		return m.Symbol('(', '1')
	case keycode.Key6:
		return m.Symbol('=', '9')
	case keycode.Key7:
		return m.Symbol('*', '0')
	case keycode.Key8:
		return m.Symbol(')', '2')
	case keycode.Key9:
		return m.Symbol('+', '4')
	case keycode.Key0:
		return m.Symbol(']', '6')
	case keycode.OemMinus:
		return m.Symbol('!', '8')
	case keycode.OemPlus:
		return m.Symbol('=', '`')
	// Row 3 (QWERTY)
	case keycode.Q:
		return m.Symbol(';', ':')
	case keycode.W:
		return m.Symbol(',', '<')
	case keycode.E:
		return m.Symbol('.', '>')
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
		return m.Symbol('@', '^')
	case keycode.Oem7:
		return m.Symbol('\\', '|')
	// Row 4 (ASDF)
	case keycode.A:
		return m.AsciiLetter('A', ctrl)
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
	// Row 5 (ZXCV)
	case keycode.Z:
		return m.Symbol('\'', '"')
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
	case keycode.M:
		return m.AsciiLetter('M', ctrl)
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
