// Package layouts implements the built-in locale character tables. Each
// layout is a stateless lookup from a key code plus a modifier snapshot to
// a decoded character. Where two layouts are close, the variant handles its
// own keys first and falls through to the base layout, see Uk105 and Us104.
package layouts

import "pckbd/keycode"

// Us104 is the standard United States 101-key (or 104-key including
// Windows keys) keyboard. Has a 1-row high Enter key, with the backslash
// key above.
type Us104 struct{}

func (Us104) Physical() keycode.PhysicalKeyboard {
	return keycode.ANSI
}

func (Us104) MapKeycode(code keycode.KeyCode, m *keycode.Modifiers, ctrl keycode.HandleControl) keycode.DecodedKey {
	switch code {
	case keycode.Escape:
		return keycode.Unicode('\x1b')
	// Row 2 (the numbers)
	case keycode.Oem8:
		return m.Symbol('`', '~')
	case keycode.Key1:
		return m.Symbol('1', '!')
	case keycode.Key2:
		return m.Symbol('2', '@')
	case keycode.Key3:
		return m.Symbol('3', '#')
	case keycode.Key4:
		return m.Symbol('4', '$')
	case keycode.Key5:
		return m.Symbol('5', '%')
	case keycode.Key6:
		return m.Symbol('6', '^')
	case keycode.Key7:
		return m.Symbol('7', '&')
	case keycode.Key8:
		return m.Symbol('8', '*')
	case keycode.Key9:
		return m.Symbol('9', '(')
	case keycode.Key0:
		return m.Symbol('0', ')')
	case keycode.OemMinus:
		return m.Symbol('-', '_')
	case keycode.OemPlus:
		return m.Symbol('=', '+')
	case keycode.Backspace:
		return keycode.Unicode('\b')
	// Row 3 (QWERTY)
	case keycode.Tab:
		return keycode.Unicode('\t')
	case keycode.Q:
		return m.AsciiLetter('Q', ctrl)
	case keycode.W:
		return m.AsciiLetter('W', ctrl)
	case keycode.E:
		return m.AsciiLetter('E', ctrl)
	case keycode.R:
		return m.AsciiLetter('R', ctrl)
	case keycode.T:
		return m.AsciiLetter('T', ctrl)
	case keycode.Y:
		return m.AsciiLetter('Y', ctrl)
	case keycode.U:
		return m.AsciiLetter('U', ctrl)
	case keycode.I:
		return m.AsciiLetter('I', ctrl)
	case keycode.O:
		return m.AsciiLetter('O', ctrl)
	case keycode.P:
		return m.AsciiLetter('P', ctrl)
	case keycode.Oem4:
		return m.Symbol('[', '{')
	case keycode.Oem6:
		return m.Symbol(']', '}')
	case keycode.Oem7:
		return m.Symbol('\\', '|')
	// Row 4 (ASDF)
	case keycode.A:
		return m.AsciiLetter('A', ctrl)
	case keycode.S:
		return m.AsciiLetter('S', ctrl)
	case keycode.D:
		return m.AsciiLetter('D', ctrl)
	case keycode.F:
		return m.AsciiLetter('F', ctrl)
	case keycode.G:
		return m.AsciiLetter('G', ctrl)
	case keycode.H:
		return m.AsciiLetter('H', ctrl)
	case keycode.J:
		return m.AsciiLetter('J', ctrl)
	case keycode.K:
		return m.AsciiLetter('K', ctrl)
	case keycode.L:
		return m.AsciiLetter('L', ctrl)
	case keycode.Oem1:
		return m.Symbol(';', ':')
	case keycode.Oem3:
		return m.Symbol('\'', '"')
	case keycode.Return:
		return keycode.Unicode('\n')
	// Row 5 (ZXCV)
	case keycode.Z:
		return m.AsciiLetter('Z', ctrl)
	case keycode.X:
		return m.AsciiLetter('X', ctrl)
	case keycode.C:
		return m.AsciiLetter('C', ctrl)
	case keycode.V:
		return m.AsciiLetter('V', ctrl)
	case keycode.B:
		return m.AsciiLetter('B', ctrl)
	case keycode.N:
		return m.AsciiLetter('N', ctrl)
	case keycode.M:
		return m.AsciiLetter('M', ctrl)
	case keycode.OemComma:
		return m.Symbol(',', '<')
	case keycode.OemPeriod:
		return m.Symbol('.', '>')
	case keycode.Oem2:
		return m.Symbol('/', '?')
	case keycode.Spacebar:
		return keycode.Unicode(' ')
	case keycode.Delete:
		return keycode.Unicode('\x7f')
	// Numpad
	case keycode.NumpadDivide:
		return keycode.Unicode('/')
	case keycode.NumpadMultiply:
		return keycode.Unicode('*')
	case keycode.NumpadSubtract:
		return keycode.Unicode('-')
	case keycode.Numpad7:
		return m.Numpad('7', keycode.Home)
	case keycode.Numpad8:
		return m.Numpad('8', keycode.ArrowUp)
	case keycode.Numpad9:
		return m.Numpad('9', keycode.PageUp)
	case keycode.NumpadAdd:
		return keycode.Unicode('+')
	case keycode.Numpad4:
		return m.Numpad('4', keycode.ArrowLeft)
	case keycode.Numpad5:
		return keycode.Unicode('5')
	case keycode.Numpad6:
		return m.Numpad('6', keycode.ArrowRight)
	case keycode.Numpad1:
		return m.Numpad('1', keycode.End)
	case keycode.Numpad2:
		return m.Numpad('2', keycode.ArrowDown)
	case keycode.Numpad3:
		return m.Numpad('3', keycode.PageDown)
	case keycode.Numpad0:
		return m.Numpad('0', keycode.Insert)
	case keycode.NumpadPeriod:
		return m.NumpadPair('.', '\x7f')
	case keycode.NumpadEnter:
		return keycode.Unicode('\n')
	default:
		return keycode.RawKey(code)
	}
}
