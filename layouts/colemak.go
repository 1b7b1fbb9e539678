package layouts

import "pckbd/keycode"

// Colemak is the Colemak layout on an ANSI board. Only the letter block
// moves; symbols and the number row stay where QWERTY put them.
type Colemak struct{}

func (Colemak) Physical() keycode.PhysicalKeyboard {
	return keycode.ANSI
}

func (Colemak) MapKeycode(code keycode.KeyCode, m *keycode.Modifiers, ctrl keycode.HandleControl) keycode.DecodedKey {
	switch code {
	case keycode.E:
		return m.AsciiLetter('F', ctrl)
	case keycode.R:
		return m.AsciiLetter('P', ctrl)
	case keycode.T:
		return m.AsciiLetter('G', ctrl)
	case keycode.Y:
		return m.AsciiLetter('J', ctrl)
	case keycode.U:
		return m.AsciiLetter('L', ctrl)
	case keycode.I:
		return m.AsciiLetter('U', ctrl)
	case keycode.O:
		return m.AsciiLetter('Y', ctrl)
	case keycode.P:
		return m.Symbol(';', ':')
	case keycode.S:
		return m.AsciiLetter('R', ctrl)
	case keycode.D:
		return m.AsciiLetter('S', ctrl)
	case keycode.F:
		return m.AsciiLetter('T', ctrl)
	case keycode.G:
		return m.AsciiLetter('D', ctrl)
	case keycode.J:
		return m.AsciiLetter('N', ctrl)
	case keycode.K:
		return m.AsciiLetter('E', ctrl)
	case keycode.L:
		return m.AsciiLetter('I', ctrl)
	case keycode.Oem1:
		return m.AsciiLetter('O', ctrl)
	case keycode.N:
		return m.AsciiLetter('K', ctrl)
	default:
		return Us104{}.MapKeycode(code, m, ctrl)
	}
}
