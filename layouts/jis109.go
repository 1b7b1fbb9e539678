package layouts

import "pckbd/keycode"

// Jis109 is the standard Japanese 106-key (or 109-key including Windows
// keys) keyboard. Has a small space bar to fit in the extra input-method
// keys, which pass through as raw keys.
//
// Reference: https://www.win.tue.nl/~aeb/linux/kbd/scancodes-8.html
type Jis109 struct{}

func (Jis109) Physical() keycode.PhysicalKeyboard {
	return keycode.JIS
}

func (Jis109) MapKeycode(code keycode.KeyCode, m *keycode.Modifiers, ctrl keycode.HandleControl) keycode.DecodedKey {
	switch code {
	case keycode.Oem8:
		// hankaku/zenkaku/kanji
		return keycode.RawKey(keycode.Oem8)
	case keycode.Escape:
		return keycode.Unicode('\x1b')
	case keycode.Key1:
		return m.Symbol('1', '!')
	case keycode.Key2:
		return m.Symbol('2', '"')
	case keycode.Key3:
		return m.Symbol('3', '#')
	case keycode.Key4:
		return m.Symbol('4', '$')
	case keycode.Key5:
		return m.Symbol('5', '%')
	case keycode.Key6:
		return m.Symbol('6', '&')
	case keycode.Key7:
		return m.Symbol('7', '\'')
	case keycode.Key8:
		return m.Symbol('8', '(')
	case keycode.Key9:
		return m.Symbol('9', ')')
	case keycode.Key0:
		return m.Symbol('0', '~')
	case keycode.OemMinus:
		return m.Symbol('-', '=')
	case keycode.OemPlus:
		return m.Symbol('^', '¯')
	case keycode.Oem4:
		return m.Symbol('@', '`')
	case keycode.Oem6:
		return m.Symbol('[', '{')
	case keycode.Oem7:
		return m.Symbol(']', '}')
	case keycode.Oem1:
		return m.Symbol(';', '+')
	case keycode.Oem3:
		return m.Symbol(':', '*')
	case keycode.Oem9:
		// Muhenkan
		return keycode.RawKey(code)
	case keycode.Oem10:
		// Henkan/Zenkouho
		return keycode.RawKey(code)
	case keycode.Oem11:
		// Hiragana/Katakana
		return keycode.RawKey(code)
	case keycode.Oem12:
		return m.Symbol('\\', '_')
	case keycode.Oem13:
		return m.Symbol('¥', '|')
	default:
		return Us104{}.MapKeycode(code, m, ctrl)
	}
}
