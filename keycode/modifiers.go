package keycode

// Modifiers is the modifier state owned by an event decoder. It is mutated
// only by modifier-class key events and read by every layout lookup.
type Modifiers struct {
	LShift   bool
	RShift   bool
	LCtrl    bool
	RCtrl    bool
	NumLock  bool
	CapsLock bool
	LAlt     bool
	RAlt     bool
	// RCtrl2 is the hidden control flag used only to recognise the Pause
	// key sequence.
	RCtrl2 bool
}

// DefaultModifiers returns the power-on modifier state. Num Lock starts
// enabled, everything else off.
func DefaultModifiers() Modifiers {
	return Modifiers{NumLock: true}
}

func (m *Modifiers) IsShifted() bool {
	return m.LShift || m.RShift
}

func (m *Modifiers) IsCtrl() bool {
	return m.LCtrl || m.RCtrl
}

func (m *Modifiers) IsAlt() bool {
	return m.LAlt || m.RAlt
}

// IsAltGr reports whether the third-level modifier is active: either the
// right alt key, or Ctrl+LAlt which many layouts treat as AltGr.
func (m *Modifiers) IsAltGr() bool {
	return m.RAlt || (m.LAlt && m.IsCtrl())
}

// IsCaps reports whether letters should be upper case. Shift inverts the
// Caps Lock toggle.
func (m *Modifiers) IsCaps() bool {
	return m.IsShifted() != m.CapsLock
}

const (
	asciiUppercaseStart  = 64
	asciiUpperToLowerGap = 32
)

// AsciiLetter maps a letter key with a standard ASCII 'A'..'Z' keycap.
// Ctrl produces the matching C0 control character when enabled, Caps Lock
// and Shift select the case otherwise. Pass the upper-case letter only.
func (m *Modifiers) AsciiLetter(upper rune, ctrl HandleControl) DecodedKey {
	switch {
	case ctrl == MapLettersToUnicode && m.IsCtrl():
		return Unicode(upper - asciiUppercaseStart)
	case m.IsCaps():
		return Unicode(upper)
	default:
		return Unicode(upper + asciiUpperToLowerGap)
	}
}

// Letter maps a letter key with just two variants, for non-ASCII letters
// such as umlauts. It never produces control codes.
func (m *Modifiers) Letter(lower, upper rune) DecodedKey {
	if m.IsCaps() {
		return Unicode(upper)
	}
	return Unicode(lower)
}

// AsciiLetterAlt is AsciiLetter with a single extra glyph on the AltGr
// level, e.g. E with a Euro sign.
func (m *Modifiers) AsciiLetterAlt(upper, alt rune, ctrl HandleControl) DecodedKey {
	switch {
	case ctrl == MapLettersToUnicode && m.IsCtrl():
		return Unicode(upper - asciiUppercaseStart)
	case m.RAlt:
		return Unicode(alt)
	case m.IsCaps():
		return Unicode(upper)
	default:
		return Unicode(upper + asciiUpperToLowerGap)
	}
}

// AsciiLetterAlt2 is AsciiLetter with cased glyphs on the AltGr level,
// e.g. a key producing e/E normally and é/É with AltGr.
func (m *Modifiers) AsciiLetterAlt2(upper, altLower, altUpper rune, ctrl HandleControl) DecodedKey {
	switch {
	case ctrl == MapLettersToUnicode && m.IsCtrl():
		return Unicode(upper - asciiUppercaseStart)
	case m.RAlt && m.IsCaps():
		return Unicode(altUpper)
	case m.RAlt:
		return Unicode(altLower)
	case m.IsCaps():
		return Unicode(upper)
	default:
		return Unicode(upper + asciiUpperToLowerGap)
	}
}

// Numpad maps a numeric pad key that is a digit with Num Lock on and a raw
// navigation key with Num Lock off.
func (m *Modifiers) Numpad(r rune, key KeyCode) DecodedKey {
	if m.NumLock {
		return Unicode(r)
	}
	return RawKey(key)
}

// NumpadPair maps a numeric pad key that produces one of two characters
// depending on Num Lock. This is usually just Numpad Delete.
func (m *Modifiers) NumpadPair(r, other rune) DecodedKey {
	if m.NumLock {
		return Unicode(r)
	}
	return Unicode(other)
}

// Symbol maps a standard two-glyph shifted key. Caps Lock is ignored here,
// only Shift matters.
func (m *Modifiers) Symbol(plain, shifted rune) DecodedKey {
	if m.IsShifted() {
		return Unicode(shifted)
	}
	return Unicode(plain)
}

// SymbolAlt maps a three-glyph shifted key. AltGr selects the alternate
// glyph regardless of Shift.
func (m *Modifiers) SymbolAlt(plain, shifted, alt rune) DecodedKey {
	if m.IsAltGr() {
		return Unicode(alt)
	}
	if m.IsShifted() {
		return Unicode(shifted)
	}
	return Unicode(plain)
}
