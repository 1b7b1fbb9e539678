package keycode

// KeyState is the transition a key event describes.
type KeyState uint8

const (
	// Up means the key has just been released.
	Up KeyState = iota
	// Down means the key has just been pressed.
	Down
	// SingleShot is an atomic press-and-release, or a protocol signal with
	// no matching release (self-test-ok, buffer overrun).
	SingleShot
)

func (s KeyState) String() string {
	switch s {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case SingleShot:
		return "SingleShot"
	}
	return "KeyState(?)"
}

// KeyEvent is a single key transition, produced exactly once per physical
// transition.
type KeyEvent struct {
	Code  KeyCode
	State KeyState
}

func (e KeyEvent) String() string {
	return e.Code.String() + " " + e.State.String()
}

// DecodedKind tags the two outcomes a layout lookup can produce.
type DecodedKind uint8

const (
	// KindUnicode means the decoded key carries a Unicode scalar value.
	KindUnicode DecodedKind = iota
	// KindRaw means the key has no textual value and the KeyCode is passed
	// through untouched.
	KindRaw
)

// DecodedKey is the final output of the pipeline: either a character or a
// raw key code passthrough.
type DecodedKey struct {
	Kind DecodedKind
	Rune rune
	Key  KeyCode
}

// Unicode builds a character outcome.
func Unicode(r rune) DecodedKey {
	return DecodedKey{Kind: KindUnicode, Rune: r}
}

// RawKey builds a raw passthrough outcome.
func RawKey(k KeyCode) DecodedKey {
	return DecodedKey{Kind: KindRaw, Key: k}
}

func (d DecodedKey) String() string {
	if d.Kind == KindUnicode {
		return "Unicode(" + string(d.Rune) + ")"
	}
	return "RawKey(" + d.Key.String() + ")"
}

// HandleControl selects what happens when Ctrl is held and a letter key is
// pressed.
type HandleControl uint8

const (
	// MapLettersToUnicode converts Ctrl+A through Ctrl+Z into U+0001
	// through U+001A.
	MapLettersToUnicode HandleControl = iota
	// Ignore passes letters through unchanged even when Ctrl is held.
	Ignore
)

// PhysicalKeyboard is the physical key arrangement a layout is designed for.
type PhysicalKeyboard uint8

const (
	// ISO is the European 105-key arrangement with a tall Enter key.
	ISO PhysicalKeyboard = iota
	// ANSI is the US 104-key arrangement with a wide Enter key.
	ANSI
	// JIS is the Japanese 109-key arrangement.
	JIS
)

func (p PhysicalKeyboard) String() string {
	switch p {
	case ISO:
		return "ISO"
	case ANSI:
		return "ANSI"
	case JIS:
		return "JIS"
	}
	return "PhysicalKeyboard(?)"
}

// Layout maps key codes to output characters for one locale. Implementations
// are stateless lookup tables; all state lives in the Modifiers snapshot
// passed in.
type Layout interface {
	MapKeycode(code KeyCode, mods *Modifiers, ctrl HandleControl) DecodedKey
	Physical() PhysicalKeyboard
}
