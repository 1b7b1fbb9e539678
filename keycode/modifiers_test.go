package keycode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pckbd/keycode"
)

func TestModifierPredicates(t *testing.T) {
	type testCase struct {
		name  string
		mods  keycode.Modifiers
		check func(*keycode.Modifiers) bool
		want  bool
	}

	cases := []testCase{
		{
			name:  "left shift",
			mods:  keycode.Modifiers{LShift: true},
			check: (*keycode.Modifiers).IsShifted,
			want:  true,
		},
		{
			name:  "right shift",
			mods:  keycode.Modifiers{RShift: true},
			check: (*keycode.Modifiers).IsShifted,
			want:  true,
		},
		{
			name:  "right alt is altgr",
			mods:  keycode.Modifiers{RAlt: true},
			check: (*keycode.Modifiers).IsAltGr,
			want:  true,
		},
		{
			name:  "ctrl plus left alt is altgr",
			mods:  keycode.Modifiers{LCtrl: true, LAlt: true},
			check: (*keycode.Modifiers).IsAltGr,
			want:  true,
		},
		{
			name:  "left alt alone is not altgr",
			mods:  keycode.Modifiers{LAlt: true},
			check: (*keycode.Modifiers).IsAltGr,
			want:  false,
		},
		{
			name:  "caps lock sets caps",
			mods:  keycode.Modifiers{CapsLock: true},
			check: (*keycode.Modifiers).IsCaps,
			want:  true,
		},
		{
			name:  "shift inverts caps lock",
			mods:  keycode.Modifiers{CapsLock: true, LShift: true},
			check: (*keycode.Modifiers).IsCaps,
			want:  false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.check(&tc.mods))
		})
	}
}

func TestAsciiLetter(t *testing.T) {
	type testCase struct {
		name     string
		mods     keycode.Modifiers
		ctrl     keycode.HandleControl
		expected keycode.DecodedKey
	}

	cases := []testCase{
		{
			name:     "plain",
			expected: keycode.Unicode('a'),
		},
		{
			name:     "shifted",
			mods:     keycode.Modifiers{LShift: true},
			expected: keycode.Unicode('A'),
		},
		{
			name:     "caps lock",
			mods:     keycode.Modifiers{CapsLock: true},
			expected: keycode.Unicode('A'),
		},
		{
			name:     "shift cancels caps lock",
			mods:     keycode.Modifiers{CapsLock: true, RShift: true},
			expected: keycode.Unicode('a'),
		},
		{
			name:     "ctrl maps to control code",
			mods:     keycode.Modifiers{LCtrl: true},
			expected: keycode.Unicode('\x01'),
		},
		{
			name:     "ctrl ignored",
			mods:     keycode.Modifiers{LCtrl: true},
			ctrl:     keycode.Ignore,
			expected: keycode.Unicode('a'),
		},
		{
			name:     "ctrl beats shift",
			mods:     keycode.Modifiers{LCtrl: true, LShift: true},
			expected: keycode.Unicode('\x01'),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.mods.AsciiLetter('A', tc.ctrl))
		})
	}
}

func TestAsciiLetterAltVariants(t *testing.T) {
	// The alt glyph binds to the physical right alt key, not the
	// ctrl+alt combination.
	ralt := keycode.Modifiers{RAlt: true}
	assert.Equal(t, keycode.Unicode('@'), ralt.AsciiLetterAlt('Q', '@', keycode.MapLettersToUnicode))

	ctrlAlt := keycode.Modifiers{LCtrl: true, LAlt: true}
	assert.Equal(t, keycode.Unicode('\x11'), ctrlAlt.AsciiLetterAlt('Q', '@', keycode.MapLettersToUnicode))

	raltCaps := keycode.Modifiers{RAlt: true, CapsLock: true}
	assert.Equal(t, keycode.Unicode('É'), raltCaps.AsciiLetterAlt2('E', 'é', 'É', keycode.MapLettersToUnicode))
	assert.Equal(t, keycode.Unicode('é'), ralt.AsciiLetterAlt2('E', 'é', 'É', keycode.MapLettersToUnicode))
}

func TestSymbolHelpers(t *testing.T) {
	plain := keycode.DefaultModifiers()
	shifted := keycode.Modifiers{LShift: true}
	altgr := keycode.Modifiers{RAlt: true}
	both := keycode.Modifiers{LShift: true, RAlt: true}

	assert.Equal(t, keycode.Unicode('1'), plain.Symbol('1', '!'))
	assert.Equal(t, keycode.Unicode('!'), shifted.Symbol('1', '!'))

	// Caps Lock does not shift symbols.
	caps := keycode.Modifiers{CapsLock: true}
	assert.Equal(t, keycode.Unicode('1'), caps.Symbol('1', '!'))

	assert.Equal(t, keycode.Unicode('é'), plain.SymbolAlt('é', '2', '~'))
	assert.Equal(t, keycode.Unicode('2'), shifted.SymbolAlt('é', '2', '~'))
	assert.Equal(t, keycode.Unicode('~'), altgr.SymbolAlt('é', '2', '~'))
	// AltGr wins over Shift.
	assert.Equal(t, keycode.Unicode('~'), both.SymbolAlt('é', '2', '~'))
}

func TestNumpadHelpers(t *testing.T) {
	on := keycode.DefaultModifiers()
	off := keycode.Modifiers{}

	assert.Equal(t, keycode.Unicode('7'), on.Numpad('7', keycode.Home))
	assert.Equal(t, keycode.RawKey(keycode.Home), off.Numpad('7', keycode.Home))

	assert.Equal(t, keycode.Unicode('.'), on.NumpadPair('.', '\x7f'))
	assert.Equal(t, keycode.Unicode('\x7f'), off.NumpadPair('.', '\x7f'))
}

func TestDefaultModifiers(t *testing.T) {
	m := keycode.DefaultModifiers()
	assert.True(t, m.NumLock)
	assert.False(t, m.IsShifted())
	assert.False(t, m.IsCtrl())
	assert.False(t, m.IsAlt())
}
