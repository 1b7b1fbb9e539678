package layouts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pckbd/keycode"
	"pckbd/layouts"
)

func TestByName(t *testing.T) {
	for _, name := range layouts.Names() {
		layout, err := layouts.ByName(name)
		assert.NoError(t, err)
		assert.NotNil(t, layout)
	}

	_, err := layouts.ByName("qwertz42")
	assert.Error(t, err)
}

func TestNames(t *testing.T) {
	names := layouts.Names()
	assert.Len(t, names, 11)
	assert.Contains(t, names, "us104")
	assert.Contains(t, names, "colemak")
}

type mapCase struct {
	name     string
	code     keycode.KeyCode
	mods     keycode.Modifiers
	expected keycode.DecodedKey
}

func runMapCases(t *testing.T, layout keycode.Layout, cases []mapCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := layout.MapKeycode(tc.code, &tc.mods, keycode.MapLettersToUnicode)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestUs104(t *testing.T) {
	shift := keycode.Modifiers{LShift: true}
	numOn := keycode.DefaultModifiers()

	runMapCases(t, layouts.Us104{}, []mapCase{
		{"letter", keycode.A, keycode.Modifiers{}, keycode.Unicode('a')},
		{"letter shifted", keycode.A, shift, keycode.Unicode('A')},
		{"digit", keycode.Key1, keycode.Modifiers{}, keycode.Unicode('1')},
		{"digit shifted", keycode.Key1, shift, keycode.Unicode('!')},
		{"backtick", keycode.Oem8, keycode.Modifiers{}, keycode.Unicode('`')},
		{"backslash", keycode.Oem7, keycode.Modifiers{}, keycode.Unicode('\\')},
		{"pipe", keycode.Oem7, shift, keycode.Unicode('|')},
		{"enter", keycode.Return, keycode.Modifiers{}, keycode.Unicode('\n')},
		{"space", keycode.Spacebar, keycode.Modifiers{}, keycode.Unicode(' ')},
		{"escape", keycode.Escape, keycode.Modifiers{}, keycode.Unicode('\x1b')},
		{"numpad digit", keycode.Numpad7, numOn, keycode.Unicode('7')},
		{"numpad nav", keycode.Numpad7, keycode.Modifiers{}, keycode.RawKey(keycode.Home)},
		{"numpad five held", keycode.Numpad5, keycode.Modifiers{}, keycode.Unicode('5')},
		{"numpad period", keycode.NumpadPeriod, numOn, keycode.Unicode('.')},
		{"numpad delete", keycode.NumpadPeriod, keycode.Modifiers{}, keycode.Unicode('\x7f')},
		{"function key raw", keycode.F5, keycode.Modifiers{}, keycode.RawKey(keycode.F5)},
		{"iso key raw on ansi", keycode.Oem5, keycode.Modifiers{}, keycode.RawKey(keycode.Oem5)},
	})

	assert.Equal(t, keycode.ANSI, layouts.Us104{}.Physical())
}

func TestUk105(t *testing.T) {
	shift := keycode.Modifiers{RShift: true}
	altgr := keycode.Modifiers{RAlt: true}

	runMapCases(t, layouts.Uk105{}, []mapCase{
		{"hash", keycode.Oem7, keycode.Modifiers{}, keycode.Unicode('#')},
		{"tilde", keycode.Oem7, shift, keycode.Unicode('~')},
		{"iso backslash", keycode.Oem5, keycode.Modifiers{}, keycode.Unicode('\\')},
		{"iso pipe", keycode.Oem5, shift, keycode.Unicode('|')},
		{"pound", keycode.Key3, shift, keycode.Unicode('£')},
		{"quote on two", keycode.Key2, shift, keycode.Unicode('"')},
		{"at on quote key", keycode.Oem3, shift, keycode.Unicode('@')},
		{"euro", keycode.Key4, altgr, keycode.Unicode('€')},
		{"backtick pipe", keycode.Oem8, altgr, keycode.Unicode('|')},
		{"negation", keycode.Oem8, shift, keycode.Unicode('¬')},
		{"fallthrough letter", keycode.A, keycode.Modifiers{}, keycode.Unicode('a')},
	})

	assert.Equal(t, keycode.ISO, layouts.Uk105{}.Physical())
}

func TestAzerty(t *testing.T) {
	shift := keycode.Modifiers{LShift: true}
	altgr := keycode.Modifiers{RAlt: true}

	runMapCases(t, layouts.Azerty{}, []mapCase{
		{"q is a", keycode.Q, keycode.Modifiers{}, keycode.Unicode('a')},
		{"a is q", keycode.A, keycode.Modifiers{}, keycode.Unicode('q')},
		{"w is z", keycode.W, keycode.Modifiers{}, keycode.Unicode('z')},
		{"z is w", keycode.Z, keycode.Modifiers{}, keycode.Unicode('w')},
		{"semicolon is m", keycode.Oem1, keycode.Modifiers{}, keycode.Unicode('m')},
		{"m is comma", keycode.M, keycode.Modifiers{}, keycode.Unicode(',')},
		{"m shifted", keycode.M, shift, keycode.Unicode('?')},
		{"one plain", keycode.Key1, keycode.Modifiers{}, keycode.Unicode('&')},
		{"one shifted", keycode.Key1, shift, keycode.Unicode('1')},
		{"two altgr", keycode.Key2, altgr, keycode.Unicode('~')},
		{"e acute", keycode.Key2, keycode.Modifiers{}, keycode.Unicode('é')},
		{"zero altgr", keycode.Key0, altgr, keycode.Unicode('@')},
	})

	assert.Equal(t, keycode.ISO, layouts.Azerty{}.Physical())
}

func TestDe105(t *testing.T) {
	shift := keycode.Modifiers{LShift: true}
	altgr := keycode.Modifiers{RAlt: true}

	runMapCases(t, layouts.De105{}, []mapCase{
		{"y is z", keycode.Y, keycode.Modifiers{}, keycode.Unicode('z')},
		{"z is y", keycode.Z, keycode.Modifiers{}, keycode.Unicode('y')},
		{"eszett", keycode.OemMinus, keycode.Modifiers{}, keycode.Unicode('ß')},
		{"question", keycode.OemMinus, shift, keycode.Unicode('?')},
		{"backslash", keycode.OemMinus, altgr, keycode.Unicode('\\')},
		{"umlaut u", keycode.Oem4, keycode.Modifiers{}, keycode.Unicode('ü')},
		{"umlaut u caps", keycode.Oem4, keycode.Modifiers{CapsLock: true}, keycode.Unicode('Ü')},
		{"at", keycode.Q, altgr, keycode.Unicode('@')},
		{"euro", keycode.E, altgr, keycode.Unicode('€')},
		{"micro", keycode.M, altgr, keycode.Unicode('µ')},
		{"iso angle", keycode.Oem5, keycode.Modifiers{}, keycode.Unicode('<')},
	})

	assert.Equal(t, keycode.ISO, layouts.De105{}.Physical())
}

func TestColemak(t *testing.T) {
	runMapCases(t, layouts.Colemak{}, []mapCase{
		{"s is r", keycode.S, keycode.Modifiers{}, keycode.Unicode('r')},
		{"t is g", keycode.T, keycode.Modifiers{}, keycode.Unicode('g')},
		{"p is semicolon", keycode.P, keycode.Modifiers{}, keycode.Unicode(';')},
		{"semicolon is o", keycode.Oem1, keycode.Modifiers{}, keycode.Unicode('o')},
		{"n is k", keycode.N, keycode.Modifiers{}, keycode.Unicode('k')},
		{"a unchanged", keycode.A, keycode.Modifiers{}, keycode.Unicode('a')},
		{"digits unchanged", keycode.Key4, keycode.Modifiers{}, keycode.Unicode('4')},
	})
}

func TestDvorak104(t *testing.T) {
	runMapCases(t, layouts.Dvorak104{}, []mapCase{
		{"q is quote", keycode.Q, keycode.Modifiers{}, keycode.Unicode('\'')},
		{"s is o", keycode.S, keycode.Modifiers{}, keycode.Unicode('o')},
		{"z is semicolon", keycode.Z, keycode.Modifiers{}, keycode.Unicode(';')},
		{"minus is bracket", keycode.OemMinus, keycode.Modifiers{}, keycode.Unicode('[')},
		{"a unchanged", keycode.A, keycode.Modifiers{}, keycode.Unicode('a')},
	})
}

func TestJis109(t *testing.T) {
	shift := keycode.Modifiers{LShift: true}

	runMapCases(t, layouts.Jis109{}, []mapCase{
		{"yen", keycode.Oem13, keycode.Modifiers{}, keycode.Unicode('¥')},
		{"underscore key", keycode.Oem12, shift, keycode.Unicode('_')},
		{"shifted two", keycode.Key2, shift, keycode.Unicode('"')},
		{"shifted zero", keycode.Key0, shift, keycode.Unicode('~')},
		{"kana raw", keycode.Oem11, keycode.Modifiers{}, keycode.RawKey(keycode.Oem11)},
	})

	assert.Equal(t, keycode.JIS, layouts.Jis109{}.Physical())
}

func TestAnyLayoutSwap(t *testing.T) {
	al := layouts.NewAnyLayout(nil)
	mods := keycode.Modifiers{}

	got := al.MapKeycode(keycode.Q, &mods, keycode.MapLettersToUnicode)
	assert.Equal(t, keycode.Unicode('q'), got)
	assert.Equal(t, keycode.ANSI, al.Physical())

	al.Set(layouts.Azerty{})
	got = al.MapKeycode(keycode.Q, &mods, keycode.MapLettersToUnicode)
	assert.Equal(t, keycode.Unicode('a'), got)
	assert.Equal(t, keycode.ISO, al.Physical())
}
