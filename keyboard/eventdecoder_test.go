package keyboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pckbd/keyboard"
	"pckbd/keycode"
	"pckbd/layouts"
)

func down(code keycode.KeyCode) keycode.KeyEvent {
	return keycode.KeyEvent{Code: code, State: keycode.Down}
}

func up(code keycode.KeyCode) keycode.KeyEvent {
	return keycode.KeyEvent{Code: code, State: keycode.Up}
}

func TestShiftAndCapsLock(t *testing.T) {
	d := keyboard.NewEventDecoder(layouts.Us104{}, keycode.MapLettersToUnicode)

	decoded, ok := d.ProcessKeyevent(down(keycode.A))
	assert.True(t, ok)
	assert.Equal(t, keycode.Unicode('a'), decoded)

	// Holding shift reports the raw key and flips the flag.
	decoded, ok = d.ProcessKeyevent(down(keycode.LShift))
	assert.True(t, ok)
	assert.Equal(t, keycode.RawKey(keycode.LShift), decoded)
	assert.True(t, d.Modifiers().LShift)

	decoded, ok = d.ProcessKeyevent(down(keycode.A))
	assert.True(t, ok)
	assert.Equal(t, keycode.Unicode('A'), decoded)

	// Release produces nothing but clears the flag.
	_, ok = d.ProcessKeyevent(up(keycode.LShift))
	assert.False(t, ok)
	assert.False(t, d.Modifiers().LShift)

	// Caps Lock toggles on Down and ignores Up.
	decoded, ok = d.ProcessKeyevent(down(keycode.CapsLock))
	assert.True(t, ok)
	assert.Equal(t, keycode.RawKey(keycode.CapsLock), decoded)
	_, ok = d.ProcessKeyevent(up(keycode.CapsLock))
	assert.False(t, ok)
	assert.True(t, d.Modifiers().CapsLock)

	decoded, ok = d.ProcessKeyevent(down(keycode.A))
	assert.True(t, ok)
	assert.Equal(t, keycode.Unicode('A'), decoded)
}

func TestCtrlHandling(t *testing.T) {
	d := keyboard.NewEventDecoder(layouts.Us104{}, keycode.MapLettersToUnicode)

	_, _ = d.ProcessKeyevent(down(keycode.LControl))
	decoded, ok := d.ProcessKeyevent(down(keycode.C))
	assert.True(t, ok)
	assert.Equal(t, keycode.Unicode('\x03'), decoded)

	d.SetCtrlHandling(keycode.Ignore)
	decoded, ok = d.ProcessKeyevent(down(keycode.C))
	assert.True(t, ok)
	assert.Equal(t, keycode.Unicode('c'), decoded)
}

func TestNumLockToggle(t *testing.T) {
	d := keyboard.NewEventDecoder(layouts.Us104{}, keycode.MapLettersToUnicode)
	assert.True(t, d.Modifiers().NumLock)

	decoded, ok := d.ProcessKeyevent(down(keycode.NumpadLock))
	assert.True(t, ok)
	assert.Equal(t, keycode.RawKey(keycode.NumpadLock), decoded)
	assert.False(t, d.Modifiers().NumLock)

	_, ok = d.ProcessKeyevent(up(keycode.NumpadLock))
	assert.False(t, ok)
	assert.False(t, d.Modifiers().NumLock)
}

func TestPauseSequence(t *testing.T) {
	d := keyboard.NewEventDecoder(layouts.Us104{}, keycode.MapLettersToUnicode)

	decoded, ok := d.ProcessKeyevent(down(keycode.RControl2))
	assert.True(t, ok)
	assert.Equal(t, keycode.RawKey(keycode.RControl2), decoded)

	// With the hidden control held, Num Lock means Pause and the toggle
	// is left alone.
	decoded, ok = d.ProcessKeyevent(down(keycode.NumpadLock))
	assert.True(t, ok)
	assert.Equal(t, keycode.RawKey(keycode.PauseBreak), decoded)
	assert.True(t, d.Modifiers().NumLock)

	_, ok = d.ProcessKeyevent(up(keycode.RControl2))
	assert.False(t, ok)
	_, ok = d.ProcessKeyevent(up(keycode.NumpadLock))
	assert.False(t, ok)
	assert.False(t, d.Modifiers().RCtrl2)
	assert.True(t, d.Modifiers().NumLock)

	// With the hidden control released, Num Lock toggles normally again.
	decoded, ok = d.ProcessKeyevent(down(keycode.NumpadLock))
	assert.True(t, ok)
	assert.Equal(t, keycode.RawKey(keycode.NumpadLock), decoded)
	assert.False(t, d.Modifiers().NumLock)
}

func TestUpProducesNothing(t *testing.T) {
	d := keyboard.NewEventDecoder(layouts.Us104{}, keycode.MapLettersToUnicode)

	_, ok := d.ProcessKeyevent(up(keycode.A))
	assert.False(t, ok)
	_, ok = d.ProcessKeyevent(up(keycode.Spacebar))
	assert.False(t, ok)
}

func TestClearRestoresDefaults(t *testing.T) {
	d := keyboard.NewEventDecoder(layouts.Us104{}, keycode.MapLettersToUnicode)

	_, _ = d.ProcessKeyevent(down(keycode.LShift))
	_, _ = d.ProcessKeyevent(down(keycode.NumpadLock))
	d.Clear()

	m := d.Modifiers()
	assert.False(t, m.LShift)
	assert.True(t, m.NumLock)
}

func TestChangeLayout(t *testing.T) {
	d := keyboard.NewEventDecoder(layouts.Us104{}, keycode.MapLettersToUnicode)

	decoded, _ := d.ProcessKeyevent(down(keycode.Q))
	assert.Equal(t, keycode.Unicode('q'), decoded)

	d.ChangeLayout(layouts.Azerty{})
	decoded, _ = d.ProcessKeyevent(down(keycode.Q))
	assert.Equal(t, keycode.Unicode('a'), decoded)
}
