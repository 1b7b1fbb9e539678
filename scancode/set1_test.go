package scancode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pckbd/keycode"
	"pckbd/scancode"
)

func TestSet1Sequences(t *testing.T) {
	type testCase struct {
		name     string
		bytes    []byte
		expected []keycode.KeyEvent
	}

	cases := []testCase{
		{
			name:  "letter make and break",
			bytes: []byte{0x1E, 0x9E},
			expected: []keycode.KeyEvent{
				{Code: keycode.A, State: keycode.Down},
				{Code: keycode.A, State: keycode.Up},
			},
		},
		{
			name:  "escape",
			bytes: []byte{0x01, 0x81},
			expected: []keycode.KeyEvent{
				{Code: keycode.Escape, State: keycode.Down},
				{Code: keycode.Escape, State: keycode.Up},
			},
		},
		{
			name:  "extended arrow key",
			bytes: []byte{0xE0, 0x48, 0xE0, 0xC8},
			expected: []keycode.KeyEvent{
				{Code: keycode.ArrowUp, State: keycode.Down},
				{Code: keycode.ArrowUp, State: keycode.Up},
			},
		},
		{
			name:  "extended right control",
			bytes: []byte{0xE0, 0x1D, 0xE0, 0x9D},
			expected: []keycode.KeyEvent{
				{Code: keycode.RControl, State: keycode.Down},
				{Code: keycode.RControl, State: keycode.Up},
			},
		},
		{
			name:  "pause prefix half",
			bytes: []byte{0xE1, 0x1D, 0x45, 0xE1, 0x9D, 0xC5},
			expected: []keycode.KeyEvent{
				{Code: keycode.RControl2, State: keycode.Down},
				{Code: keycode.NumpadLock, State: keycode.Down},
				{Code: keycode.RControl2, State: keycode.Up},
				{Code: keycode.NumpadLock, State: keycode.Up},
			},
		},
		{
			name:  "sysrq",
			bytes: []byte{0x54},
			expected: []keycode.KeyEvent{
				{Code: keycode.SysRq, State: keycode.Down},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set := scancode.NewSet1()
			var events []keycode.KeyEvent
			for _, b := range tc.bytes {
				ev, ok, err := set.Advance(b)
				assert.NoError(t, err)
				if ok {
					events = append(events, ev)
				}
			}
			assert.Equal(t, tc.expected, events)
		})
	}
}

func TestSet1UnknownCode(t *testing.T) {
	set := scancode.NewSet1()
	_, ok, err := set.Advance(0x55)
	assert.ErrorIs(t, err, scancode.ErrUnknownKeyCode)
	assert.False(t, ok)

	// The decoder recovers on the next byte.
	ev, ok, err := set.Advance(0x1E)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, keycode.KeyEvent{Code: keycode.A, State: keycode.Down}, ev)
}

func TestSet1ResetDropsPrefix(t *testing.T) {
	set := scancode.NewSet1()
	_, ok, err := set.Advance(0xE0)
	assert.NoError(t, err)
	assert.False(t, ok)

	set.Reset()

	// 0x48 is Numpad8 in the base table but ArrowUp after 0xE0.
	ev, ok, err := set.Advance(0x48)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, keycode.KeyEvent{Code: keycode.Numpad8, State: keycode.Down}, ev)
}

func TestSet1BaseTableCoverage(t *testing.T) {
	var mapped, unknown int
	for code := 0; code < 0x80; code++ {
		set := scancode.NewSet1()
		ev, ok, err := set.Advance(byte(code))
		switch {
		case err != nil:
			unknown++
		case ok:
			mapped++
			assert.Equal(t, keycode.Down, ev.State)

			// The matching break code yields Up for the same key.
			brk := scancode.NewSet1()
			brkEv, brkOk, brkErr := brk.Advance(byte(code) | 0x80)
			assert.NoError(t, brkErr)
			assert.True(t, brkOk)
			assert.Equal(t, keycode.KeyEvent{Code: ev.Code, State: keycode.Up}, brkEv)
		}
	}
	assert.Equal(t, 87, mapped)
	assert.Equal(t, 41, unknown)
}
