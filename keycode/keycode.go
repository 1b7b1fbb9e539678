// Package keycode defines the locale-independent key model shared by the
// scancode state machines, the event decoder and the locale layouts: the
// KeyCode enumeration of physical keys, key transition events, decoded
// output values and the modifier state tracked while decoding.
package keycode

import "fmt"

// KeyCode identifies a physical key position, independent of the active
// layout. The same code always means the same key cap location.
type KeyCode uint8

const (
	// Row 1 (the F-keys)
	Escape KeyCode = iota
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	PrintScreen
	// SysRq is what you get from Alt + PrintScreen.
	SysRq
	ScrollLock
	// PauseBreak has no scancode of its own; it is synthesised from the
	// hidden RControl2 + NumpadLock sequence.
	PauseBreak

	// Row 2 (the numbers)
	Oem8
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	OemMinus
	OemPlus
	Backspace

	Insert
	Home
	PageUp

	NumpadLock
	NumpadDivide
	NumpadMultiply
	NumpadSubtract

	// Row 3 (QWERTY)
	Tab
	Q
	W
	E
	R
	T
	Y
	U
	I
	O
	P
	Oem4
	Oem6
	Oem5
	Oem7

	Delete
	End
	PageDown

	Numpad7
	Numpad8
	Numpad9
	NumpadAdd

	// Row 4 (ASDF)
	CapsLock
	A
	S
	D
	F
	G
	H
	J
	K
	L
	Oem1
	Oem3
	Return

	Numpad4
	Numpad5
	Numpad6

	// Row 5 (ZXCV)
	LShift
	Z
	X
	C
	V
	B
	N
	M
	OemComma
	OemPeriod
	Oem2
	RShift

	ArrowUp

	Numpad1
	Numpad2
	Numpad3
	NumpadEnter

	// Row 6 (modifiers and space)
	LControl
	LWin
	LAlt
	Spacebar
	RAltGr
	RWin
	Apps
	RControl

	ArrowLeft
	ArrowDown
	ArrowRight

	Numpad0
	NumpadPeriod

	// JIS keys
	Oem9
	Oem10
	Oem11
	Oem12
	Oem13

	// Multimedia and protocol extras
	PrevTrack
	NextTrack
	Mute
	Calculator
	Play
	Stop
	VolumeDown
	VolumeUp
	WWWHome

	// PowerOnTestOk is the 0xAA self-test-passed protocol signal.
	PowerOnTestOk
	// TooManyKeys is the 0x00 buffer-overrun protocol signal.
	TooManyKeys
	// RControl2 is the hidden right control sent as the first half of the
	// Pause key sequence.
	RControl2
	// RAlt2 is the hidden right alt sent as part of the Print Screen
	// sequence.
	RAlt2

	numKeyCodes
)

var keyNames = [numKeyCodes]string{
	Escape: "Escape", F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5",
	F6: "F6", F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",
	PrintScreen: "PrintScreen", SysRq: "SysRq", ScrollLock: "ScrollLock",
	PauseBreak: "PauseBreak",
	Oem8:       "Oem8", Key1: "Key1", Key2: "Key2", Key3: "Key3", Key4: "Key4",
	Key5: "Key5", Key6: "Key6", Key7: "Key7", Key8: "Key8", Key9: "Key9",
	Key0: "Key0", OemMinus: "OemMinus", OemPlus: "OemPlus",
	Backspace: "Backspace", Insert: "Insert", Home: "Home", PageUp: "PageUp",
	NumpadLock: "NumpadLock", NumpadDivide: "NumpadDivide",
	NumpadMultiply: "NumpadMultiply", NumpadSubtract: "NumpadSubtract",
	Tab: "Tab", Q: "Q", W: "W", E: "E", R: "R", T: "T", Y: "Y", U: "U",
	I: "I", O: "O", P: "P", Oem4: "Oem4", Oem6: "Oem6", Oem5: "Oem5",
	Oem7: "Oem7", Delete: "Delete", End: "End", PageDown: "PageDown",
	Numpad7: "Numpad7", Numpad8: "Numpad8", Numpad9: "Numpad9",
	NumpadAdd: "NumpadAdd", CapsLock: "CapsLock",
	A: "A", S: "S", D: "D", F: "F", G: "G", H: "H", J: "J", K: "K", L: "L",
	Oem1: "Oem1", Oem3: "Oem3", Return: "Return",
	Numpad4: "Numpad4", Numpad5: "Numpad5", Numpad6: "Numpad6",
	LShift: "LShift", Z: "Z", X: "X", C: "C", V: "V", B: "B", N: "N", M: "M",
	OemComma: "OemComma", OemPeriod: "OemPeriod", Oem2: "Oem2",
	RShift: "RShift", ArrowUp: "ArrowUp",
	Numpad1: "Numpad1", Numpad2: "Numpad2", Numpad3: "Numpad3",
	NumpadEnter: "NumpadEnter", LControl: "LControl", LWin: "LWin",
	LAlt: "LAlt", Spacebar: "Spacebar", RAltGr: "RAltGr", RWin: "RWin",
	Apps: "Apps", RControl: "RControl", ArrowLeft: "ArrowLeft",
	ArrowDown: "ArrowDown", ArrowRight: "ArrowRight",
	Numpad0: "Numpad0", NumpadPeriod: "NumpadPeriod",
	Oem9: "Oem9", Oem10: "Oem10", Oem11: "Oem11", Oem12: "Oem12",
	Oem13: "Oem13", PrevTrack: "PrevTrack", NextTrack: "NextTrack",
	Mute: "Mute", Calculator: "Calculator", Play: "Play", Stop: "Stop",
	VolumeDown: "VolumeDown", VolumeUp: "VolumeUp", WWWHome: "WWWHome",
	PowerOnTestOk: "PowerOnTestOk", TooManyKeys: "TooManyKeys",
	RControl2: "RControl2", RAlt2: "RAlt2",
}

func (k KeyCode) String() string {
	if k < numKeyCodes && keyNames[k] != "" {
		return keyNames[k]
	}
	return fmt.Sprintf("KeyCode(%d)", uint8(k))
}
