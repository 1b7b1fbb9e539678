// Package ps2 implements the bit-level PS/2 frame decoder. A frame is an
// 11-bit serial word: a zero start bit, eight data bits LSB first, an odd
// parity bit and a one stop bit. The decoder accepts one bit at a time from
// an interrupt handler or polling loop, or a whole pre-packed word, and
// emits the verified data byte.
package ps2

import (
	"errors"
	"math/bits"
)

// Frame validation errors. All of them leave the decoder reset, so the next
// well-formed frame decodes correctly.
var (
	ErrBadStartBit = errors.New("bad start bit")
	ErrBadStopBit  = errors.New("bad stop bit")
	ErrParity      = errors.New("parity error")
)

const frameBits = 11

// Decoder accumulates serial bits into an 11-bit frame. The zero value is
// ready to use.
type Decoder struct {
	register uint16
	numBits  uint8
}

// Clear discards any partially received frame. Call this when a hardware
// timeout indicates the keyboard stopped mid-frame.
func (d *Decoder) Clear() {
	d.register = 0
	d.numBits = 0
}

// AddBit shifts one bit into the register. Before the 11th bit it returns
// ok == false with no error. On the 11th bit the frame is validated and the
// register is reset regardless of the outcome.
func (d *Decoder) AddBit(bit bool) (byte, bool, error) {
	if bit {
		d.register |= 1 << d.numBits
	}
	d.numBits++
	if d.numBits < frameBits {
		return 0, false, nil
	}
	word := d.register
	d.register = 0
	d.numBits = 0
	data, err := checkWord(word)
	if err != nil {
		return 0, false, err
	}
	return data, true, nil
}

// AddWord validates an entire 11-bit word packed into the bottom bits of
// the argument. It does not touch the bit register.
func (d *Decoder) AddWord(word uint16) (byte, error) {
	return checkWord(word)
}

// checkWord verifies start bit, stop bit and odd parity, in that order.
func checkWord(word uint16) (byte, error) {
	startBit := word&(1<<0) != 0
	parityBit := word&(1<<9) != 0
	stopBit := word&(1<<10) != 0
	data := byte(word >> 1)

	if startBit {
		return 0, ErrBadStartBit
	}
	if !stopBit {
		return 0, ErrBadStopBit
	}
	// Odd parity: with an even number of one-bits in the data byte the
	// parity bit must be set so the total is odd.
	needParity := bits.OnesCount8(data)%2 == 0
	if needParity != parityBit {
		return 0, ErrParity
	}
	return data, nil
}
