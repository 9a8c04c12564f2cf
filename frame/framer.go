// Package frame reconstructs bytes from the 11-bit words clocked out by a
// PS/2 or AT keyboard: one start bit (0), eight data bits LSB first, one odd
// parity bit, one stop bit (1).
//
// Only needed when sampling the keyboard's clock and data lines directly
// (GPIO bit-banging); an i8042-style controller hands you whole bytes and
// the framer can be skipped, or whole 11-bit words and AddWord applies.
package frame

import (
	"errors"
	"math/bits"
)

// Framing faults. All reset the framer to idle so the caller can
// resynchronize on the next word.
var (
	ErrBadStartBit = errors.New("frame: start bit was not 0")
	ErrBadStopBit  = errors.New("frame: stop bit was not 1")
	ErrParity      = errors.New("frame: odd parity check failed")
)

const wordBits = 11

// Framer accumulates bits into protocol words. The zero value is an idle
// framer, ready for a start bit.
type Framer struct {
	register uint16
	numBits  uint8
}

// Clear drops any partially received word and returns the framer to idle.
// Call it after an application-defined inactivity timeout, when the rest of
// the word can no longer be expected to arrive.
func (f *Framer) Clear() {
	f.register = 0
	f.numBits = 0
}

// AddBit shifts one sampled bit into the framer.
//
// It returns ok=false while the word is incomplete. On the 11th bit the word
// is validated and the data byte returned with ok=true. A 1 sampled while
// idle is rejected immediately with ErrBadStartBit and the framer stays
// idle, waiting for a genuine start bit. Parity and stop-bit faults are
// reported once the full word is in; in every error case the framer resets.
func (f *Framer) AddBit(bit bool) (b byte, ok bool, err error) {
	if f.numBits == 0 && bit {
		return 0, false, ErrBadStartBit
	}
	if bit {
		f.register |= 1 << f.numBits
	}
	f.numBits++
	if f.numBits < wordBits {
		return 0, false, nil
	}
	word := f.register
	f.Clear()
	b, err = checkWord(word)
	if err != nil {
		return 0, false, err
	}
	return b, true, nil
}

// AddWord validates an entire 11-bit word packed into the low bits of w,
// bit 0 holding the start bit. Any partially shifted-in bit state is
// unaffected; don't mix AddWord and AddBit on one stream.
func (f *Framer) AddWord(w uint16) (byte, error) {
	return checkWord(w)
}

func checkWord(w uint16) (byte, error) {
	start := w&1 != 0
	data := byte(w >> 1)
	parity := w&(1<<9) != 0
	stop := w&(1<<10) != 0

	if start {
		return 0, ErrBadStartBit
	}
	if !stop {
		return 0, ErrBadStopBit
	}
	// Odd parity: data bits plus the parity bit must have an odd number of
	// ones, so the parity bit is set exactly when the data has even parity.
	if (bits.OnesCount8(data)%2 == 0) != parity {
		return 0, ErrParity
	}
	return data, nil
}
