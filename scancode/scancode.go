// Package scancode turns keyboard wire bytes into symbolic key events.
//
// Two incompatible encodings are supported behind one interface: Set 1, the
// translated codes an i8042 PC keyboard controller produces, and Set 2, the
// raw codes an AT or PS/2 keyboard sends on the wire. Both are prefix codes:
// a reserved extended marker (0xE0, plus 0xE1 for the Pause key) moves the
// following code byte into a secondary code space. Set 2 signals a release
// with a dedicated 0xF0 marker before the code byte; Set 1 sets the high bit
// of the code byte instead.
//
// Two physical keys don't quite fit that model. Print Screen decodes on the
// general path, but the "fake shift" bytes the keyboard wraps around it (and
// around the navigation cluster when Num Lock is on) carry no key and are
// swallowed. Pause/Break is matched as a fixed byte run: a single 6-byte
// (Set 1) or 8-byte (Set 2) burst with no release code at all.
//
// Decoding is stateful but bounded: each Set holds at most the longest fixed
// pattern plus two prefix flags, never allocates, and resets itself fully on
// every error so the caller can keep feeding bytes.
package scancode

import (
	"errors"
	"fmt"

	"github.com/tollan/keywire/keycode"
)

// Reserved marker bytes shared by both encodings.
const (
	extendedPrefix  = 0xE0
	extended2Prefix = 0xE1
	releasePrefix   = 0xF0 // Set 2 only
)

// maxPattern bounds the fixed-pattern buffer; the Set 2 Pause burst is the
// longest sequence either encoding produces.
const maxPattern = 8

// ErrBadSequence reports that bytes committed to the fixed Pause pattern
// stopped matching it. The interpreter has already reset; the next byte is
// interpreted from a clean state.
var ErrBadSequence = errors.New("scancode: fixed byte pattern diverged")

// UnknownCodeError reports a code byte with no key assigned in the active
// code space. The interpreter has already reset.
type UnknownCodeError struct {
	Byte     byte
	Extended bool // byte arrived after the 0xE0 extended prefix
}

func (e UnknownCodeError) Error() string {
	if e.Extended {
		return fmt.Sprintf("scancode: unknown extended code 0x%02X", e.Byte)
	}
	return fmt.Sprintf("scancode: unknown code 0x%02X", e.Byte)
}

// Set is a stateful byte-to-event interpreter for one scancode encoding.
// Implementations are not safe for concurrent use; a pipeline owns exactly
// one.
type Set interface {
	// AdvanceState consumes one byte. It returns (nil, nil) when more bytes
	// are needed, a complete event when one is recognized, and an error
	// (ErrBadSequence or UnknownCodeError) when the byte stream cannot be a
	// valid code. After an error the interpreter is fully reset and the
	// next byte starts fresh.
	AdvanceState(b byte) (*keycode.KeyEvent, error)

	// Reset drops all buffered prefix and pattern state without error. For
	// caller-driven timeouts on half-received sequences.
	Reset()

	// String names the encoding, e.g. for diagnostics.
	String() string
}

// matchPatterns advances a committed fixed-pattern buffer. It reports
// a completed pattern index, a still-possible prefix, or divergence.
type patternMatch int

const (
	matchNone patternMatch = iota
	matchPartial
	matchFull
)

func matchFixed(patterns [][]byte, buf []byte) (patternMatch, int) {
	for i, p := range patterns {
		if len(buf) > len(p) {
			continue
		}
		ok := true
		for j := range buf {
			if p[j] != buf[j] {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		if len(buf) == len(p) {
			return matchFull, i
		}
		return matchPartial, i
	}
	return matchNone, 0
}
