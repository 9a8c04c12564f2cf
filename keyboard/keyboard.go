// Package keyboard wires the full decode pipeline together: bit framing,
// scan code interpretation, modifier tracking and glyph lookup behind one
// handle.
//
// A Keyboard is fed at whichever level the caller has data for. Interrupt
// handlers clocking the wire push bits with AddBit, i8042 style controllers
// that deliver whole bytes use AddByte, and captured 11-bit words go in via
// AddWord. All three converge on the same scan code state machine, so a
// session can only use one of them at a time.
package keyboard

import (
	"github.com/tollan/keywire/decode"
	"github.com/tollan/keywire/frame"
	"github.com/tollan/keywire/keycode"
	"github.com/tollan/keywire/scancode"
)

// Stage identifies the pipeline stage an error came from.
type Stage uint8

const (
	// StageFraming covers serial word errors: start bit, stop bit,
	// parity.
	StageFraming Stage = iota
	// StageScancode covers byte sequence errors: unknown codes and
	// broken fixed sequences.
	StageScancode
)

func (s Stage) String() string {
	switch s {
	case StageFraming:
		return "framing"
	case StageScancode:
		return "scancode"
	default:
		return "unknown"
	}
}

// DecodeError wraps a stage error so callers can tell where in the pipeline
// input was rejected. The failing stage has already reset itself; the other
// stages and the modifier state are untouched.
type DecodeError struct {
	Stage Stage
	Err   error
}

func (e *DecodeError) Error() string {
	return e.Stage.String() + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Keyboard is the pipeline orchestrator. The zero value is not usable;
// construct one with New.
type Keyboard struct {
	framer  frame.Framer
	set     scancode.Set
	mods    keycode.Modifiers
	decoder *decode.EventDecoder
}

// New builds a pipeline over the given scan code set and layout. Num Lock
// starts engaged, matching how PC firmware leaves the keyboard at boot.
func New(set scancode.Set, l decode.Layout, cfg decode.Config) *Keyboard {
	return &Keyboard{
		set:     set,
		mods:    keycode.Default(),
		decoder: decode.New(l, cfg),
	}
}

// AddBit clocks one serial bit into the framer. Most calls return (nil,
// nil); a key event appears only when a full word closes a scan code
// sequence.
func (k *Keyboard) AddBit(bit bool) (*keycode.KeyEvent, error) {
	b, ok, err := k.framer.AddBit(bit)
	if err != nil {
		return nil, &DecodeError{Stage: StageFraming, Err: err}
	}
	if !ok {
		return nil, nil
	}
	return k.AddByte(b)
}

// AddWord validates a captured 11-bit word and feeds its payload byte to
// the scan code state machine.
func (k *Keyboard) AddWord(w uint16) (*keycode.KeyEvent, error) {
	b, err := k.framer.AddWord(w)
	if err != nil {
		return nil, &DecodeError{Stage: StageFraming, Err: err}
	}
	return k.AddByte(b)
}

// AddByte feeds one scan code byte to the state machine. It returns a key
// event when the byte completes a sequence, (nil, nil) while a sequence is
// still open, and a DecodeError when the byte cannot belong to any
// sequence.
func (k *Keyboard) AddByte(b byte) (*keycode.KeyEvent, error) {
	ev, err := k.set.AdvanceState(b)
	if err != nil {
		return nil, &DecodeError{Stage: StageScancode, Err: err}
	}
	return ev, nil
}

// ProcessEvent folds a key event into the modifier state and resolves it
// to output. It returns nil for events that produce none (releases, bare
// modifier presses with raw keys disabled).
func (k *Keyboard) ProcessEvent(ev keycode.KeyEvent) *keycode.DecodedKey {
	k.mods.Apply(ev)
	return k.decoder.Decode(ev, &k.mods)
}

// Decode is AddByte followed by ProcessEvent, for callers that only want
// text out.
func (k *Keyboard) Decode(b byte) (*keycode.DecodedKey, error) {
	ev, err := k.AddByte(b)
	if err != nil || ev == nil {
		return nil, err
	}
	return k.ProcessEvent(*ev), nil
}

// DecodeBit is AddBit followed by ProcessEvent, the bit-level counterpart
// of Decode.
func (k *Keyboard) DecodeBit(bit bool) (*keycode.DecodedKey, error) {
	ev, err := k.AddBit(bit)
	if err != nil || ev == nil {
		return nil, err
	}
	return k.ProcessEvent(*ev), nil
}

// Clear resets the framer and the scan code state machine, dropping any
// partial word or sequence. Modifier and lock state survive; a glitch on
// the wire does not un-press Shift.
func (k *Keyboard) Clear() {
	k.framer.Clear()
	k.set.Reset()
}

// Modifiers returns a copy of the current modifier and lock state.
func (k *Keyboard) Modifiers() keycode.Modifiers {
	return k.mods
}
