// Package decode turns key events into text.
//
// An EventDecoder owns a layout and a small policy configuration. It is the
// last stage of the pipeline: key events go in, decoded glyphs (or raw key
// identities) come out. The decoder never mutates modifier state; that is
// the caller's job, done before the event reaches Decode.
package decode

import "github.com/tollan/keywire/keycode"

// ControlPolicy selects what happens to printable keys while a Control key
// is held.
type ControlPolicy uint8

const (
	// ControlIgnore leaves the glyph untouched. Ctrl+C decodes as 'c'.
	ControlIgnore ControlPolicy = iota

	// ControlMapLetters turns Ctrl plus a letter into the matching C0
	// control code. Ctrl+C decodes as 0x03 (ETX). Non-letter keys are
	// left untouched.
	ControlMapLetters

	// ControlMapLettersMask is ControlMapLetters plus the classic
	// terminal masking of the remaining ASCII range: any glyph from '@'
	// through DEL is ANDed with 0x1F, so Ctrl+[ yields ESC and Ctrl+@
	// yields NUL.
	ControlMapLettersMask
)

func (p ControlPolicy) String() string {
	switch p {
	case ControlIgnore:
		return "ignore"
	case ControlMapLetters:
		return "map-letters"
	case ControlMapLettersMask:
		return "map-letters-mask"
	default:
		return "unknown"
	}
}

// Config tunes how events become output.
type Config struct {
	// Control is the Ctrl-key policy.
	Control ControlPolicy

	// RawKeys emits keys the layout has no glyph for (arrows, function
	// keys, bare modifiers) as raw key identities instead of dropping
	// them.
	RawKeys bool

	// KeyUps emits a raw key identity for release events too. Off, only
	// presses and repeats produce output.
	KeyUps bool
}

// DefaultConfig returns the configuration most callers want: Ctrl+letter
// mapped to control codes and unmapped keys passed through raw.
func DefaultConfig() Config {
	return Config{Control: ControlMapLetters, RawKeys: true}
}

// EventDecoder resolves key events against a layout.
type EventDecoder struct {
	layout Layout
	cfg    Config
}

// Layout is the lookup surface the decoder needs. The layout package
// provides implementations.
type Layout interface {
	Lookup(code keycode.KeyCode, m *keycode.Modifiers) (keycode.DecodedKey, bool)
}

// New builds a decoder over the given layout.
func New(l Layout, cfg Config) *EventDecoder {
	return &EventDecoder{layout: l, cfg: cfg}
}

// Decode resolves one event against the current modifiers. It returns nil
// when the event produces no output under the configured policies.
func (d *EventDecoder) Decode(ev keycode.KeyEvent, m *keycode.Modifiers) *keycode.DecodedKey {
	if ev.State == keycode.StateUp {
		if d.cfg.KeyUps {
			k := keycode.Raw(ev.Code)
			return &k
		}
		return nil
	}

	// Dual-purpose numeric pad keys see an adjusted modifier view: held
	// Shift temporarily inverts the Num Lock latch and is hidden from the
	// layout, so Shift+Numpad8 navigates even with Num Lock on.
	view := m
	if ev.Code.IsNumpadDual() {
		adj := *m
		adj.NumLock = m.NumLock != m.Shifted()
		adj.LShift = false
		adj.RShift = false
		view = &adj
	}

	k, ok := d.layout.Lookup(ev.Code, view)
	if !ok {
		if d.cfg.RawKeys {
			k = keycode.Raw(ev.Code)
			return &k
		}
		return nil
	}

	if k.Kind == keycode.KindUnicode && m.Ctrl() && d.cfg.Control != ControlIgnore {
		k.Rune = applyControl(k.Rune, d.cfg.Control)
	}
	return &k
}

// applyControl folds a glyph typed with Control held into the C0 range.
func applyControl(r rune, p ControlPolicy) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return r - 'a' + 1
	case r >= 'A' && r <= 'Z':
		return r - 'A' + 1
	case p == ControlMapLettersMask && r >= '@' && r < 0x80:
		return r & 0x1f
	default:
		return r
	}
}
