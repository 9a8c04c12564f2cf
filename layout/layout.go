// Package layout maps symbolic key codes to glyphs.
//
// A Layout is pure data behind a lookup function: given a key and the
// current modifiers it either produces a DecodedKey or reports that the key
// has no textual meaning (arrow keys, bare modifiers, function keys). One
// implementation exists per national layout; the pipeline selects one at
// construction time and never switches mid-session.
//
// Letter keys are resolved against the effective case condition (Shift XOR
// Caps Lock); symbol and digit keys consult Shift alone, so Caps Lock never
// changes what the number row types. Control-key combinations are not a
// layout concern; the decode package handles those on the produced rune.
package layout

import "github.com/tollan/keywire/keycode"

// Physical describes the key arrangement a layout is designed for.
type Physical uint8

const (
	// ANSI is the 101/104-key arrangement with a wide Enter key (US).
	ANSI Physical = iota
	// ISO is the 102/105-key arrangement with a tall Enter key (UK, most
	// of Europe).
	ISO
	// JIS is the 106/109-key Japanese arrangement.
	JIS
)

// Layout resolves one key against the current modifiers. Lookup must be
// pure: no state, no side effects, safe to call from interrupt context.
type Layout interface {
	// Lookup returns the decoded meaning of code, or ok=false when the key
	// has no textual mapping under this layout.
	Lookup(code keycode.KeyCode, m *keycode.Modifiers) (keycode.DecodedKey, bool)

	// Physical reports which physical key arrangement the layout expects.
	Physical() Physical

	// Name is the layout's registry name, e.g. "us104".
	Name() string
}

// symbol2 picks between the plain and shifted glyph of a symbol key.
// Caps Lock is deliberately ignored.
func symbol2(m *keycode.Modifiers, plain, shifted rune) (keycode.DecodedKey, bool) {
	if m.Shifted() {
		return keycode.Unicode(shifted), true
	}
	return keycode.Unicode(plain), true
}

// symbol3 is symbol2 plus an AltGr glyph, which wins regardless of Shift.
func symbol3(m *keycode.Modifiers, plain, shifted, alt rune) (keycode.DecodedKey, bool) {
	if m.AltGr() {
		return keycode.Unicode(alt), true
	}
	return symbol2(m, plain, shifted)
}

// letter resolves an ASCII letter key from its uppercase cap, honoring the
// Shift/Caps XOR.
func letter(m *keycode.Modifiers, upper rune) (keycode.DecodedKey, bool) {
	if m.Caps() {
		return keycode.Unicode(upper), true
	}
	return keycode.Unicode(upper + ('a' - 'A')), true
}

// letter2 resolves a letter key with explicit lower/upper glyphs, for
// non-ASCII letters where case isn't an offset.
func letter2(m *keycode.Modifiers, lower, upper rune) (keycode.DecodedKey, bool) {
	if m.Caps() {
		return keycode.Unicode(upper), true
	}
	return keycode.Unicode(lower), true
}

// numpad resolves a dual-purpose numeric pad key: a digit with the Num Lock
// latch engaged, a navigation key otherwise. The decode package presents an
// adjusted NumLock here so that held Shift temporarily overrides the latch.
func numpad(m *keycode.Modifiers, digit rune, nav keycode.KeyCode) (keycode.DecodedKey, bool) {
	if m.NumLock {
		return keycode.Unicode(digit), true
	}
	return keycode.Raw(nav), true
}

// numpadDel is the Numpad Period key, whose navigation half is Delete and
// therefore still types a character.
func numpadDel(m *keycode.Modifiers, digit, other rune) (keycode.DecodedKey, bool) {
	if m.NumLock {
		return keycode.Unicode(digit), true
	}
	return keycode.Unicode(other), true
}

// none marks a key with no textual mapping.
func none() (keycode.DecodedKey, bool) {
	return keycode.DecodedKey{}, false
}
