package keycode

// KeyState is the transition a KeyEvent reports for its key.
type KeyState uint8

const (
	// StateUp means the key has just been released.
	StateUp KeyState = iota
	// StateDown means the key has just been pressed.
	StateDown
	// StateSingleShot means the key was pressed and released as one atomic
	// action. Used for keys whose hardware encoding has no release code
	// (Pause/Break) and for keyboard status reports.
	StateSingleShot
)

func (s KeyState) String() string {
	switch s {
	case StateUp:
		return "Up"
	case StateDown:
		return "Down"
	case StateSingleShot:
		return "SingleShot"
	default:
		return "KeyState(" + itoa(uint8(s)) + ")"
	}
}

// KeyEvent is the pipeline's currency between the scancode interpreter and
// the event decoder: one key, one transition.
type KeyEvent struct {
	Code  KeyCode
	State KeyState
}

func (e KeyEvent) String() string {
	return e.Code.String() + " " + e.State.String()
}

// DecodedKind discriminates the two shapes of a DecodedKey.
type DecodedKind uint8

const (
	// KindRaw carries a key with no textual meaning under the active layout
	// and modifiers (arrow keys, bare modifiers, function keys).
	KindRaw DecodedKind = iota
	// KindUnicode carries a character or control code.
	KindUnicode
)

// DecodedKey is the pipeline's final output: either a Unicode character
// (including ASCII control codes) or an untranslated key code.
type DecodedKey struct {
	Kind DecodedKind
	Rune rune    // valid when Kind == KindUnicode
	Code KeyCode // valid when Kind == KindRaw
}

// Unicode wraps a character as a decoded key.
func Unicode(r rune) DecodedKey {
	return DecodedKey{Kind: KindUnicode, Rune: r}
}

// Raw wraps an untranslated key code as a decoded key.
func Raw(code KeyCode) DecodedKey {
	return DecodedKey{Kind: KindRaw, Code: code}
}

func (d DecodedKey) String() string {
	if d.Kind == KindUnicode {
		return "Unicode(" + string(d.Rune) + ")"
	}
	return "Raw(" + d.Code.String() + ")"
}
