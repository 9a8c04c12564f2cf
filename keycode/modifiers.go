package keycode

// Modifiers tracks the held modifier keys and the three latched lock keys.
//
// Held flags mirror the physical state of the key: set on StateDown, cleared
// on StateUp. Latches flip on every StateDown actually received and persist
// across events; the tracker does no debouncing, so hardware auto-repeat of
// a lock key toggles its latch again (debounce upstream if that matters).
//
// Apply is the only mutator. Decode-stage errors elsewhere in the pipeline
// never touch a Modifiers value, so a garbled byte cannot leave a modifier
// stuck.
type Modifiers struct {
	LShift bool
	RShift bool
	LCtrl  bool
	RCtrl  bool
	LAlt   bool
	RAltGr bool

	CapsLock   bool
	NumLock    bool
	ScrollLock bool
}

// Default returns the power-on modifier state. PC keyboards boot with Num
// Lock engaged, so the latch starts on.
func Default() Modifiers {
	return Modifiers{NumLock: true}
}

// Apply folds one key event into the modifier state. Events for
// non-modifier keys are ignored.
func (m *Modifiers) Apply(ev KeyEvent) {
	down := ev.State == StateDown
	switch ev.Code {
	case KeyLShift:
		m.LShift = down
	case KeyRShift:
		m.RShift = down
	case KeyLControl:
		m.LCtrl = down
	case KeyRControl:
		m.RCtrl = down
	case KeyLAlt:
		m.LAlt = down
	case KeyRAltGr:
		m.RAltGr = down
	case KeyCapsLock:
		if down {
			m.CapsLock = !m.CapsLock
		}
	case KeyNumpadLock:
		if down {
			m.NumLock = !m.NumLock
		}
	case KeyScrollLock:
		if down {
			m.ScrollLock = !m.ScrollLock
		}
	}
}

// Shifted reports whether either Shift key is held.
func (m *Modifiers) Shifted() bool {
	return m.LShift || m.RShift
}

// Ctrl reports whether either Control key is held.
func (m *Modifiers) Ctrl() bool {
	return m.LCtrl || m.RCtrl
}

// Alt reports whether either Alt-position key is held.
func (m *Modifiers) Alt() bool {
	return m.LAlt || m.RAltGr
}

// AltGr reports the AltGr condition: the right AltGr key, or Ctrl+LAlt which
// many layouts treat as equivalent.
func (m *Modifiers) AltGr() bool {
	return m.RAltGr || (m.LAlt && m.Ctrl())
}

// Caps reports the effective letter-case condition: Shift and Caps Lock
// compose by XOR, so holding Shift with the latch on gets you lowercase
// again. Applies to letter keys only; digit and symbol keys consult Shifted.
func (m *Modifiers) Caps() bool {
	return m.Shifted() != m.CapsLock
}
