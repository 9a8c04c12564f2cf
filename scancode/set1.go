package scancode

import "github.com/tollan/keywire/keycode"

// Set1 interprets Scan Code Set 1, the encoding an i8042 PC keyboard
// controller delivers on port 0x60. Releases carry the high bit of the code
// byte; 0xE0 selects the extended code space.
//
// See https://wiki.osdev.org/PS/2_Keyboard#Scan_Code_Set_1
type Set1 struct {
	extended bool
	pending  [maxPattern]byte
	npending int
}

// NewSet1 returns a fresh Set 1 interpreter.
func NewSet1() *Set1 { return &Set1{} }

func (s *Set1) String() string { return "set1" }

// Reset drops any pending prefix or fixed-pattern bytes.
func (s *Set1) Reset() {
	s.extended = false
	s.npending = 0
}

// The Pause key is the only fixed run in Set 1: a 6-byte burst with no
// release code. Print Screen decodes on the general path (E0 37 / E0 B7),
// with its fake shift bytes (E0 2A / E0 AA) swallowed below.
var set1Pause = []byte{0xE1, 0x1D, 0x45, 0xE1, 0x9D, 0xC5}

var set1Fixed = [][]byte{set1Pause}

var set1FixedEvents = []keycode.KeyEvent{
	{Code: keycode.KeyPauseBreak, State: keycode.StateSingleShot},
}

// AdvanceState implements Set.
func (s *Set1) AdvanceState(b byte) (*keycode.KeyEvent, error) {
	if s.npending > 0 {
		return s.advancePattern(b)
	}

	switch {
	case b == extended2Prefix:
		// E1 has exactly one meaning in Set 1: the start of the Pause run.
		s.pending[0] = b
		s.npending = 1
		return nil, nil
	case b == extendedPrefix:
		if s.extended {
			s.extended = false
			return nil, UnknownCodeError{Byte: b, Extended: true}
		}
		s.extended = true
		return nil, nil
	}

	state := keycode.StateDown
	code := b
	if b >= 0x80 {
		state = keycode.StateUp
		code = b - 0x80
	}

	var key keycode.KeyCode
	if s.extended {
		s.extended = false
		if code == 0x2A {
			// Fake shift wrapped around Print Screen and the navigation
			// cluster; carries no key of its own.
			return nil, nil
		}
		key = set1ExtendedCode(code)
		if key == keycode.KeyNone {
			return nil, UnknownCodeError{Byte: b, Extended: true}
		}
	} else {
		key = set1Code(code)
		if key == keycode.KeyNone {
			return nil, UnknownCodeError{Byte: b}
		}
	}
	return &keycode.KeyEvent{Code: key, State: state}, nil
}

func (s *Set1) advancePattern(b byte) (*keycode.KeyEvent, error) {
	s.pending[s.npending] = b
	s.npending++
	m, i := matchFixed(set1Fixed, s.pending[:s.npending])
	switch m {
	case matchFull:
		s.Reset()
		ev := set1FixedEvents[i]
		return &ev, nil
	case matchPartial:
		return nil, nil
	default:
		s.Reset()
		return nil, ErrBadSequence
	}
}

// set1Code maps the single-byte make codes (0x00..0x7F) of Set 1.
func set1Code(b byte) keycode.KeyCode {
	switch b {
	case 0x01:
		return keycode.KeyEscape
	case 0x02:
		return keycode.Key1
	case 0x03:
		return keycode.Key2
	case 0x04:
		return keycode.Key3
	case 0x05:
		return keycode.Key4
	case 0x06:
		return keycode.Key5
	case 0x07:
		return keycode.Key6
	case 0x08:
		return keycode.Key7
	case 0x09:
		return keycode.Key8
	case 0x0A:
		return keycode.Key9
	case 0x0B:
		return keycode.Key0
	case 0x0C:
		return keycode.KeyOemMinus
	case 0x0D:
		return keycode.KeyOemPlus
	case 0x0E:
		return keycode.KeyBackspace
	case 0x0F:
		return keycode.KeyTab
	case 0x10:
		return keycode.KeyQ
	case 0x11:
		return keycode.KeyW
	case 0x12:
		return keycode.KeyE
	case 0x13:
		return keycode.KeyR
	case 0x14:
		return keycode.KeyT
	case 0x15:
		return keycode.KeyY
	case 0x16:
		return keycode.KeyU
	case 0x17:
		return keycode.KeyI
	case 0x18:
		return keycode.KeyO
	case 0x19:
		return keycode.KeyP
	case 0x1A:
		return keycode.KeyOem4
	case 0x1B:
		return keycode.KeyOem6
	case 0x1C:
		return keycode.KeyReturn
	case 0x1D:
		return keycode.KeyLControl
	case 0x1E:
		return keycode.KeyA
	case 0x1F:
		return keycode.KeyS
	case 0x20:
		return keycode.KeyD
	case 0x21:
		return keycode.KeyF
	case 0x22:
		return keycode.KeyG
	case 0x23:
		return keycode.KeyH
	case 0x24:
		return keycode.KeyJ
	case 0x25:
		return keycode.KeyK
	case 0x26:
		return keycode.KeyL
	case 0x27:
		return keycode.KeyOem1
	case 0x28:
		return keycode.KeyOem3
	case 0x29:
		return keycode.KeyOem8
	case 0x2A:
		return keycode.KeyLShift
	case 0x2B:
		return keycode.KeyOem7
	case 0x2C:
		return keycode.KeyZ
	case 0x2D:
		return keycode.KeyX
	case 0x2E:
		return keycode.KeyC
	case 0x2F:
		return keycode.KeyV
	case 0x30:
		return keycode.KeyB
	case 0x31:
		return keycode.KeyN
	case 0x32:
		return keycode.KeyM
	case 0x33:
		return keycode.KeyOemComma
	case 0x34:
		return keycode.KeyOemPeriod
	case 0x35:
		return keycode.KeyOem2
	case 0x36:
		return keycode.KeyRShift
	case 0x37:
		return keycode.KeyNumpadMultiply
	case 0x38:
		return keycode.KeyLAlt
	case 0x39:
		return keycode.KeySpacebar
	case 0x3A:
		return keycode.KeyCapsLock
	case 0x3B:
		return keycode.KeyF1
	case 0x3C:
		return keycode.KeyF2
	case 0x3D:
		return keycode.KeyF3
	case 0x3E:
		return keycode.KeyF4
	case 0x3F:
		return keycode.KeyF5
	case 0x40:
		return keycode.KeyF6
	case 0x41:
		return keycode.KeyF7
	case 0x42:
		return keycode.KeyF8
	case 0x43:
		return keycode.KeyF9
	case 0x44:
		return keycode.KeyF10
	case 0x45:
		return keycode.KeyNumpadLock
	case 0x46:
		return keycode.KeyScrollLock
	case 0x47:
		return keycode.KeyNumpad7
	case 0x48:
		return keycode.KeyNumpad8
	case 0x49:
		return keycode.KeyNumpad9
	case 0x4A:
		return keycode.KeyNumpadSubtract
	case 0x4B:
		return keycode.KeyNumpad4
	case 0x4C:
		return keycode.KeyNumpad5
	case 0x4D:
		return keycode.KeyNumpad6
	case 0x4E:
		return keycode.KeyNumpadAdd
	case 0x4F:
		return keycode.KeyNumpad1
	case 0x50:
		return keycode.KeyNumpad2
	case 0x51:
		return keycode.KeyNumpad3
	case 0x52:
		return keycode.KeyNumpad0
	case 0x53:
		return keycode.KeyNumpadPeriod
	case 0x54:
		return keycode.KeySysRq
	case 0x56:
		return keycode.KeyOem5
	case 0x57:
		return keycode.KeyF11
	case 0x58:
		return keycode.KeyF12
	default:
		return keycode.KeyNone
	}
}

// set1ExtendedCode maps the E0-prefixed code space of Set 1.
func set1ExtendedCode(b byte) keycode.KeyCode {
	switch b {
	case 0x10:
		return keycode.KeyPrevTrack
	case 0x19:
		return keycode.KeyNextTrack
	case 0x1C:
		return keycode.KeyNumpadEnter
	case 0x1D:
		return keycode.KeyRControl
	case 0x20:
		return keycode.KeyMute
	case 0x21:
		return keycode.KeyCalculator
	case 0x22:
		return keycode.KeyPlay
	case 0x24:
		return keycode.KeyStop
	case 0x2E:
		return keycode.KeyVolumeDown
	case 0x30:
		return keycode.KeyVolumeUp
	case 0x32:
		return keycode.KeyWWWHome
	case 0x35:
		return keycode.KeyNumpadDivide
	case 0x37:
		return keycode.KeyPrintScreen
	case 0x38:
		return keycode.KeyRAltGr
	case 0x47:
		return keycode.KeyHome
	case 0x48:
		return keycode.KeyArrowUp
	case 0x49:
		return keycode.KeyPageUp
	case 0x4B:
		return keycode.KeyArrowLeft
	case 0x4D:
		return keycode.KeyArrowRight
	case 0x4F:
		return keycode.KeyEnd
	case 0x50:
		return keycode.KeyArrowDown
	case 0x51:
		return keycode.KeyPageDown
	case 0x52:
		return keycode.KeyInsert
	case 0x53:
		return keycode.KeyDelete
	case 0x5B:
		return keycode.KeyLWin
	case 0x5C:
		return keycode.KeyRWin
	case 0x5D:
		return keycode.KeyApps
	case 0x70:
		return keycode.KeyOem11
	case 0x73:
		return keycode.KeyOem12
	case 0x79:
		return keycode.KeyOem10
	case 0x7B:
		return keycode.KeyOem9
	case 0x7D:
		return keycode.KeyOem13
	default:
		return keycode.KeyNone
	}
}
