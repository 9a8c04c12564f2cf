package scancode

import "github.com/tollan/keywire/keycode"

// Set2 interprets Scan Code Set 2, the encoding an AT or PS/2 keyboard
// sends on the wire. Releases are announced by a 0xF0 marker before the code
// byte; 0xE0 selects the extended code space and composes with 0xF0.
//
// See https://wiki.osdev.org/PS/2_Keyboard#Scan_Code_Set_2
type Set2 struct {
	extended bool
	release  bool
	pending  [maxPattern]byte
	npending int
}

// NewSet2 returns a fresh Set 2 interpreter.
func NewSet2() *Set2 { return &Set2{} }

func (s *Set2) String() string { return "set2" }

// Reset drops any pending prefix or fixed-pattern bytes.
func (s *Set2) Reset() {
	s.extended = false
	s.release = false
	s.npending = 0
}

// The Pause key is the only fixed run in Set 2: an 8-byte burst with no
// release code. Print Screen decodes on the general path (E0 7C), with its
// fake shift bytes (E0 12 / E0 F0 12) swallowed below.
var set2Pause = []byte{0xE1, 0x14, 0x77, 0xE1, 0xF0, 0x14, 0xF0, 0x77}

var set2Fixed = [][]byte{set2Pause}

var set2FixedEvents = []keycode.KeyEvent{
	{Code: keycode.KeyPauseBreak, State: keycode.StateSingleShot},
}

// AdvanceState implements Set.
func (s *Set2) AdvanceState(b byte) (*keycode.KeyEvent, error) {
	if s.npending > 0 {
		return s.advancePattern(b)
	}

	switch {
	case b == extended2Prefix && !s.extended && !s.release:
		s.pending[0] = b
		s.npending = 1
		return nil, nil
	case b == extendedPrefix && !s.extended && !s.release:
		s.extended = true
		return nil, nil
	case b == releasePrefix && !s.release:
		s.release = true
		return nil, nil
	}

	if s.extended && b == 0x12 {
		// Fake shift wrapped around Print Screen and the navigation
		// cluster; carries no key of its own.
		s.Reset()
		return nil, nil
	}

	extended := s.extended
	state := keycode.StateDown
	if s.release {
		state = keycode.StateUp
	}
	s.extended = false
	s.release = false

	var key keycode.KeyCode
	if extended {
		key = set2ExtendedCode(b)
	} else {
		key = set2Code(b)
	}
	if key == keycode.KeyNone {
		return nil, UnknownCodeError{Byte: b, Extended: extended}
	}
	// Status reports have no key to hold down, so the state flags don't
	// apply to them.
	if key == keycode.KeyTooManyKeys || key == keycode.KeyPowerOnTestOk {
		state = keycode.StateSingleShot
	}
	return &keycode.KeyEvent{Code: key, State: state}, nil
}

func (s *Set2) advancePattern(b byte) (*keycode.KeyEvent, error) {
	s.pending[s.npending] = b
	s.npending++
	m, i := matchFixed(set2Fixed, s.pending[:s.npending])
	switch m {
	case matchFull:
		s.Reset()
		ev := set2FixedEvents[i]
		return &ev, nil
	case matchPartial:
		return nil, nil
	default:
		s.Reset()
		return nil, ErrBadSequence
	}
}

// set2Code maps the single-byte codes of Set 2.
func set2Code(b byte) keycode.KeyCode {
	switch b {
	case 0x00:
		return keycode.KeyTooManyKeys
	case 0x01:
		return keycode.KeyF9
	case 0x03:
		return keycode.KeyF5
	case 0x04:
		return keycode.KeyF3
	case 0x05:
		return keycode.KeyF1
	case 0x06:
		return keycode.KeyF2
	case 0x07:
		return keycode.KeyF12
	case 0x09:
		return keycode.KeyF10
	case 0x0A:
		return keycode.KeyF8
	case 0x0B:
		return keycode.KeyF6
	case 0x0C:
		return keycode.KeyF4
	case 0x0D:
		return keycode.KeyTab
	case 0x0E:
		return keycode.KeyOem8
	case 0x11:
		return keycode.KeyLAlt
	case 0x12:
		return keycode.KeyLShift
	case 0x13:
		return keycode.KeyOem11
	case 0x14:
		return keycode.KeyLControl
	case 0x15:
		return keycode.KeyQ
	case 0x16:
		return keycode.Key1
	case 0x1A:
		return keycode.KeyZ
	case 0x1B:
		return keycode.KeyS
	case 0x1C:
		return keycode.KeyA
	case 0x1D:
		return keycode.KeyW
	case 0x1E:
		return keycode.Key2
	case 0x21:
		return keycode.KeyC
	case 0x22:
		return keycode.KeyX
	case 0x23:
		return keycode.KeyD
	case 0x24:
		return keycode.KeyE
	case 0x25:
		return keycode.Key4
	case 0x26:
		return keycode.Key3
	case 0x29:
		return keycode.KeySpacebar
	case 0x2A:
		return keycode.KeyV
	case 0x2B:
		return keycode.KeyF
	case 0x2C:
		return keycode.KeyT
	case 0x2D:
		return keycode.KeyR
	case 0x2E:
		return keycode.Key5
	case 0x31:
		return keycode.KeyN
	case 0x32:
		return keycode.KeyB
	case 0x33:
		return keycode.KeyH
	case 0x34:
		return keycode.KeyG
	case 0x35:
		return keycode.KeyY
	case 0x36:
		return keycode.Key6
	case 0x3A:
		return keycode.KeyM
	case 0x3B:
		return keycode.KeyJ
	case 0x3C:
		return keycode.KeyU
	case 0x3D:
		return keycode.Key7
	case 0x3E:
		return keycode.Key8
	case 0x41:
		return keycode.KeyOemComma
	case 0x42:
		return keycode.KeyK
	case 0x43:
		return keycode.KeyI
	case 0x44:
		return keycode.KeyO
	case 0x45:
		return keycode.Key0
	case 0x46:
		return keycode.Key9
	case 0x49:
		return keycode.KeyOemPeriod
	case 0x4A:
		return keycode.KeyOem2
	case 0x4B:
		return keycode.KeyL
	case 0x4C:
		return keycode.KeyOem1
	case 0x4D:
		return keycode.KeyP
	case 0x4E:
		return keycode.KeyOemMinus
	case 0x51:
		return keycode.KeyOem12
	case 0x52:
		return keycode.KeyOem3
	case 0x54:
		return keycode.KeyOem4
	case 0x55:
		return keycode.KeyOemPlus
	case 0x58:
		return keycode.KeyCapsLock
	case 0x59:
		return keycode.KeyRShift
	case 0x5A:
		return keycode.KeyReturn
	case 0x5B:
		return keycode.KeyOem6
	case 0x5D:
		return keycode.KeyOem7
	case 0x61:
		return keycode.KeyOem5
	case 0x64:
		return keycode.KeyOem10
	case 0x66:
		return keycode.KeyBackspace
	case 0x67:
		return keycode.KeyOem9
	case 0x69:
		return keycode.KeyNumpad1
	case 0x6A:
		return keycode.KeyOem13
	case 0x6B:
		return keycode.KeyNumpad4
	case 0x6C:
		return keycode.KeyNumpad7
	case 0x70:
		return keycode.KeyNumpad0
	case 0x71:
		return keycode.KeyNumpadPeriod
	case 0x72:
		return keycode.KeyNumpad2
	case 0x73:
		return keycode.KeyNumpad5
	case 0x74:
		return keycode.KeyNumpad6
	case 0x75:
		return keycode.KeyNumpad8
	case 0x76:
		return keycode.KeyEscape
	case 0x77:
		return keycode.KeyNumpadLock
	case 0x78:
		return keycode.KeyF11
	case 0x79:
		return keycode.KeyNumpadAdd
	case 0x7A:
		return keycode.KeyNumpad3
	case 0x7B:
		return keycode.KeyNumpadSubtract
	case 0x7C:
		return keycode.KeyNumpadMultiply
	case 0x7D:
		return keycode.KeyNumpad9
	case 0x7E:
		return keycode.KeyScrollLock
	case 0x7F:
		return keycode.KeySysRq
	case 0x83:
		return keycode.KeyF7
	case 0xAA:
		return keycode.KeyPowerOnTestOk
	default:
		return keycode.KeyNone
	}
}

// set2ExtendedCode maps the E0-prefixed code space of Set 2.
func set2ExtendedCode(b byte) keycode.KeyCode {
	switch b {
	case 0x11:
		return keycode.KeyRAltGr
	case 0x14:
		return keycode.KeyRControl
	case 0x15:
		return keycode.KeyPrevTrack
	case 0x1F:
		return keycode.KeyLWin
	case 0x21:
		return keycode.KeyVolumeDown
	case 0x23:
		return keycode.KeyMute
	case 0x27:
		return keycode.KeyRWin
	case 0x2B:
		return keycode.KeyCalculator
	case 0x2F:
		return keycode.KeyApps
	case 0x32:
		return keycode.KeyVolumeUp
	case 0x34:
		return keycode.KeyPlay
	case 0x3A:
		return keycode.KeyWWWHome
	case 0x3B:
		return keycode.KeyStop
	case 0x4A:
		return keycode.KeyNumpadDivide
	case 0x4D:
		return keycode.KeyNextTrack
	case 0x5A:
		return keycode.KeyNumpadEnter
	case 0x69:
		return keycode.KeyEnd
	case 0x6B:
		return keycode.KeyArrowLeft
	case 0x6C:
		return keycode.KeyHome
	case 0x70:
		return keycode.KeyInsert
	case 0x71:
		return keycode.KeyDelete
	case 0x72:
		return keycode.KeyArrowDown
	case 0x74:
		return keycode.KeyArrowRight
	case 0x75:
		return keycode.KeyArrowUp
	case 0x7A:
		return keycode.KeyPageDown
	case 0x7C:
		return keycode.KeyPrintScreen
	case 0x7D:
		return keycode.KeyPageUp
	default:
		return keycode.KeyNone
	}
}
