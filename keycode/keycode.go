// Package keycode defines the symbolic key identities and key event types
// shared by every stage of the decode pipeline.
//
// A KeyCode names a physical key position, not a glyph: the key between Tab
// and CapsLock on the left letter column is KeyQ even on an AZERTY keyboard,
// where it types 'a'. Layouts (see the layout package) attach glyphs.
package keycode

// KeyCode identifies a physical key, independent of the wire encoding that
// reported it. Letter and digit keys are named after their caps on a US/UK
// English keyboard; OEM keys are position-named because their glyph varies
// by locale.
//
// The set is not closed forever: new keys may be added in later versions, so
// consumers switching over KeyCode should always carry a default arm.
type KeyCode uint8

const (
	// KeyNone is the zero value and never appears in a KeyEvent.
	KeyNone KeyCode = iota

	// Row 1: Escape and the function keys.
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyPrintScreen
	KeySysRq // reported when Alt+PrintScreen is pressed
	KeyScrollLock
	KeyPauseBreak

	// Row 2: the number line.
	KeyOem8 // left of Key1 (backtick on US layouts)
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyOemMinus
	KeyOemPlus
	KeyBackspace

	KeyInsert
	KeyHome
	KeyPageUp

	KeyNumpadLock
	KeyNumpadDivide
	KeyNumpadMultiply
	KeyNumpadSubtract

	// Row 3: QWERTY.
	KeyTab
	KeyQ
	KeyW
	KeyE
	KeyR
	KeyT
	KeyY
	KeyU
	KeyI
	KeyO
	KeyP
	KeyOem4 // US left square bracket
	KeyOem6 // US right square bracket
	KeyOem5 // extra ISO key next to Left Shift (UK backslash)
	KeyOem7 // US backslash, UK ISO hash/tilde

	KeyDelete
	KeyEnd
	KeyPageDown

	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadAdd

	// Row 4: ASDF.
	KeyCapsLock
	KeyA
	KeyS
	KeyD
	KeyF
	KeyG
	KeyH
	KeyJ
	KeyK
	KeyL
	KeyOem1 // US semicolon/colon
	KeyOem3 // US single-quote/at
	KeyReturn

	KeyNumpad4
	KeyNumpad5
	KeyNumpad6

	// Row 5: ZXCV.
	KeyLShift
	KeyZ
	KeyX
	KeyC
	KeyV
	KeyB
	KeyN
	KeyM
	KeyOemComma
	KeyOemPeriod
	KeyOem2 // US slash/question-mark
	KeyRShift

	KeyArrowUp

	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpadEnter

	// Row 6: modifiers and the space bar.
	KeyLControl
	KeyLWin
	KeyLAlt
	KeySpacebar
	KeyRAltGr
	KeyRWin
	KeyApps
	KeyRControl

	KeyArrowLeft
	KeyArrowDown
	KeyArrowRight

	KeyNumpad0
	KeyNumpadPeriod

	// JIS 109-key extras.
	KeyOem9  // Muhenkan
	KeyOem10 // Henkan/Zenkouho
	KeyOem11 // Hiragana/Katakana
	KeyOem12 // JIS backslash
	KeyOem13 // Yen

	// Media keys.
	KeyPrevTrack
	KeyNextTrack
	KeyMute
	KeyCalculator
	KeyPlay
	KeyStop
	KeyVolumeDown
	KeyVolumeUp
	KeyWWWHome

	// Keyboard status reports. These arrive as codes on the wire but do not
	// correspond to a key you can hold, so they only ever appear as
	// StateSingleShot events.
	KeyPowerOnTestOk
	KeyTooManyKeys

	// keyCodeCount is the number of defined key codes, used internally for
	// bounds checks. Not part of the API surface.
	keyCodeCount
)

var keyCodeNames = [...]string{
	KeyNone:           "None",
	KeyEscape:         "Escape",
	KeyF1:             "F1",
	KeyF2:             "F2",
	KeyF3:             "F3",
	KeyF4:             "F4",
	KeyF5:             "F5",
	KeyF6:             "F6",
	KeyF7:             "F7",
	KeyF8:             "F8",
	KeyF9:             "F9",
	KeyF10:            "F10",
	KeyF11:            "F11",
	KeyF12:            "F12",
	KeyPrintScreen:    "PrintScreen",
	KeySysRq:          "SysRq",
	KeyScrollLock:     "ScrollLock",
	KeyPauseBreak:     "PauseBreak",
	KeyOem8:           "Oem8",
	Key1:              "Key1",
	Key2:              "Key2",
	Key3:              "Key3",
	Key4:              "Key4",
	Key5:              "Key5",
	Key6:              "Key6",
	Key7:              "Key7",
	Key8:              "Key8",
	Key9:              "Key9",
	Key0:              "Key0",
	KeyOemMinus:       "OemMinus",
	KeyOemPlus:        "OemPlus",
	KeyBackspace:      "Backspace",
	KeyInsert:         "Insert",
	KeyHome:           "Home",
	KeyPageUp:         "PageUp",
	KeyNumpadLock:     "NumpadLock",
	KeyNumpadDivide:   "NumpadDivide",
	KeyNumpadMultiply: "NumpadMultiply",
	KeyNumpadSubtract: "NumpadSubtract",
	KeyTab:            "Tab",
	KeyQ:              "Q",
	KeyW:              "W",
	KeyE:              "E",
	KeyR:              "R",
	KeyT:              "T",
	KeyY:              "Y",
	KeyU:              "U",
	KeyI:              "I",
	KeyO:              "O",
	KeyP:              "P",
	KeyOem4:           "Oem4",
	KeyOem6:           "Oem6",
	KeyOem5:           "Oem5",
	KeyOem7:           "Oem7",
	KeyDelete:         "Delete",
	KeyEnd:            "End",
	KeyPageDown:       "PageDown",
	KeyNumpad7:        "Numpad7",
	KeyNumpad8:        "Numpad8",
	KeyNumpad9:        "Numpad9",
	KeyNumpadAdd:      "NumpadAdd",
	KeyCapsLock:       "CapsLock",
	KeyA:              "A",
	KeyS:              "S",
	KeyD:              "D",
	KeyF:              "F",
	KeyG:              "G",
	KeyH:              "H",
	KeyJ:              "J",
	KeyK:              "K",
	KeyL:              "L",
	KeyOem1:           "Oem1",
	KeyOem3:           "Oem3",
	KeyReturn:         "Return",
	KeyNumpad4:        "Numpad4",
	KeyNumpad5:        "Numpad5",
	KeyNumpad6:        "Numpad6",
	KeyLShift:         "LShift",
	KeyZ:              "Z",
	KeyX:              "X",
	KeyC:              "C",
	KeyV:              "V",
	KeyB:              "B",
	KeyN:              "N",
	KeyM:              "M",
	KeyOemComma:       "OemComma",
	KeyOemPeriod:      "OemPeriod",
	KeyOem2:           "Oem2",
	KeyRShift:         "RShift",
	KeyArrowUp:        "ArrowUp",
	KeyNumpad1:        "Numpad1",
	KeyNumpad2:        "Numpad2",
	KeyNumpad3:        "Numpad3",
	KeyNumpadEnter:    "NumpadEnter",
	KeyLControl:       "LControl",
	KeyLWin:           "LWin",
	KeyLAlt:           "LAlt",
	KeySpacebar:       "Spacebar",
	KeyRAltGr:         "RAltGr",
	KeyRWin:           "RWin",
	KeyApps:           "Apps",
	KeyRControl:       "RControl",
	KeyArrowLeft:      "ArrowLeft",
	KeyArrowDown:      "ArrowDown",
	KeyArrowRight:     "ArrowRight",
	KeyNumpad0:        "Numpad0",
	KeyNumpadPeriod:   "NumpadPeriod",
	KeyOem9:           "Oem9",
	KeyOem10:          "Oem10",
	KeyOem11:          "Oem11",
	KeyOem12:          "Oem12",
	KeyOem13:          "Oem13",
	KeyPrevTrack:      "PrevTrack",
	KeyNextTrack:      "NextTrack",
	KeyMute:           "Mute",
	KeyCalculator:     "Calculator",
	KeyPlay:           "Play",
	KeyStop:           "Stop",
	KeyVolumeDown:     "VolumeDown",
	KeyVolumeUp:       "VolumeUp",
	KeyWWWHome:        "WWWHome",
	KeyPowerOnTestOk:  "PowerOnTestOk",
	KeyTooManyKeys:    "TooManyKeys",
}

// String returns the symbolic name of the key, or "KeyCode(n)" for values
// this version does not know about.
func (k KeyCode) String() string {
	if int(k) < len(keyCodeNames) && keyCodeNames[k] != "" {
		return keyCodeNames[k]
	}
	return "KeyCode(" + itoa(uint8(k)) + ")"
}

// All returns every key code known to this version, in declaration order.
func All() []KeyCode {
	out := make([]KeyCode, 0, int(keyCodeCount)-1)
	for k := KeyNone + 1; k < keyCodeCount; k++ {
		out = append(out, k)
	}
	return out
}

// FromName returns the key code with the given symbolic name, as produced
// by String. The lookup is case sensitive.
func FromName(name string) (KeyCode, bool) {
	for k, n := range keyCodeNames {
		if n == name && KeyCode(k) != KeyNone {
			return KeyCode(k), true
		}
	}
	return KeyNone, false
}

// IsValid reports whether k is a key code known to this version.
func (k KeyCode) IsValid() bool {
	return k > KeyNone && k < keyCodeCount
}

// IsNumpadDual reports whether k is one of the dual-purpose numeric pad keys
// (digit vs. navigation) whose meaning depends on the Num Lock latch.
func (k KeyCode) IsNumpadDual() bool {
	switch k {
	case KeyNumpad0, KeyNumpad1, KeyNumpad2, KeyNumpad3, KeyNumpad4,
		KeyNumpad5, KeyNumpad6, KeyNumpad7, KeyNumpad8, KeyNumpad9,
		KeyNumpadPeriod:
		return true
	}
	return false
}

// itoa avoids pulling strconv into a package used from interrupt context.
func itoa(v uint8) string {
	if v == 0 {
		return "0"
	}
	var buf [3]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = '0' + v%10
		v /= 10
	}
	return string(buf[i:])
}
