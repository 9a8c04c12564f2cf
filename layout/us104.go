package layout

import "github.com/tollan/keywire/keycode"

// Us104 is the standard United States 101/104-key layout (ANSI, wide Enter
// with the backslash key above it).
type Us104 struct{}

func (Us104) Name() string       { return "us104" }
func (Us104) Physical() Physical { return ANSI }

func (Us104) Lookup(code keycode.KeyCode, m *keycode.Modifiers) (keycode.DecodedKey, bool) {
	switch code {
	case keycode.KeyEscape:
		return keycode.Unicode('\x1b'), true
	case keycode.KeyOem8:
		return symbol2(m, '`', '~')
	case keycode.Key1:
		return symbol2(m, '1', '!')
	case keycode.Key2:
		return symbol2(m, '2', '@')
	case keycode.Key3:
		return symbol2(m, '3', '#')
	case keycode.Key4:
		return symbol2(m, '4', '$')
	case keycode.Key5:
		return symbol2(m, '5', '%')
	case keycode.Key6:
		return symbol2(m, '6', '^')
	case keycode.Key7:
		return symbol2(m, '7', '&')
	case keycode.Key8:
		return symbol2(m, '8', '*')
	case keycode.Key9:
		return symbol2(m, '9', '(')
	case keycode.Key0:
		return symbol2(m, '0', ')')
	case keycode.KeyOemMinus:
		return symbol2(m, '-', '_')
	case keycode.KeyOemPlus:
		return symbol2(m, '=', '+')
	case keycode.KeyBackspace:
		return keycode.Unicode('\x08'), true
	case keycode.KeyTab:
		return keycode.Unicode('\t'), true
	case keycode.KeyQ:
		return letter(m, 'Q')
	case keycode.KeyW:
		return letter(m, 'W')
	case keycode.KeyE:
		return letter(m, 'E')
	case keycode.KeyR:
		return letter(m, 'R')
	case keycode.KeyT:
		return letter(m, 'T')
	case keycode.KeyY:
		return letter(m, 'Y')
	case keycode.KeyU:
		return letter(m, 'U')
	case keycode.KeyI:
		return letter(m, 'I')
	case keycode.KeyO:
		return letter(m, 'O')
	case keycode.KeyP:
		return letter(m, 'P')
	case keycode.KeyOem4:
		return symbol2(m, '[', '{')
	case keycode.KeyOem6:
		return symbol2(m, ']', '}')
	case keycode.KeyOem7:
		return symbol2(m, '\\', '|')
	case keycode.KeyA:
		return letter(m, 'A')
	case keycode.KeyS:
		return letter(m, 'S')
	case keycode.KeyD:
		return letter(m, 'D')
	case keycode.KeyF:
		return letter(m, 'F')
	case keycode.KeyG:
		return letter(m, 'G')
	case keycode.KeyH:
		return letter(m, 'H')
	case keycode.KeyJ:
		return letter(m, 'J')
	case keycode.KeyK:
		return letter(m, 'K')
	case keycode.KeyL:
		return letter(m, 'L')
	case keycode.KeyOem1:
		return symbol2(m, ';', ':')
	case keycode.KeyOem3:
		return symbol2(m, '\'', '"')
	case keycode.KeyReturn:
		return keycode.Unicode('\n'), true
	case keycode.KeyZ:
		return letter(m, 'Z')
	case keycode.KeyX:
		return letter(m, 'X')
	case keycode.KeyC:
		return letter(m, 'C')
	case keycode.KeyV:
		return letter(m, 'V')
	case keycode.KeyB:
		return letter(m, 'B')
	case keycode.KeyN:
		return letter(m, 'N')
	case keycode.KeyM:
		return letter(m, 'M')
	case keycode.KeyOemComma:
		return symbol2(m, ',', '<')
	case keycode.KeyOemPeriod:
		return symbol2(m, '.', '>')
	case keycode.KeyOem2:
		return symbol2(m, '/', '?')
	case keycode.KeySpacebar:
		return keycode.Unicode(' '), true
	case keycode.KeyDelete:
		return keycode.Unicode('\x7f'), true
	case keycode.KeyNumpadDivide:
		return keycode.Unicode('/'), true
	case keycode.KeyNumpadMultiply:
		return keycode.Unicode('*'), true
	case keycode.KeyNumpadSubtract:
		return keycode.Unicode('-'), true
	case keycode.KeyNumpadAdd:
		return keycode.Unicode('+'), true
	case keycode.KeyNumpad0:
		return numpad(m, '0', keycode.KeyInsert)
	case keycode.KeyNumpad1:
		return numpad(m, '1', keycode.KeyEnd)
	case keycode.KeyNumpad2:
		return numpad(m, '2', keycode.KeyArrowDown)
	case keycode.KeyNumpad3:
		return numpad(m, '3', keycode.KeyPageDown)
	case keycode.KeyNumpad4:
		return numpad(m, '4', keycode.KeyArrowLeft)
	case keycode.KeyNumpad5:
		return keycode.Unicode('5'), true
	case keycode.KeyNumpad6:
		return numpad(m, '6', keycode.KeyArrowRight)
	case keycode.KeyNumpad7:
		return numpad(m, '7', keycode.KeyHome)
	case keycode.KeyNumpad8:
		return numpad(m, '8', keycode.KeyArrowUp)
	case keycode.KeyNumpad9:
		return numpad(m, '9', keycode.KeyPageUp)
	case keycode.KeyNumpadPeriod:
		return numpadDel(m, '.', '\x7f')
	case keycode.KeyNumpadEnter:
		return keycode.Unicode('\n'), true
	default:
		return none()
	}
}
