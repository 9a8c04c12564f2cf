package layout

import "github.com/tollan/keywire/keycode"

// Dvorak104 is the US Dvorak layout on an ANSI 104-key board. The physical
// key codes are the same as Us104; only the glyphs move.
//
// A few letter keys ('s', 'w', 'v', 'z') consult Shift rather than the
// Shift/Caps combination, so Caps Lock leaves them lowercase. That matches
// how the classic X11 Dvorak variant behaves for keys whose QWERTY position
// holds punctuation.
type Dvorak104 struct{}

func (Dvorak104) Name() string       { return "dvorak104" }
func (Dvorak104) Physical() Physical { return ANSI }

func (Dvorak104) Lookup(code keycode.KeyCode, m *keycode.Modifiers) (keycode.DecodedKey, bool) {
	switch code {
	case keycode.KeyOemMinus:
		return symbol2(m, '[', '{')
	case keycode.KeyOemPlus:
		return symbol2(m, ']', '}')
	case keycode.KeyQ:
		return letter2(m, '\'', '"')
	case keycode.KeyW:
		return letter2(m, ',', '<')
	case keycode.KeyE:
		return letter2(m, '.', '>')
	case keycode.KeyR:
		return letter(m, 'P')
	case keycode.KeyT:
		return letter(m, 'Y')
	case keycode.KeyY:
		return letter(m, 'F')
	case keycode.KeyU:
		return letter(m, 'G')
	case keycode.KeyI:
		return letter(m, 'C')
	case keycode.KeyO:
		return letter(m, 'R')
	case keycode.KeyP:
		return letter(m, 'L')
	case keycode.KeyOem4:
		return symbol2(m, '/', '?')
	case keycode.KeyOem6:
		return symbol2(m, '=', '+')
	case keycode.KeyS:
		return letter(m, 'O')
	case keycode.KeyD:
		return letter(m, 'E')
	case keycode.KeyF:
		return letter(m, 'U')
	case keycode.KeyG:
		return letter(m, 'I')
	case keycode.KeyH:
		return letter(m, 'D')
	case keycode.KeyJ:
		return letter(m, 'H')
	case keycode.KeyK:
		return letter(m, 'T')
	case keycode.KeyL:
		return letter(m, 'N')
	case keycode.KeyOem1:
		return symbol2(m, 's', 'S')
	case keycode.KeyOem3:
		return symbol2(m, '-', '_')
	case keycode.KeyZ:
		return letter2(m, ';', ':')
	case keycode.KeyX:
		return letter(m, 'Q')
	case keycode.KeyC:
		return letter(m, 'J')
	case keycode.KeyV:
		return letter(m, 'K')
	case keycode.KeyB:
		return letter(m, 'X')
	case keycode.KeyN:
		return letter(m, 'B')
	case keycode.KeyOemComma:
		return symbol2(m, 'w', 'W')
	case keycode.KeyOemPeriod:
		return symbol2(m, 'v', 'V')
	case keycode.KeyOem2:
		return symbol2(m, 'z', 'Z')
	default:
		return Us104{}.Lookup(code, m)
	}
}
