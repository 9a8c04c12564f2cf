package layout

import "github.com/tollan/keywire/keycode"

// Uk105 is the standard United Kingdom 102/105-key layout (ISO, tall Enter
// key with the hash/tilde key beside it and backslash next to Left Shift).
//
// Only the keys that differ from the US arrangement are mapped here; the
// rest delegate to Us104.
type Uk105 struct{}

func (Uk105) Name() string       { return "uk105" }
func (Uk105) Physical() Physical { return ISO }

func (Uk105) Lookup(code keycode.KeyCode, m *keycode.Modifiers) (keycode.DecodedKey, bool) {
	switch code {
	case keycode.KeyOem8:
		return symbol3(m, '`', '¬', '|')
	case keycode.Key2:
		return symbol2(m, '2', '"')
	case keycode.Key3:
		return symbol2(m, '3', '£')
	case keycode.Key4:
		return symbol3(m, '4', '$', '€')
	case keycode.KeyOem3:
		return symbol2(m, '\'', '@')
	case keycode.KeyOem7:
		return symbol2(m, '#', '~')
	case keycode.KeyOem5:
		return symbol2(m, '\\', '|')
	default:
		return Us104{}.Lookup(code, m)
	}
}
