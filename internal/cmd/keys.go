package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/tollan/keywire/keycode"
	"github.com/tollan/keywire/layout"
	"github.com/tollan/keywire/scancode"
)

// Keys lists every key code with its make codes in both scan code sets,
// optionally with the glyphs a layout assigns.
type Keys struct {
	Layout string `help:"Also show plain and shifted glyphs for this layout"`
}

func (k *Keys) Run() error {
	var l layout.Layout
	if k.Layout != "" {
		builtin, ok := layout.ByName(k.Layout)
		if !ok {
			return fmt.Errorf("unknown layout %q, available: %s", k.Layout, strings.Join(layout.Names(), ", "))
		}
		l = builtin
	}

	set1 := makeCodes(func() scancode.Set { return scancode.NewSet1() }, 0x80)
	set2 := makeCodes(func() scancode.Set { return scancode.NewSet2() }, 0x100)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if l != nil {
		fmt.Fprintln(w, "KEY\tSET1\tSET2\tPLAIN\tSHIFTED")
	} else {
		fmt.Fprintln(w, "KEY\tSET1\tSET2")
	}

	plain := keycode.Default()
	shifted := keycode.Default()
	shifted.LShift = true
	for _, code := range keycode.All() {
		if l == nil {
			fmt.Fprintf(w, "%s\t%s\t%s\n", code, orDash(set1[code]), orDash(set2[code]))
			continue
		}
		p, pok := l.Lookup(code, &plain)
		s, sok := l.Lookup(code, &shifted)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			code, orDash(set1[code]), orDash(set2[code]), glyph(p, pok), glyph(s, sok))
	}
	return w.Flush()
}

// makeCodes recovers the key-to-make-code table for one set by probing the
// interpreter with every plain and extended code byte. Keys only reachable
// through fixed multi-byte runs (Pause/Break) stay unlisted.
func makeCodes(fresh func() scancode.Set, space int) map[keycode.KeyCode]string {
	out := make(map[keycode.KeyCode]string)
	record := func(prefix string, b int, ev *keycode.KeyEvent) {
		if ev == nil || ev.State == keycode.StateUp {
			return
		}
		if _, seen := out[ev.Code]; seen {
			return
		}
		out[ev.Code] = fmt.Sprintf("%s%02X", prefix, b)
	}

	for b := 0; b < space; b++ {
		s := fresh()
		if ev, err := s.AdvanceState(byte(b)); err == nil {
			record("", b, ev)
		}
		s = fresh()
		if _, err := s.AdvanceState(0xE0); err != nil {
			continue
		}
		if ev, err := s.AdvanceState(byte(b)); err == nil {
			record("E0 ", b, ev)
		}
	}
	return out
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func glyph(k keycode.DecodedKey, ok bool) string {
	if !ok {
		return "-"
	}
	return k.String()
}

// Layouts lists the built-in layout names.
type Layouts struct{}

func (Layouts) Run() error {
	for _, name := range layout.Names() {
		fmt.Fprintln(os.Stdout, name)
	}
	return nil
}
