package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	toml "github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/tollan/keywire/keycode"
)

var builtins = map[string]Layout{
	"us104":     Us104{},
	"uk105":     Uk105{},
	"dvorak104": Dvorak104{},
}

// ByName returns a built-in layout by its registry name.
func ByName(name string) (Layout, bool) {
	l, ok := builtins[strings.ToLower(name)]
	return l, ok
}

// Names lists the built-in layout names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// layoutFile is the on-disk shape of a custom layout, in TOML or YAML.
//
//	name = "mylayout"
//	base = "us104"
//	[keys.Key3]
//	plain = "3"
//	shifted = "£"
//	altgr = "#"
type layoutFile struct {
	Name     string               `toml:"name" yaml:"name"`
	Base     string               `toml:"base" yaml:"base"`
	Physical string               `toml:"physical" yaml:"physical"`
	Keys     map[string]glyphSpec `toml:"keys" yaml:"keys"`
}

type glyphSpec struct {
	Plain   string `toml:"plain" yaml:"plain"`
	Shifted string `toml:"shifted" yaml:"shifted"`
	AltGr   string `toml:"altgr" yaml:"altgr"`
}

type override struct {
	plain, shifted, altGr rune
	hasShifted, hasAltGr  bool
}

// Custom is a layout loaded from a file. Keys named in the file replace
// their base-layout mapping; everything else falls through to the base.
type Custom struct {
	name      string
	physical  Physical
	base      Layout
	overrides map[keycode.KeyCode]override
}

func (c *Custom) Name() string       { return c.name }
func (c *Custom) Physical() Physical { return c.physical }

func (c *Custom) Lookup(code keycode.KeyCode, m *keycode.Modifiers) (keycode.DecodedKey, bool) {
	o, ok := c.overrides[code]
	if !ok {
		return c.base.Lookup(code, m)
	}
	if o.hasAltGr && m.AltGr() {
		return keycode.Unicode(o.altGr), true
	}
	if o.hasShifted && m.Shifted() {
		return keycode.Unicode(o.shifted), true
	}
	return keycode.Unicode(o.plain), true
}

// LoadFile parses a custom layout from a TOML or YAML file, chosen by the
// file extension.
func LoadFile(path string) (*Custom, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout file: %w", err)
	}

	var spec layoutFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &spec)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &spec)
	default:
		return nil, fmt.Errorf("layout file %q: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing layout file %q: %w", path, err)
	}
	return fromSpec(path, &spec)
}

func fromSpec(path string, spec *layoutFile) (*Custom, error) {
	baseName := spec.Base
	if baseName == "" {
		baseName = "us104"
	}
	base, ok := ByName(baseName)
	if !ok {
		return nil, fmt.Errorf("layout file %q: unknown base layout %q", path, baseName)
	}

	physical := base.Physical()
	switch strings.ToLower(spec.Physical) {
	case "":
	case "ansi":
		physical = ANSI
	case "iso":
		physical = ISO
	case "jis":
		physical = JIS
	default:
		return nil, fmt.Errorf("layout file %q: unknown physical shape %q", path, spec.Physical)
	}

	name := spec.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	c := &Custom{
		name:      name,
		physical:  physical,
		base:      base,
		overrides: make(map[keycode.KeyCode]override, len(spec.Keys)),
	}
	for keyName, g := range spec.Keys {
		code, ok := keycode.FromName(keyName)
		if !ok {
			return nil, fmt.Errorf("layout file %q: unknown key %q", path, keyName)
		}
		var o override
		var err error
		if o.plain, err = oneRune(g.Plain); err != nil {
			return nil, fmt.Errorf("layout file %q: key %s: %w", path, keyName, err)
		}
		if g.Shifted != "" {
			if o.shifted, err = oneRune(g.Shifted); err != nil {
				return nil, fmt.Errorf("layout file %q: key %s: %w", path, keyName, err)
			}
			o.hasShifted = true
		}
		if g.AltGr != "" {
			if o.altGr, err = oneRune(g.AltGr); err != nil {
				return nil, fmt.Errorf("layout file %q: key %s: %w", path, keyName, err)
			}
			o.hasAltGr = true
		}
		c.overrides[code] = o
	}
	return c, nil
}

// oneRune enforces that a glyph field holds exactly one character.
func oneRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("glyph %q must be a single character", s)
	}
	return r, nil
}
