package layout_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tollan/keywire/keycode"
	"github.com/tollan/keywire/layout"
)

func mods(mutate func(*keycode.Modifiers)) *keycode.Modifiers {
	m := keycode.Default()
	if mutate != nil {
		mutate(&m)
	}
	return &m
}

func TestUs104(t *testing.T) {
	type testCase struct {
		name string
		code keycode.KeyCode
		mods *keycode.Modifiers
		want keycode.DecodedKey
	}

	cases := []testCase{
		{name: "plain letter", code: keycode.KeyA, mods: mods(nil), want: keycode.Unicode('a')},
		{name: "shifted letter", code: keycode.KeyA, mods: mods(func(m *keycode.Modifiers) { m.LShift = true }), want: keycode.Unicode('A')},
		{name: "caps letter", code: keycode.KeyA, mods: mods(func(m *keycode.Modifiers) { m.CapsLock = true }), want: keycode.Unicode('A')},
		{name: "caps plus shift cancels", code: keycode.KeyA, mods: mods(func(m *keycode.Modifiers) { m.CapsLock = true; m.RShift = true }), want: keycode.Unicode('a')},
		{name: "digit", code: keycode.Key1, mods: mods(nil), want: keycode.Unicode('1')},
		{name: "shifted digit", code: keycode.Key1, mods: mods(func(m *keycode.Modifiers) { m.LShift = true }), want: keycode.Unicode('!')},
		{name: "caps leaves digits alone", code: keycode.Key2, mods: mods(func(m *keycode.Modifiers) { m.CapsLock = true }), want: keycode.Unicode('2')},
		{name: "backtick", code: keycode.KeyOem8, mods: mods(nil), want: keycode.Unicode('`')},
		{name: "backslash", code: keycode.KeyOem7, mods: mods(nil), want: keycode.Unicode('\\')},
		{name: "pipe", code: keycode.KeyOem7, mods: mods(func(m *keycode.Modifiers) { m.LShift = true }), want: keycode.Unicode('|')},
		{name: "escape", code: keycode.KeyEscape, mods: mods(nil), want: keycode.Unicode('\x1b')},
		{name: "return", code: keycode.KeyReturn, mods: mods(nil), want: keycode.Unicode('\n')},
		{name: "numpad digit with numlock", code: keycode.KeyNumpad8, mods: mods(nil), want: keycode.Unicode('8')},
		{name: "numpad nav without numlock", code: keycode.KeyNumpad8, mods: mods(func(m *keycode.Modifiers) { m.NumLock = false }), want: keycode.Raw(keycode.KeyArrowUp)},
		{name: "numpad period without numlock", code: keycode.KeyNumpadPeriod, mods: mods(func(m *keycode.Modifiers) { m.NumLock = false }), want: keycode.Unicode('\x7f')},
		{name: "numpad five ignores numlock", code: keycode.KeyNumpad5, mods: mods(func(m *keycode.Modifiers) { m.NumLock = false }), want: keycode.Unicode('5')},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := layout.Us104{}.Lookup(tc.code, tc.mods)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUs104UnmappedKeys(t *testing.T) {
	for _, code := range []keycode.KeyCode{
		keycode.KeyF1, keycode.KeyArrowLeft, keycode.KeyLShift,
		keycode.KeyLWin, keycode.KeyPrintScreen, keycode.KeyPauseBreak,
	} {
		_, ok := layout.Us104{}.Lookup(code, mods(nil))
		assert.False(t, ok, "%s", code)
	}
}

func TestUk105Overrides(t *testing.T) {
	type testCase struct {
		name string
		code keycode.KeyCode
		mods *keycode.Modifiers
		want keycode.DecodedKey
	}

	cases := []testCase{
		{name: "shifted two is quote", code: keycode.Key2, mods: mods(func(m *keycode.Modifiers) { m.LShift = true }), want: keycode.Unicode('"')},
		{name: "shifted three is pound", code: keycode.Key3, mods: mods(func(m *keycode.Modifiers) { m.LShift = true }), want: keycode.Unicode('£')},
		{name: "altgr four is euro", code: keycode.Key4, mods: mods(func(m *keycode.Modifiers) { m.RAltGr = true }), want: keycode.Unicode('€')},
		{name: "hash key", code: keycode.KeyOem7, mods: mods(nil), want: keycode.Unicode('#')},
		{name: "iso backslash", code: keycode.KeyOem5, mods: mods(nil), want: keycode.Unicode('\\')},
		{name: "iso pipe", code: keycode.KeyOem5, mods: mods(func(m *keycode.Modifiers) { m.RShift = true }), want: keycode.Unicode('|')},
		{name: "shifted backtick is negation", code: keycode.KeyOem8, mods: mods(func(m *keycode.Modifiers) { m.LShift = true }), want: keycode.Unicode('¬')},
		{name: "letters fall through to us", code: keycode.KeyA, mods: mods(nil), want: keycode.Unicode('a')},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := layout.Uk105{}.Lookup(tc.code, tc.mods)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDvorak104(t *testing.T) {
	type testCase struct {
		name string
		code keycode.KeyCode
		mods *keycode.Modifiers
		want keycode.DecodedKey
	}

	cases := []testCase{
		{name: "qwerty q types quote", code: keycode.KeyQ, mods: mods(nil), want: keycode.Unicode('\'')},
		{name: "qwerty s types o", code: keycode.KeyS, mods: mods(nil), want: keycode.Unicode('o')},
		{name: "qwerty k types t shifted", code: keycode.KeyK, mods: mods(func(m *keycode.Modifiers) { m.LShift = true }), want: keycode.Unicode('T')},
		{name: "qwerty semicolon types s", code: keycode.KeyOem1, mods: mods(nil), want: keycode.Unicode('s')},
		{name: "qwerty slash types z", code: keycode.KeyOem2, mods: mods(nil), want: keycode.Unicode('z')},
		{name: "home row falls through", code: keycode.KeyA, mods: mods(nil), want: keycode.Unicode('a')},
		{name: "minus types bracket", code: keycode.KeyOemMinus, mods: mods(nil), want: keycode.Unicode('[')},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := layout.Dvorak104{}.Lookup(tc.code, tc.mods)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestByName(t *testing.T) {
	for _, name := range layout.Names() {
		l, ok := layout.ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, l.Name())
	}
	_, ok := layout.ByName("qzerty")
	assert.False(t, ok)
}

func TestLoadFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swapped.toml")
	content := `
name = "swapped"
base = "us104"

[keys.Key3]
plain = "3"
shifted = "£"
altgr = "#"

[keys.Oem8]
plain = "§"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	l, err := layout.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "swapped", l.Name())

	got, ok := l.Lookup(keycode.Key3, mods(nil))
	require.True(t, ok)
	assert.Equal(t, keycode.Unicode('3'), got)

	got, ok = l.Lookup(keycode.Key3, mods(func(m *keycode.Modifiers) { m.LShift = true }))
	require.True(t, ok)
	assert.Equal(t, keycode.Unicode('£'), got)

	got, ok = l.Lookup(keycode.Key3, mods(func(m *keycode.Modifiers) { m.RAltGr = true }))
	require.True(t, ok)
	assert.Equal(t, keycode.Unicode('#'), got)

	// No shifted override falls back to the plain glyph, not the base.
	got, ok = l.Lookup(keycode.KeyOem8, mods(func(m *keycode.Modifiers) { m.LShift = true }))
	require.True(t, ok)
	assert.Equal(t, keycode.Unicode('§'), got)

	// Untouched keys come from the base layout.
	got, ok = l.Lookup(keycode.KeyA, mods(nil))
	require.True(t, ok)
	assert.Equal(t, keycode.Unicode('a'), got)
}

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mini.yaml")
	content := `name: mini
base: uk105
keys:
  Q:
    plain: "й"
    shifted: "Й"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	l, err := layout.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, layout.ISO, l.Physical())

	got, ok := l.Lookup(keycode.KeyQ, mods(nil))
	require.True(t, ok)
	assert.Equal(t, keycode.Unicode('й'), got)
}

func TestLoadFileErrors(t *testing.T) {
	type testCase struct {
		name    string
		file    string
		content string
	}

	cases := []testCase{
		{name: "unknown key name", file: "bad.toml", content: "[keys.KeyBogus]\nplain = \"x\"\n"},
		{name: "unknown base", file: "base.toml", content: "base = \"qzerty\"\n"},
		{name: "multi rune glyph", file: "glyph.toml", content: "[keys.Q]\nplain = \"xy\"\n"},
		{name: "unsupported extension", file: "layout.ini", content: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.file)
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))
			_, err := layout.LoadFile(path)
			assert.Error(t, err)
		})
	}
}
