package scancode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tollan/keywire/keycode"
	"github.com/tollan/keywire/scancode"
)

func TestSet2Basic(t *testing.T) {
	type testCase struct {
		name  string
		steps []step
	}

	cases := []testCase{
		{
			name: "f9 down up",
			steps: []step{
				{b: 0x01, ev: down(keycode.KeyF9)},
				{b: 0xF0},
				{b: 0x01, ev: up(keycode.KeyF9)},
			},
		},
		{
			name: "letter with release marker",
			steps: []step{
				{b: 0x1C, ev: down(keycode.KeyA)},
				{b: 0xF0},
				{b: 0x1C, ev: up(keycode.KeyA)},
			},
		},
		{
			name: "extended home",
			steps: []step{
				{b: 0xE0},
				{b: 0x6C, ev: down(keycode.KeyHome)},
				{b: 0xE0},
				{b: 0xF0},
				{b: 0x6C, ev: up(keycode.KeyHome)},
			},
		},
		{
			name: "right control",
			steps: []step{
				{b: 0xE0},
				{b: 0x14, ev: down(keycode.KeyRControl)},
				{b: 0xE0},
				{b: 0xF0},
				{b: 0x14, ev: up(keycode.KeyRControl)},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runSteps(t, scancode.NewSet2(), tc.steps)
		})
	}
}

func TestSet2PrintScreen(t *testing.T) {
	// The fake shift bytes around Print Screen carry no key of their own
	// and are swallowed without an event.
	runSteps(t, scancode.NewSet2(), []step{
		{b: 0xE0},
		{b: 0x12},
		{b: 0xE0},
		{b: 0x7C, ev: down(keycode.KeyPrintScreen)},
		{b: 0xE0},
		{b: 0xF0},
		{b: 0x7C, ev: up(keycode.KeyPrintScreen)},
		{b: 0xE0},
		{b: 0xF0},
		{b: 0x12},
	})
}

func TestSet2Pause(t *testing.T) {
	runSteps(t, scancode.NewSet2(), []step{
		{b: 0xE1},
		{b: 0x14},
		{b: 0x77},
		{b: 0xE1},
		{b: 0xF0},
		{b: 0x14},
		{b: 0xF0},
		{b: 0x77, ev: shot(keycode.KeyPauseBreak)},
	})
}

func TestSet2BrokenPauseRecovers(t *testing.T) {
	runSteps(t, scancode.NewSet2(), []step{
		{b: 0xE1},
		{b: 0x14},
		{b: 0x1C, err: scancode.ErrBadSequence},
		{b: 0x1C, ev: down(keycode.KeyA)},
	})
}

func TestSet2StatusReports(t *testing.T) {
	s := scancode.NewSet2()
	runSteps(t, s, []step{
		{b: 0xAA, ev: shot(keycode.KeyPowerOnTestOk)},
		{b: 0x00, ev: shot(keycode.KeyTooManyKeys)},
		// Status codes are single shot even behind a release marker.
		{b: 0xF0},
		{b: 0xAA, ev: shot(keycode.KeyPowerOnTestOk)},
	})
}

func TestSet2UnknownCode(t *testing.T) {
	s := scancode.NewSet2()
	_, err := s.AdvanceState(0x02)
	var uc scancode.UnknownCodeError
	require.ErrorAs(t, err, &uc)
	assert.Equal(t, byte(0x02), uc.Byte)
	assert.False(t, uc.Extended)

	// The release flag does not survive the error.
	_, err = s.AdvanceState(0xF0)
	require.NoError(t, err)
	_, err = s.AdvanceState(0x02)
	require.Error(t, err)
	ev, err := s.AdvanceState(0x1C)
	require.NoError(t, err)
	assert.Equal(t, down(keycode.KeyA), ev)
}

func TestSet2ResetDropsPrefixes(t *testing.T) {
	s := scancode.NewSet2()
	_, err := s.AdvanceState(0xE0)
	require.NoError(t, err)
	s.Reset()
	ev, err := s.AdvanceState(0x1C)
	require.NoError(t, err)
	assert.Equal(t, down(keycode.KeyA), ev)
}

func TestSet2ReleaseMirrorsMake(t *testing.T) {
	// Every mapped make code, plain and extended, must decode as Down and
	// its F0-marked break form as Up of the same key. Status reports are
	// single-shot and the fake shift is swallowed, so neither pairs up.
	makes := 0
	for b := 0; b < 256; b++ {
		if b == 0xE0 || b == 0xE1 || b == 0xF0 {
			continue
		}
		for _, ext := range []bool{false, true} {
			s := scancode.NewSet2()
			if ext {
				_, err := s.AdvanceState(0xE0)
				require.NoError(t, err)
			}
			ev, err := s.AdvanceState(byte(b))
			if err != nil || ev == nil || ev.State != keycode.StateDown {
				continue
			}
			makes++

			s = scancode.NewSet2()
			if ext {
				_, err := s.AdvanceState(0xE0)
				require.NoError(t, err)
			}
			_, err = s.AdvanceState(0xF0)
			require.NoError(t, err)
			rel, err := s.AdvanceState(byte(b))
			require.NoError(t, err, "break %#02x ext=%v", b, ext)
			require.NotNil(t, rel, "break %#02x ext=%v", b, ext)
			assert.Equal(t, ev.Code, rel.Code, "break %#02x ext=%v", b, ext)
			assert.Equal(t, keycode.StateUp, rel.State, "break %#02x ext=%v", b, ext)
		}
	}
	assert.Equal(t, 92+27, makes)
}

func TestSet2CodeSpaceSize(t *testing.T) {
	known := 0
	for b := 0; b < 256; b++ {
		if b == 0xE0 || b == 0xE1 || b == 0xF0 {
			continue
		}
		s := scancode.NewSet2()
		if _, err := s.AdvanceState(byte(b)); err == nil {
			known++
		}
	}
	assert.Equal(t, 94, known)
}
