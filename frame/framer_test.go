package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tollan/keywire/frame"
)

// bitsFor packs a byte into the 11 wire bits: start, data LSB first, odd
// parity, stop.
func bitsFor(b byte) []bool {
	out := make([]bool, 0, 11)
	out = append(out, false)
	ones := 0
	for i := 0; i < 8; i++ {
		bit := b&(1<<i) != 0
		if bit {
			ones++
		}
		out = append(out, bit)
	}
	out = append(out, ones%2 == 0)
	out = append(out, true)
	return out
}

func TestAddBitCompleteWord(t *testing.T) {
	var f frame.Framer

	// 0x01 is F9 on the wire: 0 1 0 0 0 0 0 0 0 0 1.
	seq := bitsFor(0x01)
	for i, bit := range seq[:len(seq)-1] {
		b, ok, err := f.AddBit(bit)
		require.NoError(t, err, "bit %d", i)
		assert.False(t, ok, "bit %d", i)
		assert.Zero(t, b, "bit %d", i)
	}
	b, ok, err := f.AddBit(seq[len(seq)-1])
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, byte(0x01), b)
}

func TestAddBitAllValues(t *testing.T) {
	var f frame.Framer
	for v := 0; v < 256; v++ {
		var got byte
		var done bool
		for _, bit := range bitsFor(byte(v)) {
			b, ok, err := f.AddBit(bit)
			require.NoError(t, err)
			if ok {
				got, done = b, true
			}
		}
		require.True(t, done, "value %#02x", v)
		assert.Equal(t, byte(v), got, "value %#02x", v)
	}
}

func TestAddBitStartBitResync(t *testing.T) {
	var f frame.Framer

	// A 1 while idle can't be a start bit.
	_, _, err := f.AddBit(true)
	assert.ErrorIs(t, err, frame.ErrBadStartBit)

	// The framer stays idle and accepts the next real word.
	var got byte
	var done bool
	for _, bit := range bitsFor(0xF5) {
		b, ok, err := f.AddBit(bit)
		require.NoError(t, err)
		if ok {
			got, done = b, true
		}
	}
	require.True(t, done)
	assert.Equal(t, byte(0xF5), got)
}

func TestAddBitParityError(t *testing.T) {
	var f frame.Framer

	seq := bitsFor(0x03)
	seq[9] = !seq[9]
	var sawErr error
	for _, bit := range seq {
		_, ok, err := f.AddBit(bit)
		assert.False(t, ok)
		if err != nil {
			sawErr = err
		}
	}
	assert.ErrorIs(t, sawErr, frame.ErrParity)

	// Fully reset afterwards.
	var done bool
	for _, bit := range bitsFor(0x1C) {
		_, ok, err := f.AddBit(bit)
		require.NoError(t, err)
		done = done || ok
	}
	assert.True(t, done)
}

func TestAddWord(t *testing.T) {
	type testCase struct {
		name string
		word uint16
		b    byte
		err  error
	}

	cases := []testCase{
		{name: "f9 make code", word: 0x0402, b: 0x01},
		{name: "zero byte", word: 0x0600, b: 0x00},
		{name: "bad start bit", word: 0x0403, err: frame.ErrBadStartBit},
		{name: "bad stop bit", word: 0x0002, err: frame.ErrBadStopBit},
		{name: "bad parity", word: 0x0602, err: frame.ErrParity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f frame.Framer
			b, err := f.AddWord(tc.word)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.b, b)
		})
	}
}

func TestClearDropsPartialWord(t *testing.T) {
	var f frame.Framer
	_, _, err := f.AddBit(false)
	require.NoError(t, err)
	_, _, err = f.AddBit(true)
	require.NoError(t, err)

	f.Clear()

	// After Clear a 1 is a framing fault again, not data bit 2.
	_, _, err = f.AddBit(true)
	assert.ErrorIs(t, err, frame.ErrBadStartBit)
}
