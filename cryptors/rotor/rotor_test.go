package rotor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgallie/enigma/cryptors"
)

func rotorI(t *testing.T) Type {
	t.Helper()
	rt, err := NewType("I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", "Q")
	require.NoError(t, err)
	return rt
}

func TestNewType(t *testing.T) {
	rt := rotorI(t)
	assert.Equal(t, "I", rt.Name)
	assert.Equal(t, "EKMFLGDQVZNTOWYHXUSPAIBRCJ", rt.Wiring())
	assert.Equal(t, "Q", rt.Notches())

	rt, err := NewType("VI", "JPGVOUMFYQBENHZRDKASXLICTW", "ZM")
	require.NoError(t, err)
	assert.Equal(t, "MZ", rt.Notches())

	_, err = NewType("bad", "EKMFLGDQVZNTOWYHXUSPAIBRCE", "Q")
	assert.ErrorIs(t, err, cryptors.ErrInvalidRotorWiring)

	_, err = NewType("bad", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", "q")
	assert.ErrorIs(t, err, cryptors.ErrInvalidRotorWiring)
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name          string
		ring, pos, in int
		want          rune
	}{
		{"identity alignment", 0, 0, 0, 'E'},
		{"identity alignment B", 0, 0, 1, 'K'},
		{"position B", 0, 1, 0, 'J'},
		{"ring B", 1, 0, 0, 'K'},
		{"ring and position cancel", 3, 3, 0, 'E'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(rotorI(t), tt.ring, tt.pos)
			out := r.EncodeForward(tt.in)
			assert.Equal(t, tt.want, cryptors.FromOffset(out))
			assert.Equal(t, tt.in, r.EncodeBackward(out))
		})
	}
}

func TestEncodeIsBijective(t *testing.T) {
	rt := rotorI(t)
	for ring := 0; ring < cryptors.AlphabetSize; ring += 5 {
		for pos := 0; pos < cryptors.AlphabetSize; pos += 3 {
			r := New(rt, ring, pos)
			seen := make(map[int]bool)
			for in := 0; in < cryptors.AlphabetSize; in++ {
				out := r.EncodeForward(in)
				require.GreaterOrEqual(t, out, 0)
				require.Less(t, out, cryptors.AlphabetSize)
				seen[out] = true
				require.Equal(t, in, r.EncodeBackward(out))
			}
			assert.Len(t, seen, cryptors.AlphabetSize)
		}
	}
}

func TestAdvanceAndNotch(t *testing.T) {
	r := New(rotorI(t), 0, 15)
	assert.False(t, r.AtNotch())
	r.Advance()
	assert.Equal(t, 16, r.Position())
	assert.True(t, r.AtNotch())
	r.Advance()
	assert.False(t, r.AtNotch())

	r.SetPosition(25)
	r.Advance()
	assert.Equal(t, 0, r.Position())
}

func TestNewReducesSettings(t *testing.T) {
	r := New(rotorI(t), 27, -1)
	assert.Equal(t, 1, r.Ring())
	assert.Equal(t, 25, r.Position())
	assert.Equal(t, "I(ring B, pos Z)", r.String())
}
