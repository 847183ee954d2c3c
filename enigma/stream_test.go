package enigma

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "HELLOWORLD", Normalize("Hello, World! 123"))
	assert.Equal(t, "", Normalize(" .,;1"))
}

func TestPipe(t *testing.T) {
	m, err := NewMachine(bareConfig())
	require.NoError(t, err)

	out, err := io.ReadAll(m.Pipe(strings.NewReader("aa a\naa!"), 0))
	require.NoError(t, err)
	assert.Equal(t, "BDZGO", string(out))
	assert.Equal(t, "AAF", m.PositionLetters())
}

func TestPipeGroups(t *testing.T) {
	m, err := NewMachine(bareConfig())
	require.NoError(t, err)

	out, err := io.ReadAll(m.Pipe(strings.NewReader(strings.Repeat("A", 12)), 5))
	require.NoError(t, err)
	groups := strings.Split(string(out), " ")
	require.Len(t, groups, 3)
	assert.Equal(t, "BDZGO", groups[0])
	assert.Len(t, groups[1], 5)
	assert.Len(t, groups[2], 2)
}

func TestPipeRoundTrip(t *testing.T) {
	m, err := NewMachine(DefaultConfig())
	require.NoError(t, err)
	msg := "Attack at dawn. Bring the maps!"

	cipher, err := io.ReadAll(m.Pipe(strings.NewReader(msg), 5))
	require.NoError(t, err)
	require.NoError(t, m.Reset())
	plain, err := io.ReadAll(m.Pipe(strings.NewReader(string(cipher)), 0))
	require.NoError(t, err)
	assert.Equal(t, Normalize(msg), string(plain))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestPipeErrors(t *testing.T) {
	m, err := NewMachine(bareConfig())
	require.NoError(t, err)
	_, err = io.ReadAll(m.Pipe(failingReader{}, 0))
	assert.EqualError(t, err, "boom")

	_, err = io.ReadAll(New().Pipe(strings.NewReader("A"), 0))
	assert.ErrorIs(t, err, ErrNotConfigured)
}
