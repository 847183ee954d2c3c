package enigma

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistorical(t *testing.T) {
	c := Historical()
	assert.Equal(t, []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII"}, c.RotorNames())
	assert.Equal(t, []string{"A", "B", "C"}, c.ReflectorNames())

	notches := map[string]string{
		"I": "Q", "II": "E", "III": "V", "IV": "J", "V": "Z",
		"VI": "MZ", "VII": "MZ", "VIII": "MZ",
	}
	for name, want := range notches {
		rt, ok := c.Rotor(name)
		require.True(t, ok, name)
		assert.Equal(t, want, rt.Notches(), name)
	}

	_, ok := c.Rotor("IX")
	assert.False(t, ok)
	_, ok = c.Reflector("D")
	assert.False(t, ok)
}

func TestAddReplaces(t *testing.T) {
	c := Historical()
	require.NoError(t, c.AddRotor("I", "AJDKSIRUXBLHWTMCQGZNPYFVOE", "A"))
	assert.Len(t, c.RotorNames(), 8)
	rt, _ := c.Rotor("I")
	assert.Equal(t, "A", rt.Notches())

	assert.ErrorIs(t, c.AddRotor("X", "ABC", "A"), ErrInvalidRotorWiring)
	assert.ErrorIs(t, c.AddReflector("X", "EKMFLGDQVZNTOWYHXUSPAIBRCJ"), ErrInvalidReflectorWiring)
}

const catalogYAML = `
historical: true
rotors:
  - name: Beta
    wiring: LEYJVCNIXWPBQMDRTAKZGFUHOS
    notches: ""
reflectors:
  - name: B-Thin
    wiring: ENKQAUYWJICOPBLMDXZVFTHRGS
`

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog(strings.NewReader(catalogYAML))
	require.NoError(t, err)
	assert.Contains(t, c.RotorNames(), "Beta")
	assert.Contains(t, c.RotorNames(), "III")
	assert.Contains(t, c.ReflectorNames(), "B-Thin")

	m, err := NewMachine(Config{Rotors: []string{"Beta", "II", "III"}, Reflector: "B-Thin"}, WithCatalog(c))
	require.NoError(t, err)
	cipher, err := m.EncodeMessage("ENIGMA")
	require.NoError(t, err)
	require.NoError(t, m.Reset())
	plain, err := m.EncodeMessage(cipher)
	require.NoError(t, err)
	assert.Equal(t, "ENIGMA", plain)
}

func TestLoadCatalogRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad rotor", "rotors:\n  - {name: X, wiring: ABC, notches: A}\n"},
		{"bad reflector", "reflectors:\n  - {name: X, wiring: EKMFLGDQVZNTOWYHXUSPAIBRCJ}\n"},
		{"unknown field", "rotor:\n  - {name: X}\n"},
		{"not yaml", "rotors: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0600))
	c, err := LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Contains(t, c.RotorNames(), "Beta")

	_, err = LoadCatalogFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	c, err = LoadCatalog(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, c.RotorNames())
}
