package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgallie/enigma/enigma"
)

func TestMachineConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	setDefaults()

	cfg, err := machineConfig()
	require.NoError(t, err)
	assert.Equal(t, enigma.DefaultConfig().Rotors, cfg.Rotors)
	assert.Equal(t, "B", cfg.Reflector)
	assert.Equal(t, []string{"AB", "CD"}, cfg.Plugboard)
	assert.Empty(t, cfg.Rings)
	assert.Empty(t, cfg.Positions)
}

func TestMachineConfigFromFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	setDefaults()

	path := filepath.Join(t.TempDir(), "enigma.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
rotors: [IV, II, V]
reflector: C
rings: bul
positions: BLA
plugboard: "av bs cg dl fu hz in ko mt pw"
`), 0600))
	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	cfg, err := machineConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"IV", "II", "V"}, cfg.Rotors)
	assert.Equal(t, "C", cfg.Reflector)
	assert.Equal(t, []int{1, 20, 11}, cfg.Rings)
	assert.Equal(t, []int{1, 11, 0}, cfg.Positions)
	assert.Len(t, cfg.Plugboard, 10)
	assert.Equal(t, "AV", cfg.Plugboard[0])

	m, err := enigma.NewMachine(cfg)
	require.NoError(t, err)
	assert.Equal(t, "BLA", m.PositionLetters())
}

func TestMachineConfigFromEnvironment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	setDefaults()
	viper.SetEnvPrefix("ENIGMA")
	viper.AutomaticEnv()
	t.Setenv("ENIGMA_ROTORS", "IV,II,V")
	t.Setenv("ENIGMA_PLUGBOARD", "av,bs cg")

	cfg, err := machineConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"IV", "II", "V"}, cfg.Rotors)
	assert.Equal(t, []string{"AV", "BS", "CG"}, cfg.Plugboard)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"I", "II", "III"}, splitList([]string{"I,II,III"}))
	assert.Equal(t, []string{"I", "II", "III"}, splitList([]string{"I", " II , III "}))
	assert.Empty(t, splitList([]string{",", ""}))
}

func TestMachineConfigRejectsBadLetters(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	setDefaults()

	viper.Set("positions", "A1A")
	_, err := machineConfig()
	assert.ErrorIs(t, err, enigma.ErrInvalidCharacter)

	viper.Set("positions", "")
	viper.Set("rings", "A-A")
	_, err = machineConfig()
	assert.ErrorIs(t, err, enigma.ErrInvalidCharacter)
}

func TestLampboard(t *testing.T) {
	var lb lampboard
	for _, c := range "BDZGOW" {
		lb.light(c)
	}
	assert.Equal(t, "BDZGO W", lb.lamps.String())
	lb.clear()
	assert.Equal(t, "", lb.lamps.String())
}
