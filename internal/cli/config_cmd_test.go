package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/cbamquest/internal/config"
)

func TestConfigInit(t *testing.T) {
	setupCLITest(t)
	home := os.Getenv(config.EnvHome)

	out, _, err := runCLI(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")
	assert.Contains(t, out, filepath.Join(home, "config.yaml"))

	_, statErr := os.Stat(filepath.Join(home, "config.yaml"))
	require.NoError(t, statErr)

	_, _, err = runCLI(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, _, err = runCLI(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigSetGet(t *testing.T) {
	setupCLITest(t)

	out, _, err := runCLI(t, "config", "set", config.KeyCarbonPrice, "110")
	require.NoError(t, err)
	assert.Contains(t, out, "Set defaults.carbon_price = 110")

	out, _, err = runCLI(t, "config", "get", config.KeyCarbonPrice)
	require.NoError(t, err)
	assert.Equal(t, "110\n", out)

	out, _, err = runCLI(t, "config", "set", config.KeyTargetRegions, "Europe, UK")
	require.NoError(t, err)
	assert.Contains(t, out, "Europe,UK")

	out, _, err = runCLI(t, "metrics", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"carbon_price": 110`, "metrics starts from the saved defaults")
}

func TestConfigSet_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		target error
	}{
		{"unknown key", []string{"plugins.aws", "x"}, config.ErrUnknownKey},
		{"not a number", []string{config.KeyRecycledContent, "lots"}, config.ErrInvalidConfig},
		{"out of range", []string{config.KeyCarbonPrice, "400"}, config.ErrInvalidConfig},
		{"unknown region", []string{config.KeyTargetRegions, "Atlantis"}, config.ErrInvalidConfig},
		{"bad format", []string{config.KeyOutputFormat, "xml"}, config.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)
			_, _, err := runCLI(t, append([]string{"config", "set"}, tt.args...)...)
			require.ErrorIs(t, err, tt.target)

			_, statErr := os.Stat(filepath.Join(os.Getenv(config.EnvHome), "config.yaml"))
			assert.True(t, os.IsNotExist(statErr), "rejected values are never written")
		})
	}
}

func TestConfigGet_UnknownKey(t *testing.T) {
	setupCLITest(t)

	_, _, err := runCLI(t, "config", "get", "nope")
	require.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestConfigList(t *testing.T) {
	setupCLITest(t)

	out, _, err := runCLI(t, "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "KEY")
	for _, key := range config.Keys() {
		assert.Contains(t, out, key)
	}

	out, _, err = runCLI(t, "config", "list", "--output", "json")
	require.NoError(t, err)
	var values map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &values))
	assert.Equal(t, "90", values[config.KeyCarbonPrice])
	assert.Equal(t, "Europe", values[config.KeyTargetRegions])
}

func TestConfigValidate(t *testing.T) {
	setupCLITest(t)

	out, _, err := runCLI(t, "config", "validate", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Default strategy:")
	assert.Contains(t, out, "Carbon price: €90/t")
}

func TestConfigValidate_InvalidEnvOverride(t *testing.T) {
	setupCLITest(t)
	t.Setenv(config.EnvOutputFormat, "yaml")

	_, _, err := runCLI(t, "config", "validate")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestConfigValidate_InvalidFile(t *testing.T) {
	setupCLITest(t)
	home := os.Getenv(config.EnvHome)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("output:\n  default_format: table\n  precision: 19\n"), 0o600))

	_, _, err := runCLI(t, "config", "validate")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "output.precision")

	out, _, err := runCLI(t, "metrics", "--output", "json")
	require.NoError(t, err, "other commands fall back to the defaults")
	assert.Contains(t, out, "\"carbon_price\"")
}
