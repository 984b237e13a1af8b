package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/cbamquest/internal/config"
)

// newDefaultTarget returns a Config with known non-zero values so tests can
// verify that absent overlay keys leave the original values intact.
func newDefaultTarget() *config.Config {
	cfg := config.Default()
	cfg.Logging.Format = "json"
	return cfg
}

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  default_format: json
  precision: 4
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "json", target.Output.DefaultFormat)
	assert.Equal(t, 4, target.Output.Precision)

	assert.Equal(t, "info", target.Logging.Level)
	assert.Equal(t, "json", target.Logging.Format)
	assert.InDelta(t, 90.0, target.Defaults.CarbonPrice, 1e-9)
}

func TestShallowMergeYAML_DefaultsSectionReplacedWhole(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
defaults:
  carbon_price: 120
  target_regions: [Asia, UK]
baseline_emissions: 80000
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.InDelta(t, 120.0, target.Defaults.CarbonPrice, 1e-9)
	assert.Equal(t, []string{"Asia", "UK"}, target.Defaults.TargetRegions)
	assert.InDelta(t, 0.0, target.Defaults.RecycledContent, 1e-9, "absent fields in a replaced section are zero")
	assert.InDelta(t, 80000.0, target.BaselineEmissions, 1e-9)
	assert.Equal(t, config.OutputFormatTable, target.Output.DefaultFormat)
}

func TestShallowMergeYAML_EmptyOverlayFile(t *testing.T) {
	for name, content := range map[string]string{
		"empty":        "",
		"comment only": "# this file is intentionally empty\n# just comments\n",
	} {
		t.Run(name, func(t *testing.T) {
			target := newDefaultTarget()
			original := *target

			require.NoError(t, config.ShallowMergeYAML(target, writeOverlay(t, content)))

			assert.Equal(t, original.Output, target.Output)
			assert.Equal(t, original.Logging, target.Logging)
			assert.Equal(t, original.Defaults, target.Defaults)
		})
	}
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("corrupted yaml", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "{{{{not valid yaml at all"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing overlay YAML")
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), "/nonexistent/path/overlay.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading overlay file")
	})

	t.Run("nil target", func(t *testing.T) {
		require.Error(t, config.ShallowMergeYAML(nil, writeOverlay(t, "output: {}")))
	})

	t.Run("future schema", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "schema_version: 2.0.0\n"))
		require.ErrorIs(t, err, config.ErrUnsupportedSchema)
	})
}

func TestShallowMergeYAML_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		overlay string
		field   string
	}{
		{"precision overflow", "output:\n  default_format: table\n  precision: 19\n", "output.precision"},
		{"negative precision", "output:\n  default_format: table\n  precision: -1\n", "output.precision"},
		{"negative baseline", "baseline_emissions: -5\n", "baseline_emissions"},
		{"unknown format", "output:\n  default_format: xml\n  precision: 2\n", "output.default_format"},
		{"price outside the slider", "defaults:\n  carbon_price: 10\n  target_regions: [Europe]\n", "defaults.carbon_price"},
		{"bad log level", "logging:\n  level: loud\n", "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, tt.overlay))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
plugins:
  aws: {}
logging:
  level: debug
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "debug", target.Logging.Level)
}
