package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubHome points the home and working directories at fresh temp dirs so
// no real config or .env file is read.
func stubHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv(EnvHome, "")
	t.Setenv(EnvDotEnvFile, "")
	for _, k := range []string{EnvOutputFormat, EnvCarbonPrice, EnvRegions, EnvLogLevel, EnvLogFormat} {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)
	return home
}

func TestGlobalConfig(t *testing.T) {
	stubHome(t)

	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)

	cfg2 := GetGlobalConfig()
	assert.Same(t, cfg, cfg2)

	ResetGlobalConfigForTest()
	cfg3 := GetGlobalConfig()
	assert.NotSame(t, cfg, cfg3)

	replacement := Default()
	SetGlobalConfig(replacement)
	assert.Same(t, replacement, GetGlobalConfig())
}

func TestConfigGetters(t *testing.T) {
	stubHome(t)

	cfg := GetGlobalConfig()
	cfg.Output.DefaultFormat = "json"
	cfg.Output.Precision = 4
	cfg.BaselineEmissions = 1000

	assert.Equal(t, "json", GetDefaultOutputFormat())
	assert.Equal(t, 4, GetOutputPrecision())
	assert.InDelta(t, 1000.0, GetBaselineEmissions(), 1e-9)
	assert.Equal(t, "info", GetLoggingConfig().Level)
}

func TestEnsureConfigDir(t *testing.T) {
	home := stubHome(t)

	require.NoError(t, EnsureConfigDir())

	stat, err := os.Stat(filepath.Join(home, ".cbamquest"))
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestGetConfigDir_HomeOverride(t *testing.T) {
	stubHome(t)
	custom := t.TempDir()
	t.Setenv(EnvHome, custom)

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, custom, dir)
}

func TestEnsureLogDir(t *testing.T) {
	stubHome(t)
	tmpDir := t.TempDir()

	cfg := GetGlobalConfig()
	cfg.Logging.File = filepath.Join(tmpDir, "logs", "subdir", "test.log")

	require.NoError(t, EnsureLogDir())

	stat, err := os.Stat(filepath.Join(tmpDir, "logs", "subdir"))
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestEnsureLogDirError(t *testing.T) {
	stubHome(t)

	blocker := filepath.Join(t.TempDir(), "test-file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	GetGlobalConfig().Logging.File = filepath.Join(blocker, "subdir", "test.log")
	assert.Error(t, EnsureLogDir())
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "json"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, "stderr", got.Output)
	assert.Equal(t, "debug", got.Level)

	lc.File = "/tmp/cbamquest.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, "file", got.Output)
	assert.Equal(t, "/tmp/cbamquest.log", got.File)
}
