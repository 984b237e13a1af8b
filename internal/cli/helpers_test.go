package cli_test

import (
	"bytes"
	"testing"

	"github.com/rshade/cbamquest/internal/cli"
	"github.com/rshade/cbamquest/internal/config"
)

// setupCLITest isolates the config home and working directory and resets the
// global config afterwards.
func setupCLITest(t *testing.T) string {
	t.Helper()
	t.Setenv("CBAMQUEST_LOG_LEVEL", "error")
	t.Setenv("CBAMQUEST_HOME", t.TempDir())
	t.Setenv("CBAMQUEST_OUTPUT_FORMAT", "")
	t.Setenv("CBAMQUEST_CARBON_PRICE", "")
	t.Setenv("CBAMQUEST_REGIONS", "")

	dir := t.TempDir()
	t.Chdir(dir)

	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return dir
}

// runCLI executes the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	// Each invocation loads the config afresh, as a new process would.
	config.ResetGlobalConfigForTest()
	return stdout.String(), stderr.String(), err
}
