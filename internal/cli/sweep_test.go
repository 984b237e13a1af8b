package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/cbamquest/internal/cli"
	"github.com/rshade/cbamquest/internal/engine/batch"
)

type sweepDoc struct {
	RunID      string              `json:"run_id"`
	Results    []batch.SweepResult `json:"results"`
	Pagination struct {
		CurrentPage int  `json:"current_page"`
		TotalPages  int  `json:"total_pages"`
		TotalItems  int  `json:"total_items"`
		HasNext     bool `json:"has_next"`
	} `json:"pagination"`
	Progress batch.ProgressSnapshot `json:"progress"`
}

func runSweepJSON(t *testing.T, args ...string) sweepDoc {
	t.Helper()
	out, _, err := runCLI(t, append([]string{"sweep", "--output", "json"}, args...)...)
	require.NoError(t, err)

	var doc sweepDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	return doc
}

func TestSweep_DefaultPriceGrid(t *testing.T) {
	setupCLITest(t)

	doc := runSweepJSON(t)
	assert.NotEmpty(t, doc.RunID)
	require.Len(t, doc.Results, 21, "50..150 in steps of 5")
	assert.Equal(t, "€50/t", doc.Results[0].Name)
	assert.Equal(t, "€150/t", doc.Results[20].Name)
	assert.Equal(t, 21, doc.Progress.ProcessedItems)
	assert.Equal(t, 21, doc.Pagination.TotalItems)
}

func TestSweep_SortAndLimit(t *testing.T) {
	setupCLITest(t)

	doc := runSweepJSON(t, "--price-from", "50", "--price-to", "100", "--price-step", "10",
		"--sort", "carbon_price:desc", "--limit", "2")
	require.Len(t, doc.Results, 2)
	assert.InDelta(t, 100.0, doc.Results[0].Inputs.CarbonPrice, 1e-9)
	assert.InDelta(t, 90.0, doc.Results[1].Inputs.CarbonPrice, 1e-9)
	assert.Equal(t, 6, doc.Pagination.TotalItems)
}

func TestSweep_PageBased(t *testing.T) {
	setupCLITest(t)

	doc := runSweepJSON(t, "--price-from", "50", "--price-to", "100", "--price-step", "10",
		"--page", "2", "--page-size", "4")
	require.Len(t, doc.Results, 2)
	assert.Equal(t, 2, doc.Pagination.CurrentPage)
	assert.Equal(t, 2, doc.Pagination.TotalPages)
	assert.False(t, doc.Pagination.HasNext)
}

func TestSweep_ScenarioFile(t *testing.T) {
	dir := setupCLITest(t)
	path := filepath.Join(dir, "scenarios.yaml")
	content := `scenarios:
  - name: cautious
    recycled_content: 45
  - name: aggressive
    recycled_content: 95
    renewable_energy: 90
    process_efficiency: 80
    carbon_price: 150
    target_regions: [europe, uk]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	doc := runSweepJSON(t, "--scenarios", path, "--sort", "net_savings:desc")
	require.Len(t, doc.Results, 2)
	assert.Equal(t, "aggressive", doc.Results[0].Name)
	assert.Equal(t, "cautious", doc.Results[1].Name)
	assert.InDelta(t, 90.0, doc.Results[1].Inputs.CarbonPrice, 1e-9, "omitted fields use the base strategy")
}

func TestSweep_NDJSON(t *testing.T) {
	setupCLITest(t)

	out, _, err := runCLI(t, "sweep", "--price-from", "60", "--price-to", "80", "--price-step", "10",
		"--output", "ndjson")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		var r batch.SweepResult
		require.NoError(t, json.Unmarshal([]byte(line), &r))
	}
}

func TestSweep_Table(t *testing.T) {
	setupCLITest(t)

	out, _, err := runCLI(t, "sweep", "--price-from", "50", "--price-to", "60", "--price-step", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Sweep ")
	assert.Contains(t, out, "Net Savings")
	assert.Contains(t, out, "€55/t")
	assert.Contains(t, out, "Page 1 of 1 (3 scenarios)")

	out, _, err = runCLI(t, "sweep", "--offset", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "No results in range")
}

func TestSweep_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		target  error
		wantErr string
	}{
		{name: "conflicting sources", args: []string{"--scenarios", "x.yaml", "--price-step", "10"},
			target: cli.ErrConflictingSweep},
		{name: "reversed range", args: []string{"--price-from", "120", "--price-to", "60"},
			target: batch.ErrInvalidSweep},
		{name: "step too small", args: []string{"--price-step", "1e-7"},
			target: batch.ErrInvalidSweep},
		{name: "infinite bound", args: []string{"--price-to", "+Inf"},
			target: batch.ErrInvalidSweep},
		{name: "bad sort field", args: []string{"--sort", "colour"}, wantErr: "colour"},
		{name: "page without size", args: []string{"--page", "2"}, wantErr: "page"},
		{name: "missing scenario file", args: []string{"--scenarios", "nope.yaml"},
			wantErr: "opening scenario file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)
			_, _, err := runCLI(t, append([]string{"sweep"}, tt.args...)...)
			require.Error(t, err)
			if tt.target != nil {
				require.ErrorIs(t, err, tt.target)
			}
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
