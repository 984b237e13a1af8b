package tui

import (
	"context"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/cbamquest/internal/engine"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *DashboardModel, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func newTestDashboard() *DashboardModel {
	return NewDashboardModel(context.Background(), engine.DefaultInputs(), engine.BaselineEmissions)
}

func TestNewDashboardModel(t *testing.T) {
	m := newTestDashboard()

	require.NotNil(t, m)
	assert.Equal(t, DashboardStateReady, m.state)
	assert.Equal(t, FieldRecycled, m.Focused())
	assert.Equal(t, engine.DefaultInputs(), m.Inputs())
	assert.Equal(t, engine.ComputeMetrics(engine.DefaultInputs(), engine.BaselineEmissions), m.Evaluation().Metrics)
	assert.Equal(t, engine.PhaseOneLabel, m.Phase().Label)
	assert.Nil(t, m.Init())
}

func TestNewDashboardModel_NormalizesInputs(t *testing.T) {
	m := NewDashboardModel(context.Background(), engine.StrategyInputs{
		RecycledContent: 140,
		CarbonPrice:     12,
	}, engine.BaselineEmissions)

	assert.InDelta(t, 100.0, m.Inputs().RecycledContent, 1e-9)
	assert.InDelta(t, engine.MinCarbonPrice, m.Inputs().CarbonPrice, 1e-9)
}

func TestDashboardModel_Navigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
		want Field
	}{
		{name: "down once", keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyDown}}, want: FieldRenewable},
		{name: "vim down", keys: []tea.Msg{keyRunes("j"), keyRunes("j")}, want: FieldEfficiency},
		{name: "up at top stays", keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyUp}}, want: FieldRecycled},
		{
			name: "down past bottom stays",
			keys: []tea.Msg{
				tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown},
				tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown},
			},
			want: FieldRegions,
		},
		{name: "down then up", keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyDown}, keyRunes("k")}, want: FieldRecycled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestDashboard()
			send(m, tt.keys...)
			assert.Equal(t, tt.want, m.Focused())
		})
	}
}

func TestDashboardModel_Sliders(t *testing.T) {
	right := tea.KeyMsg{Type: tea.KeyRight}
	left := tea.KeyMsg{Type: tea.KeyLeft}
	down := tea.KeyMsg{Type: tea.KeyDown}

	tests := []struct {
		name  string
		keys  []tea.Msg
		check func(t *testing.T, in engine.StrategyInputs)
	}{
		{
			name: "recycled steps by one",
			keys: []tea.Msg{right, right},
			check: func(t *testing.T, in engine.StrategyInputs) {
				assert.InDelta(t, 62.0, in.RecycledContent, 1e-9)
			},
		},
		{
			name: "renewable large step",
			keys: []tea.Msg{down, keyRunes("L")},
			check: func(t *testing.T, in engine.StrategyInputs) {
				assert.InDelta(t, 50.0, in.RenewableEnergy, 1e-9)
			},
		},
		{
			name: "efficiency decreases",
			keys: []tea.Msg{down, down, left},
			check: func(t *testing.T, in engine.StrategyInputs) {
				assert.InDelta(t, 49.0, in.ProcessEfficiency, 1e-9)
			},
		},
		{
			name: "carbon price steps by five",
			keys: []tea.Msg{down, down, down, right},
			check: func(t *testing.T, in engine.StrategyInputs) {
				assert.InDelta(t, 95.0, in.CarbonPrice, 1e-9)
			},
		},
		{
			name: "carbon price clamps at maximum",
			keys: []tea.Msg{down, down, down, keyRunes("L"), keyRunes("L"), keyRunes("L")},
			check: func(t *testing.T, in engine.StrategyInputs) {
				assert.InDelta(t, engine.MaxCarbonPrice, in.CarbonPrice, 1e-9)
			},
		},
		{
			name: "percent clamps at zero",
			keys: []tea.Msg{
				keyRunes("H"), keyRunes("H"), keyRunes("H"), keyRunes("H"),
				keyRunes("H"), keyRunes("H"), keyRunes("H"),
			},
			check: func(t *testing.T, in engine.StrategyInputs) {
				assert.InDelta(t, 0.0, in.RecycledContent, 1e-9)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestDashboard()
			send(m, tt.keys...)
			tt.check(t, m.Inputs())
			assert.Equal(t, engine.ComputeMetrics(m.Inputs(), engine.BaselineEmissions), m.Evaluation().Metrics,
				"metrics follow every change")
		})
	}
}

func TestDashboardModel_Regions(t *testing.T) {
	m := newTestDashboard()
	for range 4 {
		send(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	require.Equal(t, FieldRegions, m.Focused())

	// Europe is selected by default; toggling removes it.
	send(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Empty(t, m.Inputs().TargetRegions)

	// Move to the next region and add it.
	send(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []engine.Region{engine.Regions()[1]}, m.Inputs().TargetRegions)

	// The cursor wraps.
	send(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeySpace})
	last := engine.Regions()[len(engine.Regions())-1]
	assert.Equal(t, []engine.Region{engine.Regions()[1], last}, m.Inputs().TargetRegions)

	// Regions never move the metrics.
	assert.Equal(t, engine.ComputeMetrics(engine.DefaultInputs(), engine.BaselineEmissions), m.Evaluation().Metrics)
}

func TestDashboardModel_ToggleIgnoredOffRegionRow(t *testing.T) {
	m := newTestDashboard()
	send(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, engine.DefaultInputs().TargetRegions, m.Inputs().TargetRegions)
}

func TestDashboardModel_PhaseCycles(t *testing.T) {
	m := newTestDashboard()
	labels := engine.PhaseLabels()

	for i := 1; i <= len(labels); i++ {
		send(m, keyRunes("p"))
		assert.Equal(t, labels[i%len(labels)], m.Phase().Label)
	}
}

func TestDashboardModel_Reset(t *testing.T) {
	m := newTestDashboard()
	send(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}, keyRunes("r"))
	assert.Equal(t, engine.DefaultInputs(), m.Inputs())
}

func TestDashboardModel_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{name: "q", msg: keyRunes("q")},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestDashboard()
			cmd := send(m, tt.msg)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Equal(t, DashboardStateQuitting, m.state)
			assert.Empty(t, m.View())
		})
	}
}

func TestDashboardModel_WindowSize(t *testing.T) {
	m := newTestDashboard()
	send(m, tea.WindowSizeMsg{Width: 60, Height: 30})

	assert.Equal(t, 60, m.width)
	assert.Equal(t, 30, m.height)
	assert.Equal(t, minBarWidth+14, m.bar.Width)

	send(m, tea.WindowSizeMsg{Width: 20, Height: 10})
	assert.Equal(t, minBarWidth, m.bar.Width)
}

func TestDashboardModel_View(t *testing.T) {
	m := NewDashboardModel(context.Background(), engine.DefaultInputs(), engine.BaselineEmissions,
		WithPrecision(1), WithPlainHeatmap())
	view := m.View()

	for _, want := range []string{
		"CBAM QUEST",
		"Recycled Content",
		"Carbon Price",
		"Target Markets",
		"[x] Europe",
		"CBAM Impact Heatmap",
		"Financial Impact",
		"Net Savings",
		"/year",
		"Achievements",
		"TIER 1 CBAM DEFENDER",
		engine.PhaseOneLabel,
		"quit",
	} {
		assert.Contains(t, view, want)
	}
}

func TestDashboardModel_HelpToggle(t *testing.T) {
	m := newTestDashboard()
	assert.False(t, m.help.ShowAll)
	send(m, keyRunes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "reset")
}

func TestNewDashboardModel_WithWidth(t *testing.T) {
	m := NewDashboardModel(context.Background(), engine.DefaultInputs(), engine.BaselineEmissions, WithWidth(50))
	assert.Equal(t, 50, m.width)
	assert.Equal(t, 14, m.bar.Width)
}

func TestTerminalWidth_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, 80, TerminalWidth(f, 80))
	assert.False(t, IsTerminal(f))
}
