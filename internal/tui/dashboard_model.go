package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/cbamquest/internal/chart"
	"github.com/rshade/cbamquest/internal/engine"
	"github.com/rshade/cbamquest/internal/greenops"
)

// DashboardState represents the state of the dashboard.
type DashboardState int

const (
	// DashboardStateReady is the interactive state.
	DashboardStateReady DashboardState = iota
	// DashboardStateQuitting is set once the user exits.
	DashboardStateQuitting
)

// Field is a focusable dashboard row.
type Field int

// Focusable rows in display order.
const (
	FieldRecycled Field = iota
	FieldRenewable
	FieldEfficiency
	FieldCarbonPrice
	FieldRegions
	fieldCount
)

// Slider steps.
const (
	percentStep      = 1.0
	percentLargeStep = 10.0
	priceLargeSteps  = 4

	defaultDashboardWidth  = 100
	defaultDashboardHeight = 40
	minBarWidth            = 10
	maxBarWidth            = 40
	barChrome              = 36 // cursor, label and value columns.
)

// DashboardKeyMap defines the dashboard key bindings.
type DashboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Decrease key.Binding
	Increase key.Binding
	BigDown  key.Binding
	BigUp    key.Binding
	Toggle   key.Binding
	Phase    key.Binding
	Reset    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultDashboardKeyMap returns the default bindings.
func DefaultDashboardKeyMap() DashboardKeyMap {
	return DashboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Decrease: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease")),
		Increase: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase")),
		BigDown:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H", "-10")),
		BigUp:    key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("L", "+10")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle market")),
		Phase:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "next phase")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k DashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Decrease, k.Increase, k.Toggle, k.Phase, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k DashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Decrease, k.Increase},
		{k.BigDown, k.BigUp, k.Toggle},
		{k.Phase, k.Reset, k.Help, k.Quit},
	}
}

// DashboardModel is the interactive strategy control panel. Every input
// change re-evaluates the strategy; nothing else is stored between frames.
type DashboardModel struct {
	ctx      context.Context
	state    DashboardState
	baseline float64
	initial  engine.StrategyInputs

	inputs engine.StrategyInputs
	eval   engine.Evaluation
	charts chart.Set

	focused      Field
	regionCursor int
	phase        int
	precision    int
	plain        bool

	keys DashboardKeyMap
	help help.Model
	bar  progress.Model

	width  int
	height int
}

// DashboardOption configures a DashboardModel.
type DashboardOption func(*DashboardModel)

// WithPrecision sets the decimals used for EUR figures.
func WithPrecision(p int) DashboardOption {
	return func(m *DashboardModel) { m.precision = p }
}

// WithWidth sets the initial terminal width before the first WindowSizeMsg.
func WithWidth(w int) DashboardOption {
	return func(m *DashboardModel) { m.width = w }
}

// WithPlainHeatmap disables heatmap cell shading.
func WithPlainHeatmap() DashboardOption {
	return func(m *DashboardModel) { m.plain = true }
}

// NewDashboardModel creates a dashboard starting from in, evaluated against
// baselineEmissions.
func NewDashboardModel(
	ctx context.Context,
	in engine.StrategyInputs,
	baselineEmissions float64,
	opts ...DashboardOption,
) *DashboardModel {
	m := &DashboardModel{
		ctx:       ctx,
		state:     DashboardStateReady,
		baseline:  baselineEmissions,
		initial:   in.Normalize(),
		precision: 2, //nolint:mnd // Default EUR precision.
		keys:      DefaultDashboardKeyMap(),
		help:      help.New(),
		bar: progress.New(
			progress.WithScaledGradient(chart.ColorShell, chart.ColorCoralDeep),
			progress.WithoutPercentage(),
		),
		width:  defaultDashboardWidth,
		height: defaultDashboardHeight,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.resize(m.width)
	m.apply(m.initial)
	return m
}

// Init implements tea.Model.
func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg processes keyboard input.
func (m *DashboardModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = DashboardStateQuitting
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.focused > 0 {
			m.focused--
		}

	case key.Matches(msg, m.keys.Down):
		if m.focused < fieldCount-1 {
			m.focused++
		}

	case key.Matches(msg, m.keys.Decrease):
		m.adjust(-1)

	case key.Matches(msg, m.keys.Increase):
		m.adjust(1)

	case key.Matches(msg, m.keys.BigDown):
		m.adjustLarge(-1)

	case key.Matches(msg, m.keys.BigUp):
		m.adjustLarge(1)

	case key.Matches(msg, m.keys.Toggle):
		if m.focused == FieldRegions {
			m.toggleRegion(engine.Regions()[m.regionCursor])
		}

	case key.Matches(msg, m.keys.Phase):
		m.phase = (m.phase + 1) % len(m.eval.Roadmap)

	case key.Matches(msg, m.keys.Reset):
		m.apply(m.initial)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// adjust moves the focused slider one step in dir. On the region row it
// moves the region cursor instead.
func (m *DashboardModel) adjust(dir int) {
	if m.focused == FieldRegions {
		n := len(engine.Regions())
		m.regionCursor = (m.regionCursor + dir + n) % n
		return
	}
	step := percentStep
	if m.focused == FieldCarbonPrice {
		step = engine.CarbonPriceStep
	}
	m.nudge(float64(dir) * step)
}

func (m *DashboardModel) adjustLarge(dir int) {
	if m.focused == FieldRegions {
		return
	}
	step := percentLargeStep
	if m.focused == FieldCarbonPrice {
		step = engine.CarbonPriceStep * priceLargeSteps
	}
	m.nudge(float64(dir) * step)
}

func (m *DashboardModel) nudge(delta float64) {
	in := m.inputs
	switch m.focused {
	case FieldRecycled:
		in.RecycledContent += delta
	case FieldRenewable:
		in.RenewableEnergy += delta
	case FieldEfficiency:
		in.ProcessEfficiency += delta
	case FieldCarbonPrice:
		in.CarbonPrice += delta
	case FieldRegions, fieldCount:
		return
	}
	m.apply(in)
}

func (m *DashboardModel) toggleRegion(r engine.Region) {
	in := m.inputs
	regions := make([]engine.Region, 0, len(in.TargetRegions)+1)
	found := false
	for _, have := range in.TargetRegions {
		if have == r {
			found = true
			continue
		}
		regions = append(regions, have)
	}
	if !found {
		regions = append(regions, r)
	}
	in.TargetRegions = regions
	m.apply(in)
}

// apply normalizes in and re-evaluates everything derived from it.
func (m *DashboardModel) apply(in engine.StrategyInputs) {
	m.eval = engine.Evaluate(m.ctx, in, m.baseline)
	m.inputs = m.eval.Inputs
	m.charts = chart.BuildSet(m.inputs, m.eval.Metrics)
	if m.phase >= len(m.eval.Roadmap) {
		m.phase = 0
	}
}

func (m *DashboardModel) resize(width int) {
	m.bar.Width = max(minBarWidth, min(maxBarWidth, width-barChrome))
	m.help.Width = width
}

// View implements tea.Model.
func (m *DashboardModel) View() string {
	if m.state == DashboardStateQuitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(RenderDashboardHeader())
	sb.WriteString("\n\n")
	sb.WriteString(m.renderControls())
	sb.WriteString("\n\n")

	left := lipgloss.JoinVertical(lipgloss.Left,
		RenderMetrics(m.eval.Metrics, m.precision),
		"",
		RenderFinancials(m.eval.Metrics),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		RenderEmissions(m.eval.Metrics),
		"",
		RenderAchievements(m.eval.Achievements),
	)
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		BoxStyle.Render(left), " ", BoxStyle.Render(right)))
	sb.WriteString("\n\n")

	sb.WriteString(RenderHeatmap(m.charts.Heatmap, m.plain))
	sb.WriteString("\n\n")
	sb.WriteString(RenderTrajectory(m.charts.Timeline))
	sb.WriteString("\n")
	sb.WriteString(RenderRoadmapPhase(m.eval.Roadmap[m.phase], m.phase, len(m.eval.Roadmap)))
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}

func (m *DashboardModel) renderControls() string {
	in := m.inputs
	priceFraction := (in.CarbonPrice - engine.MinCarbonPrice) / (engine.MaxCarbonPrice - engine.MinCarbonPrice)

	rows := []string{
		RenderSlider("Recycled Content", greenops.FormatPercent(in.RecycledContent, 0),
			in.RecycledContent/engine.MaxPercent, m.focused == FieldRecycled, m.bar),
		RenderSlider("Renewable Energy", greenops.FormatPercent(in.RenewableEnergy, 0),
			in.RenewableEnergy/engine.MaxPercent, m.focused == FieldRenewable, m.bar),
		RenderSlider("Process Efficiency", greenops.FormatPercent(in.ProcessEfficiency, 0),
			in.ProcessEfficiency/engine.MaxPercent, m.focused == FieldEfficiency, m.bar),
		RenderSlider("Carbon Price (€/t)", greenops.FormatFloat(in.CarbonPrice, 0),
			priceFraction, m.focused == FieldCarbonPrice, m.bar),
		RenderRegions(in.TargetRegions, m.regionCursor, m.focused == FieldRegions),
	}
	return strings.Join(rows, "\n") + "\n" + LabelStyle.Render("  Reduction ") + RenderReduction(m.eval.Metrics.ReductionPercent)
}

// Inputs returns the current normalized inputs.
func (m *DashboardModel) Inputs() engine.StrategyInputs {
	return m.inputs
}

// Evaluation returns the evaluation of the current inputs.
func (m *DashboardModel) Evaluation() engine.Evaluation {
	return m.eval
}

// Focused returns the focused row.
func (m *DashboardModel) Focused() Field {
	return m.focused
}

// Phase returns the selected roadmap phase.
func (m *DashboardModel) Phase() engine.RoadmapPhase {
	return m.eval.Roadmap[m.phase]
}
