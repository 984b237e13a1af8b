package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/cbamquest/internal/chart"
	"github.com/rshade/cbamquest/internal/engine"
	"github.com/rshade/cbamquest/internal/greenops"
)

// Layout constants for the dashboard panels.
const (
	sliderLabelWidth  = 22
	sliderValueWidth  = 8
	heatmapLabelWidth = 16
	heatmapCellWidth  = 7
	financePrecision  = 1
	reductionDecimals = 1
	phaseActionIndent = "  • "
)

// RenderDashboardHeader renders the dashboard title bar.
func RenderDashboardHeader() string {
	return TitleStyle.Render("CBAM QUEST: Aluminum Decarbonization")
}

// RenderSlider renders one slider row. fraction positions the bar in [0,1].
func RenderSlider(label, value string, fraction float64, focused bool, bar progress.Model) string {
	cursor := "  "
	labelStyle := LabelStyle
	if focused {
		cursor = IconCursor + " "
		labelStyle = FocusStyle
	}
	return fmt.Sprintf("%s%s %s %s",
		cursor,
		labelStyle.Width(sliderLabelWidth).Render(label),
		bar.ViewAs(fraction),
		ValueStyle.Width(sliderValueWidth).Align(lipgloss.Right).Render(value),
	)
}

// RenderRegions renders the target region selector. cursor is only shown
// while the row is focused.
func RenderRegions(selected []engine.Region, cursor int, focused bool) string {
	in := engine.StrategyInputs{TargetRegions: selected}

	prefix := "  "
	labelStyle := LabelStyle
	if focused {
		prefix = IconCursor + " "
		labelStyle = FocusStyle
	}

	parts := make([]string, 0, len(engine.Regions()))
	for i, r := range engine.Regions() {
		box := IconUnchecked
		if in.HasRegion(r) {
			box = IconChecked
		}
		item := box + " " + string(r)
		if focused && i == cursor {
			item = FocusStyle.Underline(true).Render(item)
		} else {
			item = ValueStyle.Render(item)
		}
		parts = append(parts, item)
	}
	return prefix + labelStyle.Width(sliderLabelWidth).Render("Target Markets") + " " + strings.Join(parts, "  ")
}

// RenderMetrics renders the footprint, cost and reduction summary.
func RenderMetrics(m engine.DerivedMetrics, precision int) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("Strategy Impact"))
	sb.WriteString("\n")
	writeField(&sb, "Carbon Footprint", greenops.FormatFootprint(m.CarbonFootprint))
	writeField(&sb, "Implementation Cost", greenops.FormatEuroMillions(m.ImplementationCost, precision))
	writeField(&sb, "CBAM Fee Reduction", greenops.FormatEuroMillions(m.CBAMFeeReduction, precision))
	writeField(&sb, "Decarbonization", greenops.FormatPercent(m.DecarbonizationProgress, 0))
	return strings.TrimRight(sb.String(), "\n")
}

// RenderFinancials renders the annual fee comparison and net savings.
// Positive net savings are green, losses red.
func RenderFinancials(m engine.DerivedMetrics) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("Financial Impact"))
	sb.WriteString("\n")
	writeField(&sb, "CBAM Fees", fmt.Sprintf("%s %s %s",
		greenops.FormatEuroMillions(m.BaselineFees, financePrecision),
		IconArrowRight,
		greenops.FormatEuroMillions(m.ProjectedFees, financePrecision)))
	writeField(&sb, "Implementation", greenops.FormatEuroMillions(m.ImplementationCost, financePrecision))

	savings := greenops.FormatEuroMillions(m.NetSavings, financePrecision) + "/year"
	style := OKStyle
	if m.NetSavings < 0 {
		style = CriticalStyle
	}
	sb.WriteString(LabelStyle.Render("Net Savings: "))
	sb.WriteString(style.Render(savings))
	return sb.String()
}

// RenderEmissions renders baseline against projected emissions with the
// reduction annotation and its everyday equivalent.
func RenderEmissions(m engine.DerivedMetrics) string {
	bars := chart.ScenarioBars(m.BaselineEmissions, m.ProjectedEmissions)

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(bars.Title))
	sb.WriteString("\n")
	writeField(&sb, chart.BaselineLabel, greenops.FormatTonnes(m.BaselineEmissions))
	writeField(&sb, chart.ProjectedLabel, greenops.FormatTonnes(m.ProjectedEmissions))
	sb.WriteString(OKStyle.Render(bars.Annotation))

	if eq := greenops.AvoidedEmissions(m.BaselineEmissions - m.ProjectedEmissions); !eq.IsEmpty {
		sb.WriteString("\n")
		sb.WriteString(SubtleStyle.Render(eq.DisplayText))
	}
	return sb.String()
}

// RenderTrajectory renders the milestone emissions index as a sparkline
// followed by the per-year values.
func RenderTrajectory(t chart.Timeline) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("Decarbonization Roadmap"))
	sb.WriteString("\n")
	sb.WriteString(FocusStyle.Render(RenderSparkline(t.Reductions, 0, 100))) //nolint:mnd // Index scale.
	sb.WriteString("  ")

	points := make([]string, len(t.Years))
	for i, y := range t.Years {
		color := lipgloss.Color(t.Colors[i%len(t.Colors)])
		points[i] = lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("%d:%.1f", y, t.Reductions[i]))
	}
	sb.WriteString(strings.Join(points, " "))
	return sb.String()
}

// RenderHeatmap renders the impact grid with every cell shaded by the grid's
// color scale. With plain set, cells are uncolored.
func RenderHeatmap(g chart.Grid, plain bool) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(g.Title))
	sb.WriteString("\n")

	sb.WriteString(strings.Repeat(" ", heatmapLabelWidth))
	for _, c := range g.Cols {
		sb.WriteString(LabelStyle.Width(heatmapCellWidth).Align(lipgloss.Center).Render(c))
	}
	sb.WriteString("\n")

	for r, row := range g.Rows {
		sb.WriteString(LabelStyle.Width(heatmapLabelWidth).Render(row))
		for c := range g.Cols {
			v := g.At(r, c)
			cell := lipgloss.NewStyle().Width(heatmapCellWidth).Align(lipgloss.Center)
			if !plain {
				cell = cell.Background(lipgloss.Color(g.ColorAt(v))).Foreground(lipgloss.Color("16"))
			}
			sb.WriteString(cell.Render(fmt.Sprintf("%.1f", v)))
		}
		if r < len(g.Rows)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// RenderRoadmapPhase renders the selected phase with its position.
func RenderRoadmapPhase(phase engine.RoadmapPhase, index, total int) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(phase.Label))
	sb.WriteString(SubtleStyle.Render(fmt.Sprintf("  (%d/%d, p to cycle)", index+1, total)))
	for _, a := range phase.Actions {
		sb.WriteString("\n")
		sb.WriteString(LabelStyle.Render(phaseActionIndent))
		sb.WriteString(ValueStyle.Render(a))
	}
	return sb.String()
}

// RenderAchievements renders every achievement with its progress text.
func RenderAchievements(statuses []engine.AchievementStatus) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("Achievements"))
	for _, s := range statuses {
		sb.WriteString("\n")
		if s.Unlocked {
			sb.WriteString(OKStyle.Render(s.Icon + " " + s.Title))
			sb.WriteString(SubtleStyle.Render(" " + s.Description))
			continue
		}
		sb.WriteString(SubtleStyle.Render(IconLocked + " " + s.Title + " "))
		if s.Percent > 0 {
			sb.WriteString(WarningStyle.Render(s.ProgressText))
		} else {
			sb.WriteString(SubtleStyle.Render(s.ProgressText))
		}
	}
	return sb.String()
}

// RenderReduction renders the reduction percentage with a direction arrow.
func RenderReduction(pct float64) string {
	switch {
	case pct > 0:
		return OKStyle.Render(IconArrowDown + " " + greenops.FormatPercent(pct, reductionDecimals))
	case pct < 0:
		return CriticalStyle.Render(IconArrowUp + " " + greenops.FormatPercent(-pct, reductionDecimals))
	default:
		return SubtleStyle.Render(IconArrowRight + " " + greenops.FormatPercent(0, reductionDecimals))
	}
}

func writeField(sb *strings.Builder, label, value string) {
	sb.WriteString(LabelStyle.Render(label + ": "))
	sb.WriteString(ValueStyle.Render(value))
	sb.WriteString("\n")
}
