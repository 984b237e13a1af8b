package chart

import (
	"fmt"

	"github.com/rshade/cbamquest/internal/engine"
	"github.com/rshade/cbamquest/internal/greenops"
)

// Bar labels on the scenario comparison.
const (
	BaselineLabel  = "Baseline"
	ProjectedLabel = "Projected"
)

// ScenarioBars compares baseline and projected emissions (tonnes CO2e) and
// annotates the reduction, e.g. "↓ 62,500 tCO₂e (50.0%)". A zero baseline
// reports a 0.0% reduction.
func ScenarioBars(baselineEmissions, projectedEmissions float64) BarChart {
	reduction := baselineEmissions - projectedEmissions
	pct := engine.ReductionPercent(baselineEmissions, projectedEmissions)

	return BarChart{
		Title: "Decarbonization Scenario Results",
		Bars: []Bar{
			{
				Label: BaselineLabel,
				Value: baselineEmissions,
				Color: ColorCoralDeep,
				Text:  greenops.FormatTonnes(baselineEmissions),
			},
			{
				Label: ProjectedLabel,
				Value: projectedEmissions,
				Color: ColorCoral,
				Text:  greenops.FormatTonnes(projectedEmissions),
			},
		},
		Annotation: fmt.Sprintf("↓ %s (%s)", greenops.FormatTonnes(reduction), greenops.FormatPercent(pct, 1)),
		ValueAxis:  "Emissions (" + greenops.TonnesUnit + ")",
	}
}

// MaterialBreakdown is the share of total product weight per component.
func MaterialBreakdown() BarChart {
	return BarChart{
		Title: "Material Components",
		Bars: []Bar{
			{Label: "Aluminum", Value: 68, Color: ColorCoral, Text: "68%"},
			{Label: "Coatings", Value: 12, Color: ColorCoralLight, Text: "12%"},
			{Label: "Inks", Value: 8, Color: ColorSalmon, Text: "8%"},
			{Label: "Other", Value: 12, Color: ColorBlush, Text: "12%"},
		},
		Horizontal: true,
		ValueAxis:  "% of Total Weight",
	}
}
