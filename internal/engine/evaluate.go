package engine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// DerivedMetrics are the values recomputed on every input change.
type DerivedMetrics struct {
	// CarbonFootprint is kg CO2e per unit, within [0.5, 3.0].
	CarbonFootprint float64 `json:"carbon_footprint"`

	// ImplementationCost is EUR millions, within [0.5, 5.0].
	ImplementationCost float64 `json:"implementation_cost"`

	// BaselineEmissions is tonnes CO2e per year.
	BaselineEmissions float64 `json:"baseline_emissions"`

	// ProjectedEmissions is tonnes CO2e per year, never negative.
	ProjectedEmissions float64 `json:"projected_emissions"`

	// ReductionPercent is the share of baseline emissions removed.
	ReductionPercent float64 `json:"reduction_percent"`

	// CBAMFeeReduction is the control panel fee reduction in EUR millions.
	CBAMFeeReduction float64 `json:"cbam_fee_reduction"`

	// BaselineFees and ProjectedFees are annual CBAM fees in EUR millions.
	BaselineFees  float64 `json:"baseline_fees"`
	ProjectedFees float64 `json:"projected_fees"`

	// NetSavings is EUR millions per year after amortized implementation cost.
	NetSavings float64 `json:"net_savings"`

	// DecarbonizationProgress is overall roadmap completion in percent.
	DecarbonizationProgress float64 `json:"decarbonization_progress"`
}

// Value returns the metric named by one of the Metric* constants.
func (m DerivedMetrics) Value(metric string) (float64, error) {
	switch metric {
	case MetricNetSavings:
		return m.NetSavings, nil
	case MetricProgress:
		return m.DecarbonizationProgress, nil
	case MetricReductionPercent:
		return m.ReductionPercent, nil
	case MetricFeeReduction:
		return m.CBAMFeeReduction, nil
	case MetricCarbonFootprint:
		return m.CarbonFootprint, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}
}

// Evaluation is everything a host needs to render one frame.
type Evaluation struct {
	Inputs       StrategyInputs      `json:"inputs"`
	Metrics      DerivedMetrics      `json:"metrics"`
	Roadmap      []RoadmapPhase      `json:"roadmap"`
	Achievements []AchievementStatus `json:"achievements"`
}

// ComputeMetrics derives every metric from in against baselineEmissions.
// Inputs are normalized first so the result is total for any input.
func ComputeMetrics(in StrategyInputs, baselineEmissions float64) DerivedMetrics {
	in = in.Normalize()
	r, e, p := in.RecycledContent, in.RenewableEnergy, in.ProcessEfficiency

	projected := ProjectEmissions(baselineEmissions, r, e, p)
	baselineFees := CBAMFees(baselineEmissions, in.CarbonPrice)
	projectedFees := CBAMFees(projected, in.CarbonPrice)
	cost := ImplementationCost(r, e, p)

	return DerivedMetrics{
		CarbonFootprint:         CarbonFootprint(r, e, p),
		ImplementationCost:      cost,
		BaselineEmissions:       baselineEmissions,
		ProjectedEmissions:      projected,
		ReductionPercent:        ReductionPercent(baselineEmissions, projected),
		CBAMFeeReduction:        CBAMFeeReduction(baselineEmissions, r, e, p, in.CarbonPrice),
		BaselineFees:            baselineFees,
		ProjectedFees:           projectedFees,
		NetSavings:              NetSavings(baselineFees, projectedFees, cost),
		DecarbonizationProgress: DecarbonizationProgress,
	}
}

// Evaluate computes metrics, roadmap and achievements for in.
//
// The context only carries the logger; evaluation itself never blocks.
func Evaluate(ctx context.Context, in StrategyInputs, baselineEmissions float64) Evaluation {
	in = in.Normalize()
	metrics := ComputeMetrics(in, baselineEmissions)

	zerolog.Ctx(ctx).Debug().
		Str("component", "engine").
		Float64("recycled", in.RecycledContent).
		Float64("renewable", in.RenewableEnergy).
		Float64("efficiency", in.ProcessEfficiency).
		Float64("carbon_price", in.CarbonPrice).
		Float64("footprint", metrics.CarbonFootprint).
		Float64("net_savings", metrics.NetSavings).
		Msg("strategy evaluated")

	return Evaluation{
		Inputs:       in,
		Metrics:      metrics,
		Roadmap:      RoadmapPhases(in.RecycledContent, in.RenewableEnergy, in.ProcessEfficiency),
		Achievements: EvaluateAchievements(metrics),
	}
}
