package engine

import "math"

// ProjectEmissions applies the average of the three percentages as a
// reduction factor on the baseline. A sum of 300 removes all emissions. The
// result never goes below zero, even for out-of-range inputs.
func ProjectEmissions(baselineEmissions, recycled, renewable, efficiency float64) float64 {
	sum := recycled + renewable + efficiency
	projected := baselineEmissions - baselineEmissions*sum/(3*percentScale)
	return math.Max(0, projected)
}

// CBAMFees prices emissions (tonnes) at carbonPrice (EUR/t) in EUR millions.
func CBAMFees(emissions, carbonPrice float64) float64 {
	return emissions * carbonPrice / feeDivisor
}

// NetSavings is the annual fee saving minus the implementation cost amortized
// over AmortizationYears. Negative values signal a net cost scenario.
func NetSavings(baselineFees, projectedFees, implementationCost float64) float64 {
	return baselineFees - projectedFees - implementationCost/AmortizationYears
}

// ReductionPercent is the share of baseline removed by the projection.
// It returns 0 for a zero baseline instead of dividing by zero.
func ReductionPercent(baseline, projected float64) float64 {
	if baseline == 0 {
		return 0
	}
	return (baseline - projected) / baseline * percentScale
}
