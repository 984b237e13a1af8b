package engine

// CarbonFootprint estimates the product footprint in kg CO2e per unit.
//
// Starting from FootprintBaseline, recycled content above the 40% baseline,
// renewable energy and process efficiency each lower the footprint linearly.
// The result is clamped to [MinFootprint, MaxFootprint] so extreme inputs
// never escape the plotted range.
func CarbonFootprint(recycled, renewable, efficiency float64) float64 {
	recycledImpact := (recycled - RecycledBaselinePercent) * recycledFootprintFactor
	energyImpact := renewable * renewableFootprintFactor
	efficiencyImpact := efficiency * efficiencyFootprintFactor

	footprint := FootprintBaseline - recycledImpact - energyImpact - efficiencyImpact
	return clamp(footprint, MinFootprint, MaxFootprint)
}

// ImplementationCost estimates the one-time cost of a strategy in EUR millions.
// Recycled content only costs money above the 40% baseline. The result is
// clamped to [MinImplementationCost, MaxImplementationCost].
func ImplementationCost(recycled, renewable, efficiency float64) float64 {
	recycledCost := 0.0
	if recycled > RecycledBaselinePercent {
		recycledCost = (recycled - RecycledBaselinePercent) * recycledCostFactor
	}
	energyCost := renewable * renewableCostFactor
	efficiencyCost := efficiency * efficiencyCostFactor

	return clamp(recycledCost+energyCost+efficiencyCost, MinImplementationCost, MaxImplementationCost)
}

// CBAMFeeReduction estimates the annual CBAM fee reduction in EUR millions.
//
// Each lever reduces a weighted share of the baseline emissions: recycled
// content relative to the 40% baseline, renewable energy and efficiency in
// absolute terms. The tonnes avoided are priced at carbonPrice.
//
// Recycled content below 40% yields a negative contribution, i.e. a fee
// increase; the value is not clamped.
func CBAMFeeReduction(baselineEmissions, recycled, renewable, efficiency, carbonPrice float64) float64 {
	recycledImpact := baselineEmissions * (recycled - RecycledBaselinePercent) / percentScale * recycledFeeWeight
	energyImpact := baselineEmissions * renewable / percentScale * renewableFeeWeight
	efficiencyImpact := baselineEmissions * efficiency / percentScale * efficiencyFeeWeight

	totalReduction := recycledImpact + energyImpact + efficiencyImpact
	return totalReduction * carbonPrice / feeReductionDivisor
}
