package engine

// Strategy input bounds. Percentages share one range; carbon price moves in
// fixed steps as on the policy slider.
const (
	MinPercent = 0.0
	MaxPercent = 100.0

	MinCarbonPrice  = 50.0
	MaxCarbonPrice  = 150.0
	CarbonPriceStep = 5.0
)

// Default strategy every session starts from.
const (
	DefaultRecycledContent   = 60.0
	DefaultRenewableEnergy   = 40.0
	DefaultProcessEfficiency = 50.0
	DefaultCarbonPrice       = 90.0
)

// BaselineEmissions is the fixed annual baseline in tonnes CO2e.
const BaselineEmissions = 125000.0

// Carbon footprint model (kg CO2e per unit).
const (
	// FootprintBaseline is the footprint with no decarbonization measures.
	FootprintBaseline = 2.1

	// RecycledBaselinePercent is the recycled share already reflected in the baseline.
	RecycledBaselinePercent = 40.0

	recycledFootprintFactor   = 0.01
	renewableFootprintFactor  = 0.005
	efficiencyFootprintFactor = 0.003

	MinFootprint = 0.5
	MaxFootprint = 3.0
)

// Implementation cost model (EUR millions).
const (
	recycledCostFactor   = 0.02
	renewableCostFactor  = 0.03
	efficiencyCostFactor = 0.02

	MinImplementationCost = 0.5
	MaxImplementationCost = 5.0

	// AmortizationYears spreads the one-time implementation cost.
	AmortizationYears = 3.0
)

// CBAM fee reduction weights applied to the baseline per percentage point.
const (
	recycledFeeWeight   = 0.005
	renewableFeeWeight  = 0.003
	efficiencyFeeWeight = 0.002

	// feeReductionDivisor converts tonnes x EUR into the EUR millions shown on
	// the control panel.
	feeReductionDivisor = 1000.0

	// feeDivisor converts tonnes x EUR/t into EUR millions.
	feeDivisor = 1_000_000.0
)

// Roadmap increments applied to the current inputs for the early phases.
const (
	recycledPhaseIncrement   = 15.0
	renewablePhaseIncrement  = 20.0
	efficiencyPhaseIncrement = 15.0
)

// Achievement progress is only reported past this share of the threshold.
const progressVisibleFraction = 0.5

// DecarbonizationProgress is the overall roadmap completion shown on the
// control panel. It is a fixed figure until progress is tracked from real data.
const DecarbonizationProgress = 30.0

const percentScale = 100.0
