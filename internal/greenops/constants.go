package greenops

// EPA greenhouse gas equivalency factors (2024 edition), in kg CO2e per
// activity unit.
//
//	equivalency = kg_CO2e / factor
const (
	// EPAMilesDrivenFactor is kg CO2e per mile in an average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per full smartphone charge.
	EPASmartphoneChargeFactor = 0.00822

	// EPATreeSeedlingFactor is kg CO2e sequestered per seedling over 10 years.
	EPATreeSeedlingFactor = 60.0

	// EPAHomeYearFactor is kg CO2e per year of average US home energy use.
	EPAHomeYearFactor = 7480.0
)

// Unit conversions to kilograms.
const (
	KgPerGram  = 0.001
	KgPerKg    = 1.0
	KgPerTonne = 1000.0
)

// Display thresholds.
const (
	// MinEquivalencyThresholdKg is the smallest amount worth an equivalency.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold switches to "~X.X million" notation.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches to "~X.X billion" notation.
	BillionThreshold = 1_000_000_000
)

// Display units.
const (
	TonnesUnit    = "tCO₂e"
	KgUnit        = "kg CO₂e"
	EuroSymbol    = "€"
	MillionSuffix = "M"
)
