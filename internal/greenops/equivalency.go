package greenops

import (
	"fmt"
	"math"
	"strings"
)

// NormalizeToKg converts an emissions amount to kilograms CO2e.
// Units match case-insensitively: g, kg, t and their CO2e variants.
func NormalizeToKg(value float64, unit string) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrCalculationOverflow
	}
	if value < 0 {
		return 0, ErrNegativeValue
	}

	var factor float64
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "g", "gco2e":
		factor = KgPerGram
	case "kg", "kgco2e":
		factor = KgPerKg
	case "t", "tco2e", "tonnes":
		factor = KgPerTonne
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}

	kg := value * factor
	if math.IsInf(kg, 0) {
		return 0, ErrCalculationOverflow
	}
	return kg, nil
}

// Calculate converts avoided emissions into EPA equivalencies.
//
// Inputs below MinEquivalencyThresholdKg yield an empty output without
// error. Invalid units, negative or non-finite values return an empty output
// and the matching sentinel error.
func Calculate(input EmissionsInput) (EquivalencyOutput, error) {
	kg, err := NormalizeToKg(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}
	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	results := []EquivalencyResult{
		newResult(EquivalencyMilesDriven, kg/EPAMilesDrivenFactor, "miles driven"),
		newResult(EquivalencySmartphonesCharged, kg/EPASmartphoneChargeFactor, "smartphones charged"),
		newResult(EquivalencyTreeSeedlings, kg/EPATreeSeedlingFactor, "tree seedlings grown for 10 years"),
		newResult(EquivalencyHomesPowered, kg/EPAHomeYearFactor, "homes powered for a year"),
	}
	for _, r := range results {
		if math.IsInf(r.Value, 0) || math.IsNaN(r.Value) {
			return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
		}
	}

	miles := approx(results[0].FormattedValue)
	homes := approx(results[3].FormattedValue)

	return EquivalencyOutput{
		InputKg:     kg,
		Results:     results,
		DisplayText: fmt.Sprintf("Equivalent to driving %s miles or powering %s homes for a year", miles, homes),
		CompactText: fmt.Sprintf("(≈ %s mi, %s homes)", miles[1:], homes[1:]),
	}, nil
}

// AvoidedEmissions is a shortcut for Calculate on a tonnes figure. Negative
// avoided emissions produce an empty output.
func AvoidedEmissions(tonnes float64) EquivalencyOutput {
	if tonnes <= 0 {
		return EquivalencyOutput{IsEmpty: true}
	}
	out, err := Calculate(EmissionsInput{Value: tonnes, Unit: "t"})
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}
	}
	return out
}

func newResult(t EquivalencyType, v float64, label string) EquivalencyResult {
	return EquivalencyResult{Type: t, Value: v, FormattedValue: FormatLarge(v), Label: label}
}

// approx prefixes "~" unless FormatLarge already did.
func approx(s string) string {
	if strings.HasPrefix(s, "~") {
		return s
	}
	return "~" + s
}
