// Package greenops formats emissions and money for display and converts
// avoided emissions into relatable equivalencies such as miles driven.
//
// Everything here is presentation support for the engine: the engine
// produces tonnes and EUR millions, greenops turns them into text.
package greenops

import "fmt"

// EquivalencyType represents a category of carbon equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven converts CO2e to miles in an average passenger car.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged converts CO2e to smartphone full charges.
	EquivalencySmartphonesCharged

	// EquivalencyTreeSeedlings converts CO2e to seedlings grown for 10 years.
	EquivalencyTreeSeedlings

	// EquivalencyHomesPowered converts CO2e to homes' annual energy use.
	EquivalencyHomesPowered
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	case EquivalencyHomesPowered:
		return "HomesPowered"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// EmissionsInput is an amount of avoided emissions.
type EmissionsInput struct {
	Value float64 `json:"value"`

	// Unit is one of g, kg, t (with or without a CO2e suffix).
	Unit string `json:"unit"`
}

// EquivalencyResult represents a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput contains all equivalencies for one input.
type EquivalencyOutput struct {
	// InputKg is the normalized input in kilograms CO2e.
	InputKg float64 `json:"input_kg"`

	Results []EquivalencyResult `json:"results"`

	// DisplayText is the prose form, e.g.
	// "Equivalent to driving ~325.5 million miles or powering ~8,356 homes for a year".
	DisplayText string `json:"display_text"`

	// CompactText is the abbreviated form for narrow layouts.
	CompactText string `json:"compact_text"`

	IsEmpty bool `json:"is_empty"`
}
