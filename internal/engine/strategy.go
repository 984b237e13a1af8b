// Package engine holds the pure decarbonization metrics for the CBAM planner.
//
// Every exported function is a deterministic transform of its arguments. No
// function keeps state between calls, so hosts simply call Evaluate again
// whenever an input changes.
package engine

import (
	"fmt"
	"math"
	"strings"
)

// Region is one of the fixed CBAM target regions.
type Region string

// Fixed region set, in display order.
const (
	RegionEurope       Region = "Europe"
	RegionUK           Region = "UK"
	RegionMiddleEast   Region = "Middle East"
	RegionAsia         Region = "Asia"
	RegionNorthAmerica Region = "North America"
)

// Regions returns the fixed region list in display order.
func Regions() []Region {
	return []Region{RegionEurope, RegionUK, RegionMiddleEast, RegionAsia, RegionNorthAmerica}
}

// ParseRegion resolves a region name case-insensitively.
func ParseRegion(name string) (Region, error) {
	trimmed := strings.TrimSpace(name)
	for _, r := range Regions() {
		if strings.EqualFold(string(r), trimmed) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRegion, name)
}

// ParseRegions resolves a list of region names, dropping duplicates while
// keeping first-seen order.
func ParseRegions(names []string) ([]Region, error) {
	out := make([]Region, 0, len(names))
	seen := make(map[Region]bool, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		r, err := ParseRegion(n)
		if err != nil {
			return nil, err
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out, nil
}

// StrategyInputs is the full set of user-controlled inputs.
type StrategyInputs struct {
	// RecycledContent is the recycled aluminum share in percent.
	RecycledContent float64 `json:"recycled_content" yaml:"recycled_content"`

	// RenewableEnergy is the renewable share of energy use in percent.
	RenewableEnergy float64 `json:"renewable_energy" yaml:"renewable_energy"`

	// ProcessEfficiency is the process efficiency improvement in percent.
	ProcessEfficiency float64 `json:"process_efficiency" yaml:"process_efficiency"`

	// CarbonPrice is the CBAM certificate price in EUR per tonne CO2e.
	CarbonPrice float64 `json:"carbon_price" yaml:"carbon_price"`

	// TargetRegions is the selected subset of Regions().
	TargetRegions []Region `json:"target_regions" yaml:"target_regions"`
}

// DefaultInputs returns the inputs every session starts from.
func DefaultInputs() StrategyInputs {
	return StrategyInputs{
		RecycledContent:   DefaultRecycledContent,
		RenewableEnergy:   DefaultRenewableEnergy,
		ProcessEfficiency: DefaultProcessEfficiency,
		CarbonPrice:       DefaultCarbonPrice,
		TargetRegions:     []Region{RegionEurope},
	}
}

// Normalize returns a copy with every input forced into its documented
// domain: percentages clamped to [0,100], carbon price clamped to [50,150]
// and snapped to the 5-step grid, regions de-duplicated. NaN collapses to the
// lower bound.
func (s StrategyInputs) Normalize() StrategyInputs {
	out := StrategyInputs{
		RecycledContent:   ClampPercent(s.RecycledContent),
		RenewableEnergy:   ClampPercent(s.RenewableEnergy),
		ProcessEfficiency: ClampPercent(s.ProcessEfficiency),
		CarbonPrice:       ClampCarbonPrice(s.CarbonPrice),
	}
	seen := make(map[Region]bool, len(s.TargetRegions))
	out.TargetRegions = make([]Region, 0, len(s.TargetRegions))
	for _, r := range s.TargetRegions {
		if seen[r] {
			continue
		}
		seen[r] = true
		out.TargetRegions = append(out.TargetRegions, r)
	}
	return out
}

// PercentSum is the sum of the three percentage inputs (0..300).
func (s StrategyInputs) PercentSum() float64 {
	return s.RecycledContent + s.RenewableEnergy + s.ProcessEfficiency
}

// HasRegion reports whether r is among the target regions.
func (s StrategyInputs) HasRegion(r Region) bool {
	for _, t := range s.TargetRegions {
		if t == r {
			return true
		}
	}
	return false
}

// ClampPercent bounds v to [0,100].
func ClampPercent(v float64) float64 {
	return clamp(v, MinPercent, MaxPercent)
}

// ClampCarbonPrice bounds v to [50,150] and rounds it to the nearest step.
func ClampCarbonPrice(v float64) float64 {
	v = clamp(v, MinCarbonPrice, MaxCarbonPrice)
	return math.Round(v/CarbonPriceStep) * CarbonPriceStep
}

// clamp bounds v to [lo,hi]. NaN maps to lo so the result stays in range.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
