package pagination

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rshade/cbamquest/internal/engine/batch"
)

// Sort fields accepted for sweep results.
const (
	FieldName        = "name"
	FieldCarbonPrice = "carbon_price"
	FieldRecycled    = "recycled"
	FieldRenewable   = "renewable"
	FieldEfficiency  = "efficiency"
	FieldFootprint   = "footprint"
	FieldCost        = "cost"
	FieldProjected   = "projected"
	FieldReduction   = "reduction"
	FieldFeeCut      = "fee_reduction"
	FieldNetSavings  = "net_savings"
)

// SweepSorter orders sweep results by one field.
type SweepSorter struct {
	keys map[string]func(batch.SweepResult) float64
}

// NewSweepSorter creates a sorter over every numeric sweep field plus name.
func NewSweepSorter() *SweepSorter {
	return &SweepSorter{
		keys: map[string]func(batch.SweepResult) float64{
			FieldCarbonPrice: func(r batch.SweepResult) float64 { return r.Inputs.CarbonPrice },
			FieldRecycled:    func(r batch.SweepResult) float64 { return r.Inputs.RecycledContent },
			FieldRenewable:   func(r batch.SweepResult) float64 { return r.Inputs.RenewableEnergy },
			FieldEfficiency:  func(r batch.SweepResult) float64 { return r.Inputs.ProcessEfficiency },
			FieldFootprint:   func(r batch.SweepResult) float64 { return r.Metrics.CarbonFootprint },
			FieldCost:        func(r batch.SweepResult) float64 { return r.Metrics.ImplementationCost },
			FieldProjected:   func(r batch.SweepResult) float64 { return r.Metrics.ProjectedEmissions },
			FieldReduction:   func(r batch.SweepResult) float64 { return r.Metrics.ReductionPercent },
			FieldFeeCut:      func(r batch.SweepResult) float64 { return r.Metrics.CBAMFeeReduction },
			FieldNetSavings:  func(r batch.SweepResult) float64 { return r.Metrics.NetSavings },
		},
	}
}

// IsValidField checks if the field is valid for sorting.
func (s *SweepSorter) IsValidField(field string) bool {
	if field == FieldName {
		return true
	}
	_, ok := s.keys[field]
	return ok
}

// GetValidFields returns all valid sort fields in sorted order.
func (s *SweepSorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.keys)+1)
	fields = append(fields, FieldName)
	for field := range s.keys {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Validate returns ErrInvalidSortField for an unknown non-empty field.
func (s *SweepSorter) Validate(field string) error {
	if field == "" || s.IsValidField(field) {
		return nil
	}
	return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field, strings.Join(s.GetValidFields(), ", "))
}

// Sort returns a sorted copy of results. Ties keep input order. An unknown
// or empty field returns results unchanged.
func (s *SweepSorter) Sort(results []batch.SweepResult, field, order string) []batch.SweepResult {
	if field == "" || !s.IsValidField(field) {
		return results
	}

	sorted := make([]batch.SweepResult, len(results))
	copy(sorted, results)

	less := func(a, b batch.SweepResult) bool {
		if field == FieldName {
			return a.Name < b.Name
		}
		key := s.keys[field]
		return key(a) < key(b)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		// For descending order, swap i and j in comparisons to maintain stability
		if order == SortOrderDesc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}
