package engine

import (
	"fmt"
	"math"
)

// Roadmap phase labels in display order.
const (
	PhaseOneLabel   = "PHASE 1 (2025-2027)"
	PhaseTwoLabel   = "PHASE 2 (2027-2029)"
	PhaseThreeLabel = "PHASE 3 (2029-2031)"
	TargetLabel     = "TARGET (2031-2033)"
)

// RoadmapPhase is one step of the decarbonization roadmap.
type RoadmapPhase struct {
	Label   string   `json:"label"`
	Actions []string `json:"actions"`
}

// RoadmapPhases builds the four-phase roadmap for the current inputs.
//
// The first two phases quote targets derived from the inputs, each capped at
// 100%; the later phases are fixed. Phase order and action counts never vary.
func RoadmapPhases(recycled, renewable, efficiency float64) []RoadmapPhase {
	return []RoadmapPhase{
		{
			Label: PhaseOneLabel,
			Actions: []string{
				fmt.Sprintf("Increase recycled content to %s%%",
					formatTarget(phaseTarget(recycled, recycledPhaseIncrement))),
				fmt.Sprintf("Transition %s%% energy to renewable sources",
					formatTarget(phaseTarget(renewable, renewablePhaseIncrement))),
				"Optimize transportation logistics (-15% emissions)",
			},
		},
		{
			Label: PhaseTwoLabel,
			Actions: []string{
				fmt.Sprintf("Implement AI-driven process efficiency (+%s%%)",
					formatTarget(phaseTarget(efficiency, efficiencyPhaseIncrement))),
				"Develop supplier certification program",
				"Convert 75% of facilities to low-carbon operations",
			},
		},
		{
			Label: PhaseThreeLabel,
			Actions: []string{
				"Deploy advanced metal recovery technologies",
				"Achieve carbon neutrality at flagship plants",
				"Implement circular economy business model",
			},
		},
		{
			Label: TargetLabel,
			Actions: []string{
				"Achieve 90% recycled content across product lines",
				"100% renewable energy for all operations",
				"Full carbon neutrality across value chain",
			},
		},
	}
}

// PhaseLabels returns the phase labels in roadmap order.
func PhaseLabels() []string {
	return []string{PhaseOneLabel, PhaseTwoLabel, PhaseThreeLabel, TargetLabel}
}

// PhaseByLabel looks up a phase by its label.
func PhaseByLabel(phases []RoadmapPhase, label string) (RoadmapPhase, error) {
	for _, p := range phases {
		if p.Label == label {
			return p, nil
		}
	}
	return RoadmapPhase{}, fmt.Errorf("%w: %q", ErrUnknownPhase, label)
}

func phaseTarget(current, increment float64) float64 {
	return math.Min(current+increment, MaxPercent)
}

// formatTarget prints whole percentages without a decimal point, matching
// the integer sliders, and keeps one decimal otherwise.
func formatTarget(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
