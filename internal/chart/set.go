package chart

import (
	"errors"
	"fmt"

	"github.com/rshade/cbamquest/internal/engine"
)

// ErrUnknownKind is returned when a chart kind is not recognized.
var ErrUnknownKind = errors.New("unknown chart kind")

// ParseKind parses a chart kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: heatmap, timeline, radar, scenario, materials)", ErrUnknownKind, s)
}

// Set holds every chart shape for one evaluation.
type Set struct {
	Heatmap   Grid     `json:"heatmap"`
	Timeline  Timeline `json:"timeline"`
	Radar     Radar    `json:"radar"`
	Scenario  BarChart `json:"scenario"`
	Materials BarChart `json:"materials"`
}

// BuildSet shapes every chart from normalized inputs and their metrics.
func BuildSet(in engine.StrategyInputs, m engine.DerivedMetrics) Set {
	return Set{
		Heatmap:   Heatmap(in.TargetRegions, in.CarbonPrice),
		Timeline:  RoadmapTimeline(in.RecycledContent, in.RenewableEnergy, in.ProcessEfficiency),
		Radar:     BenchmarkRadar(in.RecycledContent, in.RenewableEnergy, in.ProcessEfficiency),
		Scenario:  ScenarioBars(m.BaselineEmissions, m.ProjectedEmissions),
		Materials: MaterialBreakdown(),
	}
}

// Get returns the shape for kind.
func (s Set) Get(kind Kind) (any, error) {
	switch kind {
	case KindHeatmap:
		return s.Heatmap, nil
	case KindTimeline:
		return s.Timeline, nil
	case KindRadar:
		return s.Radar, nil
	case KindScenario:
		return s.Scenario, nil
	case KindMaterials:
		return s.Materials, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
