package chart

import "math"

// Roadmap timeline geometry.
const (
	timelineAxisY      = 50.0
	markerBaseY        = 55.0
	markerScale        = 0.4
	flagBaseHeight     = 20.0
	flagScale          = 0.15
	reductionFloor     = 10.0
	reductionBaseline  = 100.0
	reductionStepScale = 25.0
)

// TimelineYears returns the roadmap milestone years.
func TimelineYears() []int {
	return []int{2025, 2027, 2029, 2031, 2033}
}

// Trajectory returns the remaining-emissions index per milestone.
//
// avg is the mean of the three percentages as a fraction (sum/300). The first
// point is always the 100 baseline; each later milestone removes another
// quarter of avg x 100, floored at 10.
func Trajectory(recycled, renewable, efficiency float64) []float64 {
	avg := (recycled + renewable + efficiency) / 300
	out := make([]float64, len(TimelineYears()))
	out[0] = reductionBaseline
	for i := 1; i < len(out); i++ {
		out[i] = math.Max(reductionFloor, reductionBaseline-avg*(reductionStepScale*float64(i)))
	}
	return out
}

// RoadmapTimeline builds the milestone chart for the current inputs.
func RoadmapTimeline(recycled, renewable, efficiency float64) Timeline {
	reductions := Trajectory(recycled, renewable, efficiency)

	markers := make([]float64, len(reductions))
	flags := make([]float64, len(reductions))
	for i, r := range reductions {
		markers[i] = markerBaseY - r*markerScale
		flags[i] = flagBaseHeight - r*flagScale
	}

	return Timeline{
		Years:       TimelineYears(),
		Reductions:  reductions,
		MarkerY:     markers,
		FlagHeights: flags,
		Colors:      milestoneColors(),
		AxisY:       timelineAxisY,
	}
}
