package engine

import (
	"fmt"
	"math"
)

// Metric names an achievement can be measured against.
const (
	MetricNetSavings       = "net_savings"
	MetricProgress         = "decarbonization_progress"
	MetricReductionPercent = "reduction_percent"
	MetricFeeReduction     = "cbam_fee_reduction"
	MetricCarbonFootprint  = "carbon_footprint"
)

// Achievement is a badge unlocked when a metric reaches a threshold.
type Achievement struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Metric      string  `json:"metric"`
	Threshold   float64 `json:"threshold"`
}

// AchievementResult is the display state of one evaluation.
type AchievementResult struct {
	Unlocked bool `json:"unlocked"`

	// Percent is value/threshold rounded, only set while progress is shown.
	Percent int `json:"percent,omitempty"`

	// ProgressText is the message for the host to render.
	ProgressText string `json:"progress_text"`
}

// AchievementStatus pairs an achievement with its evaluation.
type AchievementStatus struct {
	Achievement
	AchievementResult
	Value float64 `json:"value"`
}

// Achievement progress messages.
const (
	UnlockedText = "Achievement unlocked!"
	LockedText   = "Locked"
)

// EvaluateAchievement decides whether value meets threshold.
//
// Past half of the threshold a locked achievement reports how far along it
// is; below that it only reports that it is locked. Nothing is remembered
// between calls.
func EvaluateAchievement(value, threshold float64) AchievementResult {
	if value >= threshold {
		return AchievementResult{Unlocked: true, ProgressText: UnlockedText}
	}
	if value > threshold*progressVisibleFraction {
		pct := int(math.Round(value / threshold * percentScale))
		return AchievementResult{
			Percent:      pct,
			ProgressText: fmt.Sprintf("You're %d%% of the way there!", pct),
		}
	}
	return AchievementResult{ProgressText: LockedText}
}

// Achievements returns the achievement catalog in display order.
func Achievements() []Achievement {
	return []Achievement{
		{
			ID:          "tier1-cbam-defender",
			Title:       "TIER 1 CBAM DEFENDER",
			Description: "Achieved 25% reduction in CBAM exposure",
			Icon:        "🏆",
			Metric:      MetricProgress,
			Threshold:   25,
		},
		{
			ID:          "cbam-cost-optimizer",
			Title:       "CBAM COST OPTIMIZER",
			Description: "Net CBAM savings of at least EUR 1M per year",
			Icon:        "🏆",
			Metric:      MetricNetSavings,
			Threshold:   1.0,
		},
	}
}

// EvaluateAchievements evaluates every achievement in the catalog against m.
// Entries whose metric DerivedMetrics.Value does not know are skipped.
func EvaluateAchievements(m DerivedMetrics) []AchievementStatus {
	catalog := Achievements()
	out := make([]AchievementStatus, 0, len(catalog))
	for _, a := range catalog {
		status, err := EvaluateFor(a, m)
		if err != nil {
			continue
		}
		out = append(out, status)
	}
	return out
}

// EvaluateFor evaluates a single achievement against m.
func EvaluateFor(a Achievement, m DerivedMetrics) (AchievementStatus, error) {
	v, err := m.Value(a.Metric)
	if err != nil {
		return AchievementStatus{}, fmt.Errorf("achievement %s: %w", a.ID, err)
	}
	return AchievementStatus{
		Achievement:       a,
		AchievementResult: EvaluateAchievement(v, a.Threshold),
		Value:             v,
	}, nil
}

// Unlocked filters statuses down to unlocked achievements.
func Unlocked(statuses []AchievementStatus) []AchievementStatus {
	var out []AchievementStatus
	for _, s := range statuses {
		if s.Unlocked {
			out = append(out, s)
		}
	}
	return out
}
