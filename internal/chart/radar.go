package chart

// Radar scale: slider percentages map onto 0-5.
const (
	radarMax          = 5.0
	radarPercentScale = 20.0

	// Fixed scores until transport and materials have their own inputs.
	transportScore = 3.5
	materialsScore = 4.2
)

// Series names on the benchmark radar.
const (
	IndustryAverageName = "Industry Average"
	OurStrategyName     = "Our Strategy"
)

// RadarCategories returns the benchmark categories in plotting order.
func RadarCategories() []string {
	return []string{"Recycled %", "Energy", "Transport", "Process", "Materials"}
}

// IndustryAverage returns the reference scores per category.
func IndustryAverage() []float64 {
	return []float64{3.0, 2.5, 2.2, 2.8, 2.3}
}

// BenchmarkRadar compares the strategy against the industry average.
// Each slider percentage is divided by 20 to land on the 0-5 scale.
func BenchmarkRadar(recycled, renewable, efficiency float64) Radar {
	ours := []float64{
		recycled / radarPercentScale,
		renewable / radarPercentScale,
		transportScore,
		efficiency / radarPercentScale,
		materialsScore,
	}

	return Radar{
		Categories: RadarCategories(),
		Min:        0,
		Max:        radarMax,
		Series: []RadarSeries{
			{
				Name:   IndustryAverageName,
				Values: IndustryAverage(),
				Color:  ColorCoralLight,
				Fill:   "rgba(255,133,119,0.2)",
				Dashed: true,
			},
			{
				Name:   OurStrategyName,
				Values: ours,
				Color:  ColorCoral,
				Fill:   "rgba(255,111,97,0.5)",
			},
		},
	}
}
