package chart

// Coral palette shared by every chart.
const (
	ColorCoralDeep  = "#C8412E"
	ColorCoral      = "#FF6F61"
	ColorCoralLight = "#FF8577"
	ColorSalmon     = "#FFA799"
	ColorBlush      = "#FFCCC2"
	ColorShell      = "#FFE1DE"
)

// heatmapScale is the CBAM impact color scale, light to deep.
func heatmapScale() []ColorStop {
	return []ColorStop{
		{At: 0, Color: ColorShell},
		{At: 0.2, Color: ColorBlush},
		{At: 0.4, Color: ColorSalmon},
		{At: 0.6, Color: ColorCoralLight},
		{At: 0.8, Color: ColorCoral},
		{At: 1, Color: ColorCoralDeep},
	}
}

// milestoneColors fades from coral to shell along the roadmap.
func milestoneColors() []string {
	return []string{ColorCoral, ColorCoralLight, ColorSalmon, ColorBlush, ColorShell}
}
