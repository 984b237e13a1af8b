// Package chart turns engine metrics into chart-library-agnostic shapes and
// renders them to PNG or SVG.
//
// Shapers are pure: the same arguments always produce the same shape. The
// shapes carry colors as hex strings so any renderer (go-chart, the terminal
// dashboard, a browser) can draw them.
package chart

// Kind identifies a chart shape.
type Kind string

// Supported chart kinds.
const (
	KindHeatmap   Kind = "heatmap"
	KindTimeline  Kind = "timeline"
	KindRadar     Kind = "radar"
	KindScenario  Kind = "scenario"
	KindMaterials Kind = "materials"
)

// Kinds returns every chart kind in dashboard order.
func Kinds() []Kind {
	return []Kind{KindHeatmap, KindTimeline, KindRadar, KindScenario, KindMaterials}
}

// ColorStop maps a normalized position in [0,1] to a color.
type ColorStop struct {
	At    float64 `json:"at"`
	Color string  `json:"color"`
}

// Grid is a matrix of values over two ordered axes.
type Grid struct {
	Title      string      `json:"title"`
	Rows       []string    `json:"rows"`
	Cols       []string    `json:"cols"`
	Values     [][]float64 `json:"values"`
	Min        float64     `json:"min"`
	Max        float64     `json:"max"`
	ColorScale []ColorStop `json:"color_scale"`
}

// At returns the value at row r, column c.
func (g Grid) At(r, c int) float64 {
	return g.Values[r][c]
}

// ColorAt picks the color scale stop for v. Values are normalized against
// [Min,Max] and take the last stop at or below their position.
func (g Grid) ColorAt(v float64) string {
	if len(g.ColorScale) == 0 {
		return ""
	}
	pos := 0.0
	if g.Max > g.Min {
		pos = (v - g.Min) / (g.Max - g.Min)
	}
	color := g.ColorScale[0].Color
	for _, s := range g.ColorScale {
		if pos+1e-9 >= s.At {
			color = s.Color
		}
	}
	return color
}

// Series is one line of x/y points.
type Series struct {
	Name   string    `json:"name"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
	Color  string    `json:"color"`
	Dashed bool      `json:"dashed,omitempty"`
}

// Timeline is the roadmap milestone chart.
type Timeline struct {
	Years []int `json:"years"`

	// Reductions is the remaining emissions index per milestone (100 = baseline).
	Reductions []float64 `json:"reductions"`

	// MarkerY is the vertical position of the reduction line markers.
	MarkerY []float64 `json:"marker_y"`

	// FlagHeights is the milestone flag height; better reduction, taller flag.
	FlagHeights []float64 `json:"flag_heights"`

	// Colors is the milestone color per year.
	Colors []string `json:"colors"`

	// AxisY is where the timeline base line is drawn.
	AxisY float64 `json:"axis_y"`
}

// ReductionSeries returns the trajectory as a plottable series.
func (t Timeline) ReductionSeries() Series {
	x := make([]float64, len(t.Years))
	for i, y := range t.Years {
		x[i] = float64(y)
	}
	return Series{Name: "Emissions index", X: x, Y: append([]float64(nil), t.Reductions...), Color: ColorCoralDeep, Dashed: true}
}

// RadarSeries is one polygon on a radar chart.
type RadarSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
	Color  string    `json:"color"`
	Fill   string    `json:"fill"`
	Dashed bool      `json:"dashed,omitempty"`
}

// Radar compares series over shared categories.
type Radar struct {
	Categories []string      `json:"categories"`
	Min        float64       `json:"min"`
	Max        float64       `json:"max"`
	Series     []RadarSeries `json:"series"`
}

// Bar is a single labeled bar.
type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`

	// Text is the value label drawn on or beside the bar.
	Text string `json:"text,omitempty"`
}

// BarChart is a set of bars with an optional annotation.
type BarChart struct {
	Title      string `json:"title"`
	Bars       []Bar  `json:"bars"`
	Annotation string `json:"annotation,omitempty"`
	Horizontal bool   `json:"horizontal,omitempty"`
	ValueAxis  string `json:"value_axis,omitempty"`
}

// MaxValue returns the largest bar value, or 0 for no bars.
func (b BarChart) MaxValue() float64 {
	m := 0.0
	for _, bar := range b.Bars {
		if bar.Value > m {
			m = bar.Value
		}
	}
	return m
}
