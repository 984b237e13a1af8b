package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/cbamquest/internal/engine"
)

func TestHeatmap(t *testing.T) {
	g := Heatmap([]engine.Region{engine.RegionEurope}, engine.DefaultCarbonPrice)

	require.Len(t, g.Rows, 5)
	require.Len(t, g.Cols, 5)
	assert.Equal(t, []string{"Europe", "UK", "Middle East", "Asia", "North America"}, g.Rows)
	assert.Equal(t, []string{"2026", "2027", "2028", "2029", "2030"}, g.Cols)

	//nolint:testifylint // exact equality is the property under test
	assert.Equal(t, 5.0, g.At(0, 0))

	for i := range g.Rows {
		for j, year := range HeatmapYears() {
			want := 5 - float64(i)*0.8 - float64(year-2026)*0.3
			if want < 0 {
				want = 0
			}
			assert.InDelta(t, want, g.At(i, j), 1e-9, "cell [%d][%d]", i, j)
		}
	}
}

func TestHeatmap_IgnoresSelection(t *testing.T) {
	a := Heatmap(nil, 50)
	b := Heatmap(engine.Regions(), 150)
	assert.Equal(t, a, b)
}

func TestHeatmapCell_Clamped(t *testing.T) {
	assert.InDelta(t, 0.0, HeatmapCell(10, 2030), 1e-9)
	assert.InDelta(t, 5.0, HeatmapCell(0, 2020), 1e-9)
}

func TestGrid_ColorAt(t *testing.T) {
	g := Heatmap(nil, 90)

	assert.Equal(t, ColorShell, g.ColorAt(0))
	assert.Equal(t, ColorCoralDeep, g.ColorAt(5))
	assert.Equal(t, ColorSalmon, g.ColorAt(2.0))
	assert.Empty(t, Grid{}.ColorAt(1))
}

func TestTrajectory(t *testing.T) {
	tests := []struct {
		name                            string
		recycled, renewable, efficiency float64
		want                            []float64
	}{
		{name: "idle strategy stays at baseline", want: []float64{100, 100, 100, 100, 100}},
		{name: "full strategy hits the floor", recycled: 100, renewable: 100, efficiency: 100, want: []float64{100, 75, 50, 25, 10}},
		{name: "defaults", recycled: 60, renewable: 40, efficiency: 50, want: []float64{100, 87.5, 75, 62.5, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Trajectory(tt.recycled, tt.renewable, tt.efficiency)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], 1e-9, "milestone %d", i)
			}
		})
	}
}

func TestTrajectory_FirstPointIsBaseline(t *testing.T) {
	for _, v := range []float64{0, 17, 50, 83, 100} {
		//nolint:testifylint // exact equality is the property under test
		assert.Equal(t, 100.0, Trajectory(v, v, v)[0])
	}
}

func TestRoadmapTimeline(t *testing.T) {
	tl := RoadmapTimeline(100, 100, 100)

	assert.Equal(t, []int{2025, 2027, 2029, 2031, 2033}, tl.Years)
	assert.InDelta(t, 15.0, tl.MarkerY[0], 1e-9)
	assert.InDelta(t, 51.0, tl.MarkerY[4], 1e-9)
	assert.InDelta(t, 5.0, tl.FlagHeights[0], 1e-9)
	assert.InDelta(t, 18.5, tl.FlagHeights[4], 1e-9)
	assert.Len(t, tl.Colors, 5)
	assert.InDelta(t, 50.0, tl.AxisY, 1e-9)

	s := tl.ReductionSeries()
	assert.Equal(t, []float64{2025, 2027, 2029, 2031, 2033}, s.X)
	assert.Equal(t, tl.Reductions, s.Y)
	assert.True(t, s.Dashed)
}

func TestBenchmarkRadar(t *testing.T) {
	r := BenchmarkRadar(60, 40, 50)

	require.Len(t, r.Series, 2)
	assert.Equal(t, IndustryAverageName, r.Series[0].Name)
	assert.Equal(t, []float64{3.0, 2.5, 2.2, 2.8, 2.3}, r.Series[0].Values)
	assert.True(t, r.Series[0].Dashed)

	assert.Equal(t, OurStrategyName, r.Series[1].Name)
	want := []float64{3.0, 2.0, 3.5, 2.5, 4.2}
	for i := range want {
		assert.InDelta(t, want[i], r.Series[1].Values[i], 1e-9)
	}
	assert.Len(t, r.Categories, 5)
	assert.InDelta(t, 5.0, r.Max, 1e-9)
}

func TestScenarioBars(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		b := ScenarioBars(125000, 62500)
		require.Len(t, b.Bars, 2)
		assert.Equal(t, BaselineLabel, b.Bars[0].Label)
		assert.Equal(t, ProjectedLabel, b.Bars[1].Label)
		assert.Equal(t, "↓ 62,500 tCO₂e (50.0%)", b.Annotation)
		assert.InDelta(t, 125000.0, b.MaxValue(), 1e-9)
	})

	t.Run("zero baseline reports no reduction", func(t *testing.T) {
		b := ScenarioBars(0, 0)
		assert.Equal(t, "↓ 0 tCO₂e (0.0%)", b.Annotation)
		assert.InDelta(t, 0.0, b.MaxValue(), 1e-9)
	})
}

func TestMaterialBreakdown(t *testing.T) {
	b := MaterialBreakdown()
	sum := 0.0
	for _, bar := range b.Bars {
		sum += bar.Value
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
	assert.True(t, b.Horizontal)
}

func TestShapers_Idempotent(t *testing.T) {
	in := engine.DefaultInputs()
	m := engine.ComputeMetrics(in, engine.BaselineEmissions)

	assert.Equal(t, BuildSet(in, m), BuildSet(in, m))
}

func TestSet_Get(t *testing.T) {
	in := engine.DefaultInputs()
	set := BuildSet(in, engine.ComputeMetrics(in, engine.BaselineEmissions))

	for _, k := range Kinds() {
		shape, err := set.Get(k)
		require.NoError(t, err, k)
		assert.NotNil(t, shape)
	}

	_, err := set.Get("pie")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("radar")
	require.NoError(t, err)
	assert.Equal(t, KindRadar, k)

	_, err = ParseKind("pie")
	require.ErrorIs(t, err, ErrUnknownKind)
}
