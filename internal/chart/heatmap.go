package chart

import (
	"math"
	"strconv"

	"github.com/rshade/cbamquest/internal/engine"
)

// Heatmap grid bounds and slopes.
const (
	heatmapFirstYear   = 2026
	heatmapYearCount   = 5
	heatmapMax         = 5.0
	heatmapMin         = 0.0
	heatmapRegionSlope = 0.8
	heatmapYearSlope   = 0.3
)

// HeatmapYears returns the heatmap columns, 2026 through 2030.
func HeatmapYears() []int {
	years := make([]int, heatmapYearCount)
	for i := range years {
		years[i] = heatmapFirstYear + i
	}
	return years
}

// HeatmapCell is the CBAM impact score for the region at regionIndex in year.
// Impact is highest for Europe in the first year and falls off linearly by
// region and year, bounded to [0,5].
func HeatmapCell(regionIndex, year int) float64 {
	impact := heatmapMax - float64(regionIndex)*heatmapRegionSlope - float64(year-heatmapFirstYear)*heatmapYearSlope
	return math.Max(heatmapMin, math.Min(heatmapMax, impact))
}

// Heatmap builds the CBAM impact grid over engine.Regions() x HeatmapYears().
//
// The grid is a fixed illustration: targetRegions and carbonPrice are
// accepted so callers pass the current selection, but they do not change
// any cell.
func Heatmap(targetRegions []engine.Region, carbonPrice float64) Grid {
	regions := engine.Regions()
	years := HeatmapYears()

	g := Grid{
		Title:      "CBAM Impact Heatmap",
		Rows:       make([]string, len(regions)),
		Cols:       make([]string, len(years)),
		Values:     make([][]float64, len(regions)),
		Min:        heatmapMin,
		Max:        heatmapMax,
		ColorScale: heatmapScale(),
	}
	for j, y := range years {
		g.Cols[j] = strconv.Itoa(y)
	}
	for i, r := range regions {
		g.Rows[i] = string(r)
		row := make([]float64, len(years))
		for j, y := range years {
			row[j] = HeatmapCell(i, y)
		}
		g.Values[i] = row
	}
	return g
}
