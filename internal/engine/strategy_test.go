package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultInputs(t *testing.T) {
	in := DefaultInputs()
	assert.InDelta(t, 60.0, in.RecycledContent, 0)
	assert.InDelta(t, 40.0, in.RenewableEnergy, 0)
	assert.InDelta(t, 50.0, in.ProcessEfficiency, 0)
	assert.InDelta(t, 90.0, in.CarbonPrice, 0)
	assert.Equal(t, []Region{RegionEurope}, in.TargetRegions)
}

func TestStrategyInputs_Normalize(t *testing.T) {
	in := StrategyInputs{
		RecycledContent:   140,
		RenewableEnergy:   -5,
		ProcessEfficiency: math.NaN(),
		CarbonPrice:       93,
		TargetRegions:     []Region{RegionAsia, RegionEurope, RegionAsia},
	}
	got := in.Normalize()

	assert.InDelta(t, 100.0, got.RecycledContent, 0)
	assert.InDelta(t, 0.0, got.RenewableEnergy, 0)
	assert.InDelta(t, 0.0, got.ProcessEfficiency, 0)
	assert.InDelta(t, 95.0, got.CarbonPrice, 0)
	assert.Equal(t, []Region{RegionAsia, RegionEurope}, got.TargetRegions)

	// original is untouched
	assert.Len(t, in.TargetRegions, 3)
}

func TestClampCarbonPrice(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{in: 10, want: 50},
		{in: 50, want: 50},
		{in: 92.4, want: 90},
		{in: 92.6, want: 95},
		{in: 1000, want: 150},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, ClampCarbonPrice(tt.in), 0, "input %v", tt.in)
	}
}

func TestParseRegions(t *testing.T) {
	got, err := ParseRegions([]string{"europe", " UK ", "", "Europe", "north america"})
	require.NoError(t, err)
	assert.Equal(t, []Region{RegionEurope, RegionUK, RegionNorthAmerica}, got)

	_, err = ParseRegions([]string{"Atlantis"})
	require.ErrorIs(t, err, ErrUnknownRegion)
}

func TestStrategyInputs_Helpers(t *testing.T) {
	in := DefaultInputs()
	assert.InDelta(t, 150.0, in.PercentSum(), 0)
	assert.True(t, in.HasRegion(RegionEurope))
	assert.False(t, in.HasRegion(RegionAsia))
	assert.Len(t, Regions(), 5)
}
