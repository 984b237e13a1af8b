package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoadmapPhases(t *testing.T) {
	t.Run("defaults substitute projected targets", func(t *testing.T) {
		phases := RoadmapPhases(60, 40, 50)
		require.Len(t, phases, 4)

		assert.Equal(t, PhaseOneLabel, phases[0].Label)
		assert.Equal(t, []string{
			"Increase recycled content to 75%",
			"Transition 60% energy to renewable sources",
			"Optimize transportation logistics (-15% emissions)",
		}, phases[0].Actions)

		assert.Equal(t, PhaseTwoLabel, phases[1].Label)
		assert.Equal(t, "Implement AI-driven process efficiency (+65%)", phases[1].Actions[0])
	})

	t.Run("targets cap at 100", func(t *testing.T) {
		phases := RoadmapPhases(95, 90, 99)
		assert.Equal(t, "Increase recycled content to 100%", phases[0].Actions[0])
		assert.Equal(t, "Transition 100% energy to renewable sources", phases[0].Actions[1])
		assert.Equal(t, "Implement AI-driven process efficiency (+100%)", phases[1].Actions[0])
	})

	t.Run("structure is fixed", func(t *testing.T) {
		for _, in := range [][3]float64{{0, 0, 0}, {100, 100, 100}, {12, 57, 83}} {
			phases := RoadmapPhases(in[0], in[1], in[2])
			require.Len(t, phases, 4)
			labels := make([]string, 0, len(phases))
			for _, p := range phases {
				assert.Len(t, p.Actions, 3)
				labels = append(labels, p.Label)
			}
			assert.Equal(t, PhaseLabels(), labels)
		}
	})

	t.Run("later phases ignore inputs", func(t *testing.T) {
		a := RoadmapPhases(0, 0, 0)
		b := RoadmapPhases(100, 100, 100)
		assert.Equal(t, a[2:], b[2:])
	})

	t.Run("fractional inputs keep one decimal", func(t *testing.T) {
		phases := RoadmapPhases(60.5, 40, 50)
		assert.Equal(t, "Increase recycled content to 75.5%", phases[0].Actions[0])
	})
}

func TestPhaseByLabel(t *testing.T) {
	phases := RoadmapPhases(60, 40, 50)

	p, err := PhaseByLabel(phases, TargetLabel)
	require.NoError(t, err)
	assert.Equal(t, "Full carbon neutrality across value chain", p.Actions[2])

	_, err = PhaseByLabel(phases, "PHASE 9")
	require.ErrorIs(t, err, ErrUnknownPhase)
}
