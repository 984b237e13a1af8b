package tui

import (
	"math"
	"strings"
)

// sparkBlocks are ordered from lowest to highest.
//
//nolint:gochecknoglobals // Lookup table.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline draws values as block characters scaled to [lo,hi].
// Values outside the range are clamped; an empty or degenerate range draws
// the lowest block.
func RenderSparkline(values []float64, lo, hi float64) string {
	if len(values) == 0 {
		return ""
	}

	var sb strings.Builder
	span := hi - lo
	top := len(sparkBlocks) - 1
	for _, v := range values {
		idx := 0
		if span > 0 {
			idx = int(math.Round((v - lo) / span * float64(top)))
		}
		idx = max(0, min(top, idx))
		sb.WriteRune(sparkBlocks[idx])
	}
	return sb.String()
}
