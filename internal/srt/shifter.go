package srt

import (
	"fmt"
	"strings"
)

// ShiftAll applies a time offset to every block whose stored index is
// at or past startIndex. Blocks below the cutoff pass through
// untouched. The result is a new slice; ordering and indices are
// preserved, the shifter never renumbers.
func ShiftAll(blocks []Block, startIndex int, offsetSeconds float64) []Block {
	shifted := make([]Block, len(blocks))
	for i, block := range blocks {
		if block.Index >= startIndex {
			block.TimeRange = ShiftTimeRange(block.TimeRange, offsetSeconds)
		}
		shifted[i] = block
	}
	return shifted
}

// FormatBlocks renders blocks back to SRT text, keeping their stored
// indices and raw time ranges.
func FormatBlocks(blocks []Block) string {
	parts := make([]string, len(blocks))
	for i, block := range blocks {
		parts[i] = fmt.Sprintf("%d\n%s\n%s\n", block.Index, block.TimeRange, block.Text)
	}
	return strings.Join(parts, "\n")
}
