package srt

import (
	"strings"
	"testing"
)

func TestShiftAllFromIndex(t *testing.T) {
	blocks := ParseBlocks(`1
00:00:01,000 --> 00:00:02,000
One.

2
00:00:03,000 --> 00:00:04,000
Two.

3
00:00:05,000 --> 00:00:06,000
Three.
`)

	shifted := ShiftAll(blocks, 2, 10)

	if shifted[0].TimeRange != "00:00:01,000 --> 00:00:02,000" {
		t.Errorf("block below cutoff was shifted: %q", shifted[0].TimeRange)
	}
	if shifted[1].TimeRange != "00:00:13,000 --> 00:00:14,000" {
		t.Errorf("block 2: got %q", shifted[1].TimeRange)
	}
	if shifted[2].TimeRange != "00:00:15,000 --> 00:00:16,000" {
		t.Errorf("block 3: got %q", shifted[2].TimeRange)
	}

	// source slice is untouched
	if blocks[1].TimeRange != "00:00:03,000 --> 00:00:04,000" {
		t.Errorf("input was mutated: %q", blocks[1].TimeRange)
	}
}

func TestShiftAllComparesStoredIndexNotPosition(t *testing.T) {
	blocks := []Block{
		{Index: 5, TimeRange: "00:00:01,000 --> 00:00:02,000", Text: "a"},
		{Index: 1, TimeRange: "00:00:03,000 --> 00:00:04,000", Text: "b"},
	}

	shifted := ShiftAll(blocks, 3, 60)

	if shifted[0].TimeRange != "00:01:01,000 --> 00:01:02,000" {
		t.Errorf("index 5 should shift, got %q", shifted[0].TimeRange)
	}
	if shifted[1].TimeRange != "00:00:03,000 --> 00:00:04,000" {
		t.Errorf("index 1 should not shift, got %q", shifted[1].TimeRange)
	}
}

func TestShiftAllPassesThroughMalformedRanges(t *testing.T) {
	blocks := []Block{
		{Index: 1, TimeRange: "broken time line", Text: "a"},
	}

	shifted := ShiftAll(blocks, 1, 30)

	if shifted[0].TimeRange != "broken time line" {
		t.Errorf("expected passthrough, got %q", shifted[0].TimeRange)
	}
}

func TestFormatBlocksRoundTrip(t *testing.T) {
	original := `1
00:00:01,000 --> 00:00:02,000
One.

2
00:00:03,000 --> 00:00:04,000
Two lines
of text.
`
	blocks := ParseBlocks(original)
	formatted := FormatBlocks(blocks)
	reparsed := ParseBlocks(formatted)

	if len(reparsed) != len(blocks) {
		t.Fatalf("round trip changed block count: %d -> %d", len(blocks), len(reparsed))
	}
	for i := range blocks {
		if reparsed[i] != blocks[i] {
			t.Errorf("block %d changed: %+v -> %+v", i, blocks[i], reparsed[i])
		}
	}

	if !strings.HasSuffix(formatted, "of text.\n") {
		t.Errorf("unexpected trailing output: %q", formatted)
	}
}
