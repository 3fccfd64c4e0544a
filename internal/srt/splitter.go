package srt

import (
	"fmt"
	"strings"
)

// TimeEntry is the timing half of a split block.
type TimeEntry struct {
	Index     int
	TimeRange string
}

// SentenceEntry is the text half of a split block.
type SentenceEntry struct {
	Index int
	Text  string
}

// legacy correction for an authoring-tool artifact that inflates every
// timestamp after the first cue by one hour
const (
	LegacyShiftSeconds   = -3600.0
	LegacyShiftFromIndex = 2
)

// SplitEntries projects a block sequence into its two parallel streams.
// Entries are paired by position; both slices always have the same
// length as the input.
func SplitEntries(blocks []Block) ([]TimeEntry, []SentenceEntry) {
	times := make([]TimeEntry, len(blocks))
	sentences := make([]SentenceEntry, len(blocks))

	for i, block := range blocks {
		times[i] = TimeEntry{Index: block.Index, TimeRange: block.TimeRange}
		sentences[i] = SentenceEntry{Index: block.Index, Text: block.Text}
	}

	return times, sentences
}

// EncodeTimeStream serializes time entries in the blank-line chunk
// convention, so the stream is re-parseable by the same chunk split the
// merger uses.
func EncodeTimeStream(entries []TimeEntry) string {
	var sb strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&sb, "%d\n%s\n\n", entry.Index, entry.TimeRange)
	}
	return sb.String()
}

// EncodeSentenceStream serializes sentence entries in the same chunk
// convention.
func EncodeSentenceStream(entries []SentenceEntry) string {
	var sb strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&sb, "%d\n%s\n\n", entry.Index, entry.Text)
	}
	return sb.String()
}
