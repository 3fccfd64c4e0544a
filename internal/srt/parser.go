package srt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Block is one subtitle cue. The time range is kept as raw text so that
// malformed timestamps survive a round trip instead of aborting the
// parse; ParseTimestamp is applied only where arithmetic is needed.
type Block struct {
	Index     int
	TimeRange string
	Text      string
}

// Times parses both ends of the block's time range.
func (b Block) Times() (start, end time.Duration, err error) {
	startStr, endStr, ok := SplitTimeRange(b.TimeRange)
	if !ok {
		return 0, 0, fmt.Errorf("invalid time range %q", b.TimeRange)
	}
	if start, err = ParseTimestamp(startStr); err != nil {
		return 0, 0, err
	}
	if end, err = ParseTimestamp(endStr); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// Report is the result of one parse pass. The fallback counter lives
// here rather than in package state, so concurrent parses never
// interfere.
type Report struct {
	Blocks    []Block
	Fallbacks int // blocks whose index was synthesized
	Skipped   int // chunks without a time-range line
}

// Parse splits raw SRT text into blocks. Chunks are separated by blank
// lines; within a chunk the first line matching the time-range pattern
// is the anchor, lines before it are the index candidate and lines
// after it are the text. A missing or non-numeric index is repaired
// with a sequential fallback number. Chunks with no anchor are dropped
// as non-cue noise.
func Parse(content string) Report {
	content = strings.TrimPrefix(content, "\ufeff")
	content = normalizeNewlines(content)

	var report Report
	counter := 1

	for _, chunk := range strings.Split(strings.TrimSpace(content), "\n\n") {
		lines := strings.Split(strings.TrimSpace(chunk), "\n")
		if len(lines) == 0 || lines[0] == "" {
			continue
		}

		anchor := -1
		for i, line := range lines {
			if timeRangePattern.MatchString(line) {
				anchor = i
				break
			}
		}
		if anchor == -1 {
			report.Skipped++
			continue
		}

		index, ok := parseIndex(lines[:anchor])
		if !ok {
			index = counter
			report.Fallbacks++
		}

		report.Blocks = append(report.Blocks, Block{
			Index:     index,
			TimeRange: strings.TrimSpace(lines[anchor]),
			Text:      strings.TrimSpace(strings.Join(lines[anchor+1:], "\n")),
		})
		counter++
	}

	return report
}

// ParseBlocks is Parse without the diagnostics.
func ParseBlocks(content string) []Block {
	return Parse(content).Blocks
}

func parseIndex(lines []string) (int, bool) {
	joined := strings.TrimSpace(strings.Join(lines, "\n"))
	if joined == "" {
		return 0, false
	}
	index, err := strconv.Atoi(joined)
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}

// normalizeNewlines converts CRLF line endings so the blank-line chunk
// convention holds for Windows-saved files and CRLF translator output.
func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
