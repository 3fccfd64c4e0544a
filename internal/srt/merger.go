package srt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Merge recombines a time stream and a sentence stream (typically after
// the sentence stream was rewritten by an external translator) into SRT
// text. Chunks are paired by position. Output blocks are renumbered
// 1..N with no gaps; the indices carried by the streams only serve to
// strip an echoed index from the sentence payload.
//
// A sentence entry with more than one text line becomes one output
// block per line, with the original time range subdivided in proportion
// to each line's rune length. The final sub-block ends exactly at the
// original end instant so no drift accumulates at the boundary.
func Merge(timeStream, sentenceStream string) string {
	timeStream = normalizeNewlines(timeStream)
	sentenceStream = normalizeNewlines(sentenceStream)

	timeChunks := strings.Split(strings.TrimSpace(timeStream), "\n\n")
	sentenceChunks := strings.Split(strings.TrimSpace(sentenceStream), "\n\n")

	pairs := len(timeChunks)
	if len(sentenceChunks) < pairs {
		pairs = len(sentenceChunks)
	}

	var output []string
	counter := 1

	for i := 0; i < pairs; i++ {
		tLines := strings.Split(strings.TrimSpace(timeChunks[i]), "\n")
		sLines := strings.Split(strings.TrimSpace(sentenceChunks[i]), "\n")

		if len(tLines) < 2 || len(sLines) < 1 {
			continue
		}

		originalIndex := strings.TrimSpace(tLines[0])
		timeRange := strings.TrimSpace(tLines[1])
		textLines := stripEchoedIndex(sLines, originalIndex)

		if len(textLines) == 0 {
			continue
		}

		if len(textLines) == 1 {
			output = append(output, formatMerged(counter, timeRange, textLines[0]))
			counter++
			continue
		}

		subBlocks, err := subdivide(counter, timeRange, textLines)
		if err != nil {
			// degrade to a single block for this chunk only
			joined := strings.Join(textLines, "\n")
			output = append(output, formatMerged(counter, timeRange, joined))
			counter++
			continue
		}
		output = append(output, subBlocks...)
		counter += len(subBlocks)
	}

	return strings.Join(output, "\n")
}

// stripEchoedIndex drops a leading line that merely repeats the paired
// time chunk's index (external tools sometimes echo it back into the
// text body), then filters blank lines.
func stripEchoedIndex(lines []string, originalIndex string) []string {
	if isDigits(lines[0]) && lines[0] == originalIndex {
		lines = lines[1:]
	}

	var kept []string
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return kept
}

// subdivide splits timeRange across the lines by rune-length weight.
func subdivide(counter int, timeRange string, lines []string) ([]string, error) {
	startStr, endStr, ok := SplitTimeRange(timeRange)
	if !ok {
		return nil, fmt.Errorf("invalid time range %q", timeRange)
	}
	start, err := ParseTimestamp(startStr)
	if err != nil {
		return nil, err
	}
	end, err := ParseTimestamp(endStr)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, line := range lines {
		total += utf8.RuneCountInString(line)
	}
	if total == 0 {
		return nil, fmt.Errorf("zero total text length")
	}

	sep := byte('.')
	if strings.Contains(timeRange, ",") {
		sep = ','
	}

	duration := end - start
	blocks := make([]string, 0, len(lines))
	current := start

	for i, line := range lines {
		// integer arithmetic keeps sub-block boundaries exact
		share := duration * time.Duration(utf8.RuneCountInString(line)) / time.Duration(total)
		lineEnd := current + share
		if i == len(lines)-1 {
			lineEnd = end
		}

		subRange := FormatTimestamp(current, sep) + rangeArrow + FormatTimestamp(lineEnd, sep)
		blocks = append(blocks, formatMerged(counter+i, subRange, line))
		current = lineEnd
	}

	return blocks, nil
}

func formatMerged(index int, timeRange, text string) string {
	return strconv.Itoa(index) + "\n" + timeRange + "\n" + text + "\n"
}
