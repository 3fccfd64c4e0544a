package srt

import (
	"fmt"
	"strings"
)

// lines of context captured around a format violation
const contextRadius = 5

// FormatError reports a numeric line that is not preceded by a blank
// line, which breaks the blank-line chunk convention the merger relies
// on. Line is zero-based into the trimmed content.
type FormatError struct {
	Line    int
	Context string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("block index on line %d is not preceded by a blank line", e.Line+1)
}

// SequenceError reports the first gap or repeat in block numbering.
type SequenceError struct {
	Expected int
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("block numbering is not sequential: expected %d", e.Expected)
}

// CheckFormat verifies that every purely numeric line (a candidate
// block index) follows a blank line. Returns nil when the content is
// well formed.
func CheckFormat(content string) *FormatError {
	lines := strings.Split(strings.TrimSpace(normalizeNewlines(content)), "\n")
	if len(lines) <= 1 {
		return nil
	}

	for i := 1; i < len(lines); i++ {
		if isDigits(strings.TrimSpace(lines[i])) && strings.TrimSpace(lines[i-1]) != "" {
			return &FormatError{Line: i, Context: contextWindow(lines, i)}
		}
	}
	return nil
}

// CheckSequence re-parses the content and verifies that block indices
// run exactly 1, 2, 3, ... with no gaps or repeats. This catches an
// external process silently dropping or duplicating a cue.
func CheckSequence(content string) *SequenceError {
	expected := 1
	for _, block := range ParseBlocks(content) {
		if block.Index != expected {
			return &SequenceError{Expected: expected}
		}
		expected++
	}
	return nil
}

// ValidateTranslation gates externally produced text: both the format
// check and the sequential-numbering check must pass before the content
// is trusted back into the pipeline.
func ValidateTranslation(content string) error {
	if err := CheckFormat(content); err != nil {
		return err
	}
	if err := CheckSequence(content); err != nil {
		return err
	}
	return nil
}

func contextWindow(lines []string, violation int) string {
	start := violation - contextRadius
	if start < 0 {
		start = 0
	}
	end := violation + contextRadius + 1
	if end > len(lines) {
		end = len(lines)
	}

	var sb strings.Builder
	for i := start; i < end; i++ {
		prefix := "   "
		if i == violation {
			prefix = ">> "
		}
		fmt.Fprintf(&sb, "%s%03d: %s\n", prefix, i+1, lines[i])
	}
	return sb.String()
}
