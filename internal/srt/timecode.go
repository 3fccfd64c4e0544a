package srt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// SRT timestamp: HH:MM:SS followed by ',' or '.' and exactly three
// fraction digits. Hours are not capped at 24 because some sources
// encode episode-relative offsets past a day.
var timestampPattern = regexp.MustCompile(`^(\d{2,}):(\d{2}):(\d{2})[,.](\d{3})$`)

// time-range line as it appears inside a block, tolerant of
// surrounding text and whitespace
var timeRangePattern = regexp.MustCompile(
	`(\d{2,}:\d{2}:\d{2}[,.]\d{3})\s*-->\s*(\d{2,}:\d{2}:\d{2}[,.]\d{3})`,
)

const rangeArrow = " --> "

// converts an SRT timestamp string to a duration since zero
func ParseTimestamp(s string) (time.Duration, error) {
	matches := timestampPattern.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return 0, fmt.Errorf("invalid timestamp %q", s)
	}

	h, _ := strconv.Atoi(matches[1])
	m, _ := strconv.Atoi(matches[2])
	sec, _ := strconv.Atoi(matches[3])
	ms, _ := strconv.Atoi(matches[4])

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}

// renders a duration as an SRT timestamp; sep is ',' or '.'
func FormatTimestamp(d time.Duration, sep byte) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int(d/time.Minute) % 60
	seconds := int(d/time.Second) % 60
	millis := int(d/time.Millisecond) % 1000

	return fmt.Sprintf("%02d:%02d:%02d%c%03d", hours, minutes, seconds, sep, millis)
}

// adds a signed fractional-second offset, clamping at zero so a large
// negative correction never produces a negative timestamp
func Shift(d time.Duration, offsetSeconds float64) time.Duration {
	shifted := d + time.Duration(offsetSeconds*float64(time.Second))
	if shifted < 0 {
		return 0
	}
	return shifted
}

// ShiftTimestamp shifts a timestamp string, preserving its millisecond
// separator. Unparseable input is returned trimmed but otherwise
// unchanged: malformed timestamps in a source file must not abort the
// whole file.
func ShiftTimestamp(s string, offsetSeconds float64) string {
	trimmed := strings.TrimSpace(s)

	d, err := ParseTimestamp(trimmed)
	if err != nil {
		return trimmed
	}

	sep := byte('.')
	if strings.Contains(trimmed, ",") {
		sep = ','
	}
	return FormatTimestamp(Shift(d, offsetSeconds), sep)
}

// ShiftTimeRange shifts both ends of a "start --> end" line. Lines that
// do not contain a range pass through unchanged.
func ShiftTimeRange(s string, offsetSeconds float64) string {
	trimmed := strings.TrimSpace(s)

	start, end, ok := SplitTimeRange(trimmed)
	if !ok {
		return trimmed
	}

	return ShiftTimestamp(start, offsetSeconds) +
		rangeArrow +
		ShiftTimestamp(end, offsetSeconds)
}

// SplitTimeRange extracts the two timestamps of a time-range line.
func SplitTimeRange(s string) (start, end string, ok bool) {
	matches := timeRangePattern.FindStringSubmatch(s)
	if matches == nil {
		return "", "", false
	}
	return matches[1], matches[2], true
}
