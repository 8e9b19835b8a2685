// Package schedule flags day/time conflicts between selected sections,
// projects them onto a weekly calendar, and totals their prices.
package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// timePattern matches one endpoint of a meeting-time range, e.g. "9:00am" or
// "12:30 PM". Only the first letter of the AM/PM marker matters.
var timePattern = regexp.MustCompile(`(?i)^\s*(\d+):(\d+)\s*([ap])`)

// TimeRange is a meeting time in minutes since midnight. A malformed or
// missing source string parses to the zero range, which never overlaps
// anything.
type TimeRange struct {
	Start int
	End   int
}

// ParseTimeRange parses a "<start>-<end>" 12-hour meeting time into minutes
// since midnight, using the usual conversion rules: 12pm stays 12:00, 12am
// becomes 00:00.
func ParseTimeRange(s string) TimeRange {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return TimeRange{}
	}
	start, okStart := parseClock(parts[0])
	end, okEnd := parseClock(parts[1])
	if !okStart || !okEnd {
		return TimeRange{}
	}
	return TimeRange{Start: start, End: end}
}

func parseClock(s string) (int, bool) {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	hour = hour % 12
	if strings.EqualFold(m[3], "p") {
		hour += 12
	}
	return hour*60 + minute, true
}

// Clock24 renders minutes since midnight as an HH:MM:00 calendar timestamp.
func Clock24(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}
