package timecheck

import (
	"regexp"
	"strconv"
	"strings"
)

var timeRe = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

// IsValidTimeFormat reports whether s is an H:MM or HH:MM clock time with
// hour 0-23 and minute 00-59. Empty and malformed input return false.
func IsValidTimeFormat(s string) bool {
	return timeRe.MatchString(s)
}

// IsValidTimeRange re-parses both components as integers and checks bounds.
// Redundant with the format check except it guards numeric parsing on
// pathological input.
func IsValidTimeRange(s string) bool {
	if !IsValidTimeFormat(s) {
		return false
	}
	parts := strings.SplitN(s, ":", 2)
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	return h >= 0 && h <= 23 && m >= 0 && m <= 59
}

// IsEndTimeAfterStartTime reports whether end is strictly later than start
// within the same day. Equal times are not "after"; no overnight wraparound.
func IsEndTimeAfterStartTime(start, end string) bool {
	if !IsValidTimeFormat(start) || !IsValidTimeFormat(end) {
		return false
	}
	return minuteOfDay(end) > minuteOfDay(start)
}

func minuteOfDay(s string) int {
	parts := strings.SplitN(s, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}
