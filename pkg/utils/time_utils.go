package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock arithmetic works on plain minutes-since-midnight integers so the
// validators stay bit-exact across platforms. Edge cases: "12:00 AM" is
// minute 0, "12:00 PM" is minute 720. A bare hour without minutes
// ("8 AM") does not parse; the 12-hour strings this system emits always
// carry minutes.

// ParseClockMinutes parses a 12-hour clock string ("8:00 AM", "12:30 PM")
// into minutes since midnight. The second return is false when the string
// is empty or unparseable.
func ParseClockMinutes(s string) (int, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	parts := strings.Fields(strings.ReplaceAll(s, ":", " "))
	if len(parts) == 0 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute := 0
	if len(parts) > 1 {
		minute, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, false
		}
	}
	if strings.Contains(s, "PM") && hour != 12 {
		hour += 12
	} else if strings.Contains(s, "AM") && hour == 12 {
		hour = 0
	}
	return hour*60 + minute, true
}

// FormatClock12 renders minutes since midnight as a 12-hour clock string.
func FormatClock12(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("12:%02d AM", m)
	case h < 12:
		return fmt.Sprintf("%d:%02d AM", h, m)
	case h == 12:
		return fmt.Sprintf("12:%02d PM", m)
	default:
		return fmt.Sprintf("%d:%02d PM", h-12, m)
	}
}
