package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// clockPattern extracts hour, optional minutes and optional meridiem from a
// free-text clock value like "9:00 AM", "14:30" or "9 pm".
var clockPattern = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{1,2}))?\s*(AM|PM)?`)

// availabilityPattern is the expected shape of a volunteer availability
// window: "H:MM AM/PM - H:MM AM/PM".
var availabilityPattern = regexp.MustCompile(`(?i)^\s*\d{1,2}:\d{2}\s?(AM|PM)\s*-\s*\d{1,2}:\d{2}\s?(AM|PM)\s*$`)

// ParseClock converts a clock string to a minute-of-day value (0-1439).
//
// Accepts "H:MM" (24-hour) and "H:MM AM/PM" (12-hour, case-insensitive).
// 12 AM maps to hour 0 and 12 PM stays hour 12. Missing or unparseable
// minutes default to 0. Empty or fully unparseable input returns 0
// (midnight) rather than an error: callers that must distinguish
// "unspecified" from "midnight" have to check for empty input themselves.
func ParseClock(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	m := clockPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}

	hour, _ := strconv.Atoi(m[1])
	minutes := 0
	if m[2] != "" {
		if v, err := strconv.Atoi(m[2]); err == nil {
			minutes = v
		}
	}

	switch strings.ToUpper(m[3]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	}

	return hour*60 + minutes
}

// FormatMinutes renders a minute-of-day value as "H:MM AM/PM".
func FormatMinutes(minutes int) string {
	hour := minutes / 60
	mins := minutes % 60

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}

	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour12, mins, meridiem)
}

// ParseAvailabilityRange parses a volunteer availability window of the form
// "H:MM AM/PM - H:MM AM/PM". The boolean is false when the text does not
// match that shape.
func ParseAvailabilityRange(text string) (TimeRange, bool) {
	if !availabilityPattern.MatchString(text) {
		return TimeRange{}, false
	}

	parts := strings.SplitN(text, "-", 2)
	return TimeRange{
		Start: ParseClock(parts[0]),
		End:   ParseClock(parts[1]),
	}, true
}
