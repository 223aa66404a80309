// Package clocktime parses and formats time-of-day strings as used in
// attendance session rows. Times are plain clock readings ("9:05:00 AM" or
// "17:30:00") and are never combined with a calendar date.
package clocktime

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MillisPerHour converts between millisecond durations and hour floats.
	MillisPerHour = int64(60 * 60 * 1000)

	millisPerMinute = int64(60 * 1000)
)

// ErrInvalidClockTime is wrapped by every parse failure.
var ErrInvalidClockTime = fmt.Errorf("invalid clock time")

// Parse converts a clock-time string to milliseconds since midnight.
//
// Two layouts are accepted: 12-hour with an AM/PM suffix ("9:05:00 AM",
// seconds optional) and 24-hour colon-separated ("09:05:00", zero padding
// tolerated). An empty or all-whitespace input parses to 0. Anything else
// returns an error; invalid numbers never leak into aggregation sums.
func Parse(text string) (int64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, nil
	}

	timePart := trimmed
	meridiem := ""
	if fields := strings.Fields(trimmed); len(fields) == 2 {
		timePart = fields[0]
		meridiem = strings.ToUpper(fields[1])
		if meridiem != "AM" && meridiem != "PM" {
			return 0, fmt.Errorf("%w: unknown meridiem %q", ErrInvalidClockTime, fields[1])
		}
	} else if len(fields) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, text)
	}

	parts := strings.Split(timePart, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, text)
	}

	hour, err := parseComponent(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: hour in %q", ErrInvalidClockTime, text)
	}
	minute, err := parseComponent(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: minute in %q", ErrInvalidClockTime, text)
	}
	second := 0
	if len(parts) == 3 {
		second, err = parseComponent(parts[2])
		if err != nil {
			return 0, fmt.Errorf("%w: second in %q", ErrInvalidClockTime, text)
		}
	}

	switch meridiem {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, fmt.Errorf("%w: out of range %q", ErrInvalidClockTime, text)
	}

	return int64(hour*3600+minute*60+second) * 1000, nil
}

// FormatHoursMinutes renders a millisecond offset as "H:MM" with minutes
// floored, the display form used by the dashboard averages. Zero or negative
// input renders as "0:00".
func FormatHoursMinutes(millis int64) string {
	if millis <= 0 {
		return "0:00"
	}
	hours := millis / MillisPerHour
	minutes := (millis % MillisPerHour) / millisPerMinute
	return fmt.Sprintf("%d:%02d", hours, minutes)
}

// Hours converts a millisecond duration to fractional hours.
func Hours(millis int64) float64 {
	return float64(millis) / float64(MillisPerHour)
}

func parseComponent(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(s)
}
