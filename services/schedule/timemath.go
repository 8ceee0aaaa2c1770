package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// minutesPerDay is also used as the sentinel for "midnight, end of window".
const minutesPerDay = 1440

// TimeToMinutes converts a zero-padded 24-hour "HH:MM" string to minutes
// from midnight, in [0, 1439].
func TimeToMinutes(t string) (int, error) {
	h, m, err := splitClock(t)
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// MinutesToTime renders minutes from midnight as "HH:MM". It does not wrap:
// callers that mean "end of day" keep the 1440 sentinel out of display paths.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatTo12Hour renders "HH:MM" as e.g. "9:30 AM". Hour 0 and hour 12 both
// display as 12; the period flips at noon.
func FormatTo12Hour(t string) (string, error) {
	h, m, err := splitClock(t)
	if err != nil {
		return "", err
	}
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, m, period), nil
}

// Parse12HourTo24 converts "H:MM AM|PM" back to zero-padded "HH:MM". It is
// the inverse of FormatTo12Hour; display conversions must round-trip
// losslessly before anything is validated or submitted.
func Parse12HourTo24(t string) (string, error) {
	fields := strings.Fields(strings.TrimSpace(t))
	if len(fields) != 2 {
		return "", NewValidationError(KindInvalidTimeFormat, "invalid 12-hour time %q", t)
	}
	period := strings.ToUpper(fields[1])
	if period != "AM" && period != "PM" {
		return "", NewValidationError(KindInvalidTimeFormat, "invalid period in %q", t)
	}
	parts := strings.Split(fields[0], ":")
	if len(parts) != 2 {
		return "", NewValidationError(KindInvalidTimeFormat, "invalid 12-hour time %q", t)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 1 || h > 12 {
		return "", NewValidationError(KindInvalidTimeFormat, "invalid hour in %q", t)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 || len(parts[1]) != 2 {
		return "", NewValidationError(KindInvalidTimeFormat, "invalid minute in %q", t)
	}
	if period == "AM" {
		if h == 12 {
			h = 0
		}
	} else if h != 12 {
		h += 12
	}
	return fmt.Sprintf("%02d:%02d", h, m), nil
}

// endOfWindowMinutes converts an end time to minutes, mapping "00:00" to the
// 1440 sentinel so a window or booking ending exactly at midnight compares
// as end-of-day rather than start-of-day.
func endOfWindowMinutes(t string) (int, error) {
	m, err := TimeToMinutes(t)
	if err != nil {
		return 0, err
	}
	if m == 0 {
		return minutesPerDay, nil
	}
	return m, nil
}

func splitClock(t string) (int, int, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, NewValidationError(KindInvalidTimeFormat, "invalid time %q, want \"HH:MM\"", t)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, NewValidationError(KindInvalidTimeFormat, "invalid hour in %q", t)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, NewValidationError(KindInvalidTimeFormat, "invalid minute in %q", t)
	}
	return h, m, nil
}
