package schedule

import (
	"time"

	"vendora/models"
)

// IsDayAvailable reports whether the weekday of a calendar date is open
// per the service's availability.
func IsDayAvailable(avail models.WeeklyAvailability, date time.Time) bool {
	return avail.Day(models.WeekdayOf(date)).Available
}

// ValidateWindow checks that a candidate start/end time range is permitted
// by the given weekday's availability window. An end time of "00:00" (the
// window's or the candidate's) means midnight at the end of the day. For
// windows that span past midnight (end earlier in clock time than start),
// candidate times earlier than the window start are treated as falling in
// the next-day tail of the window.
func ValidateWindow(avail models.WeeklyAvailability, day models.Weekday, candidateStart, candidateEnd string) error {
	win := avail.Day(day)
	if !win.Available {
		return NewValidationError(KindDayNotAvailable, "%s is not available", day)
	}

	winStart, err := TimeToMinutes(win.StartTime)
	if err != nil {
		return err
	}
	winEnd, err := endOfWindowMinutes(win.EndTime)
	if err != nil {
		return err
	}
	candStart, err := TimeToMinutes(candidateStart)
	if err != nil {
		return err
	}
	candEnd, err := endOfWindowMinutes(candidateEnd)
	if err != nil {
		return err
	}

	if winEnd <= winStart {
		// Window spans past midnight. Shift its end, and any candidate time
		// that lands in the early-morning tail, into next-day minutes.
		winEnd += minutesPerDay
		if candStart < winStart {
			candStart += minutesPerDay
			candEnd += minutesPerDay
		} else if candEnd <= candStart {
			candEnd += minutesPerDay
		}
	}

	if candStart < winStart || candEnd > winEnd {
		return NewValidationError(KindOutOfWindow,
			"%s to %s is outside %s's window of %s to %s",
			candidateStart, candidateEnd, day, win.StartTime, win.EndTime)
	}
	if candEnd <= candStart && candEnd != minutesPerDay {
		return NewValidationError(KindInvalidTimeOrder,
			"end time %s is not after start time %s", candidateEnd, candidateStart)
	}
	return nil
}
