package booking

import (
	"fmt"
	"strings"
	"time"

	"vendora/models"
	"vendora/services/schedule"
)

const isoDate = "2006-01-02"

// BuildSpecificDates validates an ordered list of specific-date entries
// against the service's availability and returns the accepted set. The
// first violation aborts the whole request; duplicate (date, start, end)
// tuples are a user error, not silently dropped.
func BuildSpecificDates(avail models.WeeklyAvailability, entries []models.SpecificDateEntry) ([]models.SpecificDateEntry, error) {
	if len(entries) == 0 {
		return nil, schedule.NewValidationError(schedule.KindEmptySelection, "select at least one date")
	}

	seen := make(map[string]struct{}, len(entries))
	out := make([]models.SpecificDateEntry, 0, len(entries))
	for _, e := range entries {
		date, err := parseISODate(e.Date)
		if err != nil {
			return nil, err
		}
		day := models.WeekdayOf(date)
		if err := schedule.ValidateWindow(avail, day, e.StartTime, e.EndTime); err != nil {
			return nil, err
		}
		normalized := models.SpecificDateEntry{
			Date:      date.Format(isoDate),
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
		}
		key := occurrenceKey(normalized.Date, normalized.StartTime, normalized.EndTime)
		if _, dup := seen[key]; dup {
			return nil, schedule.NewValidationError(schedule.KindDuplicateEntry,
				"%s from %s to %s is already selected", normalized.Date, e.StartTime, e.EndTime)
		}
		seen[key] = struct{}{}
		out = append(out, normalized)
	}
	return out, nil
}

// BuildRecurring validates a recurring booking spec and returns it
// normalized (ISO start date, only the selected days' time slots). The
// start date's weekday is hard-validated against the selected days, and
// every selected day must carry a time slot.
func BuildRecurring(avail models.WeeklyAvailability, spec models.RecurringDetails) (*models.RecurringDetails, error) {
	if len(spec.Days) == 0 {
		return nil, schedule.NewValidationError(schedule.KindNoDaysSelected, "select at least one day of the week")
	}
	if strings.TrimSpace(spec.StartDate) == "" {
		return nil, schedule.NewValidationError(schedule.KindMissingStartDate, "a start date is required")
	}
	if spec.WeekCount < 1 {
		return nil, schedule.NewValidationError(schedule.KindInvalidWeekCount,
			"week count must be at least 1, got %d", spec.WeekCount)
	}

	start, err := parseISODate(spec.StartDate)
	if err != nil {
		return nil, err
	}
	startDay := models.WeekdayOf(start)
	if !containsDay(spec.Days, startDay) {
		return nil, schedule.NewValidationError(schedule.KindDayNotAvailable,
			"start date %s falls on %s, which is not one of the selected days", spec.StartDate, startDay)
	}

	normalized := &models.RecurringDetails{
		Days:      make([]models.Weekday, 0, len(spec.Days)),
		StartDate: start.Format(isoDate),
		WeekCount: spec.WeekCount,
		TimeSlots: make(map[models.Weekday]models.TimeSlot, len(spec.Days)),
	}
	for _, day := range spec.Days {
		if !day.Valid() {
			return nil, schedule.NewValidationError(schedule.KindDayNotAvailable, "%q is not a weekday", day)
		}
		if containsDay(normalized.Days, day) {
			return nil, schedule.NewValidationError(schedule.KindDuplicateEntry, "%s is selected twice", day)
		}
		slot, ok := spec.TimeSlots[day]
		if !ok {
			return nil, schedule.NewValidationError(schedule.KindMissingTimeSlot,
				"no time slot chosen for %s", day)
		}
		if err := schedule.ValidateWindow(avail, day, slot.StartTime, slot.EndTime); err != nil {
			return nil, err
		}
		normalized.Days = append(normalized.Days, day)
		normalized.TimeSlots[day] = slot
	}
	return normalized, nil
}

// ExpandRecurring materializes a validated recurring spec into concrete
// occurrences: for each selected day, the first matching date on or after
// the start date plus weekCount-1 weekly repetitions.
func ExpandRecurring(serviceID, bookingID string, det models.RecurringDetails) []models.Occurrence {
	start, err := time.Parse(isoDate, det.StartDate)
	if err != nil {
		return nil
	}
	occurrences := make([]models.Occurrence, 0, det.WeekCount*len(det.Days))
	for _, day := range det.Days {
		slot := det.TimeSlots[day]
		first := nextOnOrAfter(start, day)
		for week := 0; week < det.WeekCount; week++ {
			d := first.AddDate(0, 0, 7*week)
			occurrences = append(occurrences, models.Occurrence{
				BookingID: bookingID,
				ServiceID: serviceID,
				Date:      d.Format(isoDate),
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
			})
		}
	}
	return occurrences
}

// nextOnOrAfter returns the first date on or after t that falls on day.
func nextOnOrAfter(t time.Time, day models.Weekday) time.Time {
	for i := 0; i < 7; i++ {
		d := t.AddDate(0, 0, i)
		if models.WeekdayOf(d) == day {
			return d
		}
	}
	return t
}

func parseISODate(s string) (time.Time, error) {
	// Accept a bare ISO date or a full timestamp; only the date part matters.
	if len(s) > len(isoDate) {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, nil
		}
		s = s[:len(isoDate)]
	}
	t, err := time.Parse(isoDate, s)
	if err != nil {
		return time.Time{}, schedule.NewValidationError(schedule.KindInvalidTimeFormat,
			"invalid date %q, want \"YYYY-MM-DD\"", s)
	}
	return t, nil
}

func containsDay(days []models.Weekday, day models.Weekday) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

func occurrenceKey(date, start, end string) string {
	return fmt.Sprintf("%s|%s|%s", date, start, end)
}
