package booking

import (
	"testing"

	"vendora/models"
	"vendora/services/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func businessHours(days ...models.Weekday) models.WeeklyAvailability {
	avail := models.WeeklyAvailability{}
	for _, d := range models.AllWeekdays {
		avail[d] = models.DayWindow{Available: false, StartTime: "09:00", EndTime: "17:00"}
	}
	for _, d := range days {
		avail[d] = models.DayWindow{Available: true, StartTime: "09:00", EndTime: "17:00"}
	}
	return avail
}

func TestBuildSpecificDates(t *testing.T) {
	avail := businessHours(models.Monday)

	// 2024-06-03 is a Monday.
	entries := []models.SpecificDateEntry{
		{Date: "2024-06-03", StartTime: "10:00", EndTime: "11:00"},
		{Date: "2024-06-10", StartTime: "09:00", EndTime: "09:30"},
	}
	got, err := BuildSpecificDates(avail, entries)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestBuildSpecificDatesEmpty(t *testing.T) {
	_, err := BuildSpecificDates(businessHours(models.Monday), nil)
	require.Error(t, err)
	assert.Equal(t, schedule.KindEmptySelection, schedule.KindOf(err))
}

func TestBuildSpecificDatesDuplicate(t *testing.T) {
	avail := businessHours(models.Monday)
	entry := models.SpecificDateEntry{Date: "2024-06-03", StartTime: "10:00", EndTime: "11:00"}

	_, err := BuildSpecificDates(avail, []models.SpecificDateEntry{entry, entry})
	require.Error(t, err)
	assert.Equal(t, schedule.KindDuplicateEntry, schedule.KindOf(err))

	// Same date, different time range is fine.
	got, err := BuildSpecificDates(avail, []models.SpecificDateEntry{
		entry,
		{Date: "2024-06-03", StartTime: "11:00", EndTime: "12:00"},
	})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestBuildSpecificDatesClosedDay(t *testing.T) {
	avail := businessHours(models.Monday)

	// 2024-06-04 is a Tuesday, which is closed.
	_, err := BuildSpecificDates(avail, []models.SpecificDateEntry{
		{Date: "2024-06-04", StartTime: "10:00", EndTime: "11:00"},
	})
	require.Error(t, err)
	assert.Equal(t, schedule.KindDayNotAvailable, schedule.KindOf(err))
	assert.Contains(t, err.Error(), "Tuesday")
}

func TestBuildSpecificDatesFailsFast(t *testing.T) {
	avail := businessHours(models.Monday)

	// The out-of-window entry comes first; its violation surfaces, not the
	// duplicate further down.
	_, err := BuildSpecificDates(avail, []models.SpecificDateEntry{
		{Date: "2024-06-03", StartTime: "08:00", EndTime: "09:30"},
		{Date: "2024-06-03", StartTime: "10:00", EndTime: "11:00"},
		{Date: "2024-06-03", StartTime: "10:00", EndTime: "11:00"},
	})
	require.Error(t, err)
	assert.Equal(t, schedule.KindOutOfWindow, schedule.KindOf(err))
}

func TestBuildSpecificDatesNormalizesTimestamps(t *testing.T) {
	avail := businessHours(models.Monday)

	got, err := BuildSpecificDates(avail, []models.SpecificDateEntry{
		{Date: "2024-06-03T00:00:00Z", StartTime: "10:00", EndTime: "11:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-03", got[0].Date)
}

func TestBuildRecurring(t *testing.T) {
	avail := businessHours(models.Monday, models.Wednesday)
	spec := models.RecurringDetails{
		Days:      []models.Weekday{models.Monday, models.Wednesday},
		StartDate: "2024-06-03",
		WeekCount: 4,
		TimeSlots: map[models.Weekday]models.TimeSlot{
			models.Monday:    {StartTime: "10:00", EndTime: "11:00"},
			models.Wednesday: {StartTime: "14:00", EndTime: "15:00"},
		},
	}

	got, err := BuildRecurring(avail, spec)
	require.NoError(t, err)
	assert.Equal(t, 4, got.WeekCount)
	assert.Equal(t, "2024-06-03", got.StartDate)
	assert.Len(t, got.TimeSlots, 2)
	assert.Contains(t, got.TimeSlots, models.Monday)
	assert.Contains(t, got.TimeSlots, models.Wednesday)
}

func TestBuildRecurringStructuralErrors(t *testing.T) {
	avail := businessHours(models.Monday)
	base := models.RecurringDetails{
		Days:      []models.Weekday{models.Monday},
		StartDate: "2024-06-03",
		WeekCount: 4,
		TimeSlots: map[models.Weekday]models.TimeSlot{
			models.Monday: {StartTime: "10:00", EndTime: "11:00"},
		},
	}

	tests := []struct {
		name   string
		mutate func(*models.RecurringDetails)
		kind   schedule.ErrorKind
	}{
		{
			name:   "no days",
			mutate: func(s *models.RecurringDetails) { s.Days = nil },
			kind:   schedule.KindNoDaysSelected,
		},
		{
			name:   "missing start date",
			mutate: func(s *models.RecurringDetails) { s.StartDate = "" },
			kind:   schedule.KindMissingStartDate,
		},
		{
			name:   "zero week count",
			mutate: func(s *models.RecurringDetails) { s.WeekCount = 0 },
			kind:   schedule.KindInvalidWeekCount,
		},
		{
			name:   "negative week count",
			mutate: func(s *models.RecurringDetails) { s.WeekCount = -2 },
			kind:   schedule.KindInvalidWeekCount,
		},
		{
			name:   "missing time slot for selected day",
			mutate: func(s *models.RecurringDetails) { s.TimeSlots = nil },
			kind:   schedule.KindMissingTimeSlot,
		},
		{
			name: "start date not on a selected day",
			// 2024-06-04 is a Tuesday.
			mutate: func(s *models.RecurringDetails) { s.StartDate = "2024-06-04" },
			kind:   schedule.KindDayNotAvailable,
		},
		{
			name: "day selected twice",
			mutate: func(s *models.RecurringDetails) {
				s.Days = []models.Weekday{models.Monday, models.Monday}
			},
			kind: schedule.KindDuplicateEntry,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := base
			tt.mutate(&spec)
			_, err := BuildRecurring(avail, spec)
			require.Error(t, err)
			assert.Equal(t, tt.kind, schedule.KindOf(err))
		})
	}
}

func TestBuildRecurringClosedDay(t *testing.T) {
	avail := businessHours(models.Monday)
	spec := models.RecurringDetails{
		Days:      []models.Weekday{models.Monday, models.Tuesday},
		StartDate: "2024-06-03",
		WeekCount: 2,
		TimeSlots: map[models.Weekday]models.TimeSlot{
			models.Monday:  {StartTime: "10:00", EndTime: "11:00"},
			models.Tuesday: {StartTime: "10:00", EndTime: "11:00"},
		},
	}
	_, err := BuildRecurring(avail, spec)
	require.Error(t, err)
	assert.Equal(t, schedule.KindDayNotAvailable, schedule.KindOf(err))
}

func TestExpandRecurring(t *testing.T) {
	det := models.RecurringDetails{
		Days:      []models.Weekday{models.Monday, models.Wednesday},
		StartDate: "2024-06-03", // a Monday
		WeekCount: 4,
		TimeSlots: map[models.Weekday]models.TimeSlot{
			models.Monday:    {StartTime: "10:00", EndTime: "11:00"},
			models.Wednesday: {StartTime: "14:00", EndTime: "15:00"},
		},
	}

	occurrences := ExpandRecurring("svc-1", "bk-1", det)
	require.Len(t, occurrences, 8)

	var mondays, wednesdays []string
	for _, occ := range occurrences {
		assert.Equal(t, "svc-1", occ.ServiceID)
		assert.Equal(t, "bk-1", occ.BookingID)
		switch occ.StartTime {
		case "10:00":
			mondays = append(mondays, occ.Date)
		case "14:00":
			wednesdays = append(wednesdays, occ.Date)
		}
	}
	assert.Equal(t, []string{"2024-06-03", "2024-06-10", "2024-06-17", "2024-06-24"}, mondays)
	assert.Equal(t, []string{"2024-06-05", "2024-06-12", "2024-06-19", "2024-06-26"}, wednesdays)
}
