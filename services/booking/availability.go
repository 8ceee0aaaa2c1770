package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vendora/models"
	"vendora/services/schedule"
	"vendora/utils"

	"go.uber.org/zap"
)

const scheduleCacheTTL = time.Minute

// DayOption is one bookable 30-minute start option with its display label.
type DayOption struct {
	Time  string `json:"time"`            // "HH:MM"
	Label string `json:"label"`           // "9:30 AM"
	Taken bool   `json:"taken,omitempty"` // an existing occurrence covers it
}

// DaySchedule is the calendar rendering of one date's availability.
type DaySchedule struct {
	Date        string         `json:"date"`
	Day         models.Weekday `json:"day"`
	Available   bool           `json:"available"`
	StartTime   string         `json:"startTime,omitempty"`
	EndTime     string         `json:"endTime,omitempty"`
	WindowLabel string         `json:"windowLabel,omitempty"` // "9:00 AM - 5:00 PM"
	Options     []DayOption    `json:"options,omitempty"`
}

// DaySchedule computes the bookable options for a service on one date,
// marking options already claimed by persisted occurrences.
func (s *DefaultBookingService) DaySchedule(ctx context.Context, serviceID, date string) (*DaySchedule, error) {
	svc, err := s.CatalogRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	day, err := parseISODate(date)
	if err != nil {
		return nil, err
	}
	return s.buildDaySchedule(ctx, svc, day)
}

// WeekSchedule renders seven consecutive days starting at weekStart.
// Results are cached briefly; the view is read far more often than
// availability changes.
func (s *DefaultBookingService) WeekSchedule(ctx context.Context, serviceID, weekStart string) ([]DaySchedule, error) {
	logger := utils.GetLogger()
	cacheKey := fmt.Sprintf("schedule:%s:%s", serviceID, weekStart)

	cache := utils.GetCacheClient()
	if cached, err := cache.Get(ctx, cacheKey).Result(); err == nil {
		var week []DaySchedule
		if err := json.Unmarshal([]byte(cached), &week); err == nil {
			return week, nil
		}
	}

	svc, err := s.CatalogRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	start, err := parseISODate(weekStart)
	if err != nil {
		return nil, err
	}

	week := make([]DaySchedule, 0, 7)
	for i := 0; i < 7; i++ {
		ds, err := s.buildDaySchedule(ctx, svc, start.AddDate(0, 0, i))
		if err != nil {
			return nil, err
		}
		week = append(week, *ds)
	}

	if data, err := json.Marshal(week); err == nil {
		if err := cache.Set(ctx, cacheKey, data, scheduleCacheTTL).Err(); err != nil {
			logger.Warn("failed to cache week schedule", zap.String("key", cacheKey), zap.Error(err))
		}
	}
	return week, nil
}

func (s *DefaultBookingService) buildDaySchedule(ctx context.Context, svc *models.Service, date time.Time) (*DaySchedule, error) {
	day := models.WeekdayOf(date)
	win := svc.Availability.Day(day)
	ds := &DaySchedule{
		Date:      date.Format(isoDate),
		Day:       day,
		Available: win.Available,
	}
	if !win.Available {
		return ds, nil
	}

	startLabel, err := schedule.FormatTo12Hour(win.StartTime)
	if err != nil {
		return nil, err
	}
	endLabel, err := schedule.FormatTo12Hour(win.EndTime)
	if err != nil {
		return nil, err
	}
	ds.StartTime = win.StartTime
	ds.EndTime = win.EndTime
	ds.WindowLabel = fmt.Sprintf("%s - %s", startLabel, endLabel)

	options, err := schedule.GenerateTimeOptions(win.StartTime, win.EndTime)
	if err != nil {
		return nil, err
	}
	occurrences, err := s.Repo.ListOccurrences(ctx, svc.ID, ds.Date)
	if err != nil {
		return nil, err
	}

	ds.Options = make([]DayOption, 0, len(options))
	for _, opt := range options {
		label, err := schedule.FormatTo12Hour(opt)
		if err != nil {
			return nil, err
		}
		ds.Options = append(ds.Options, DayOption{
			Time:  opt,
			Label: label,
			Taken: optionTaken(opt, occurrences),
		})
	}
	return ds, nil
}

// optionTaken reports whether a start option falls inside any persisted
// occurrence's range. An occurrence ending at "00:00" runs to end of day;
// ranges that cross midnight cover both the late and early portions.
func optionTaken(opt string, occurrences []models.Occurrence) bool {
	optMin, err := schedule.TimeToMinutes(opt)
	if err != nil {
		return false
	}
	for _, occ := range occurrences {
		start, err := schedule.TimeToMinutes(occ.StartTime)
		if err != nil {
			continue
		}
		end, err := schedule.TimeToMinutes(occ.EndTime)
		if err != nil {
			continue
		}
		if end == 0 {
			end = 24 * 60
		}
		if end <= start {
			// crosses midnight
			if optMin >= start || optMin < end {
				return true
			}
			continue
		}
		if optMin >= start && optMin < end {
			return true
		}
	}
	return false
}
