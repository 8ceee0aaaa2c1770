package models

// DayWindow describes one weekday's bookable window. When Available is
// false the times are kept only as display defaults and carry no meaning.
// A window whose EndTime is earlier in clock time than its StartTime
// (e.g. "22:00" -> "02:00") spans past midnight into the next calendar day.
type DayWindow struct {
	Available bool   `bson:"available" json:"available"`
	StartTime string `bson:"startTime" json:"startTime"` // "HH:MM", 24-hour
	EndTime   string `bson:"endTime" json:"endTime"`     // "HH:MM", 24-hour
}

// WeeklyAvailability maps each weekday to its window. Owned by a Service;
// the booking engine treats it as read-only input.
type WeeklyAvailability map[Weekday]DayWindow

// Day returns the window for a weekday; missing entries are closed days.
func (wa WeeklyAvailability) Day(d Weekday) DayWindow {
	if wa == nil {
		return DayWindow{}
	}
	return wa[d]
}

// TimeSlot is a discrete bookable time range within one day's window.
type TimeSlot struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}
