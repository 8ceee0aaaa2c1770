package models

import "time"

// Weekday is a closed enumeration of the seven weekday names used as
// availability keys. Keeping it a distinct type prevents free-form day
// strings from leaking into validation paths.
type Weekday string

const (
	Sunday    Weekday = "Sunday"
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
)

// AllWeekdays lists the weekdays in calendar order, Sunday first.
var AllWeekdays = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// ParseWeekday maps a weekday name to its enum value.
func ParseWeekday(s string) (Weekday, bool) {
	for _, d := range AllWeekdays {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// WeekdayOf returns the enum value for a calendar date.
func WeekdayOf(t time.Time) Weekday {
	return AllWeekdays[int(t.Weekday())]
}

// Valid reports whether w is one of the seven canonical weekday names.
func (w Weekday) Valid() bool {
	_, ok := ParseWeekday(string(w))
	return ok
}
