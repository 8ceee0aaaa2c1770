package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusRejected  BookingStatus = "rejected"
	StatusCanceled  BookingStatus = "canceled"
)

// SpecificDateEntry is one concrete calendar-date booking occurrence as
// submitted by the customer.
type SpecificDateEntry struct {
	Date      string `bson:"date" json:"date"` // "YYYY-MM-DD"
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// RecurringDetails describes a weekly repeating booking: which weekdays,
// starting when, for how many weeks, and the time range per weekday.
type RecurringDetails struct {
	Days      []Weekday            `bson:"days" json:"days"`
	StartDate string               `bson:"startDate" json:"startDate"` // "YYYY-MM-DD"
	WeekCount int                  `bson:"weekCount" json:"weekCount"`
	TimeSlots map[Weekday]TimeSlot `bson:"timeSlots" json:"timeSlots"`
}

// Booking is a customer's booking of a service, either a list of specific
// dates or a recurring weekly series. Terminal statuses are retained for
// history; bookings are never deleted.
type Booking struct {
	ID            string              `bson:"id" json:"id"`
	ServiceID     string              `bson:"serviceId" json:"serviceId"`
	UserID        string              `bson:"userId" json:"userId"`
	Status        BookingStatus       `bson:"status" json:"status"`
	IsRecurring   bool                `bson:"isRecurring" json:"isRecurring"`
	SpecificDates []SpecificDateEntry `bson:"specificDates,omitempty" json:"specificDates,omitempty"`
	Recurring     *RecurringDetails   `bson:"recurringDetails,omitempty" json:"recurringDetails,omitempty"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// Occurrence is one concrete (service, date, time range) claim backing a
// booking. Recurring bookings are expanded into occurrences on creation so
// the persistence layer can enforce slot uniqueness.
type Occurrence struct {
	BookingID string `bson:"bookingId" json:"bookingId"`
	ServiceID string `bson:"serviceId" json:"serviceId"`
	Date      string `bson:"date" json:"date"`
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}
