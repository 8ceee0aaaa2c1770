package booking

import (
	"context"

	"vendora/models"
)

// BookingService is the engine's boundary with transport: request building
// and validation, persistence, lifecycle transitions, and schedule views.
type BookingService interface {
	CreateSpecificBooking(ctx context.Context, serviceID, userID string, entries []models.SpecificDateEntry) (*models.Booking, error)
	CreateRecurringBooking(ctx context.Context, serviceID, userID string, spec models.RecurringDetails) (*models.Booking, error)

	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	ListByService(ctx context.Context, serviceID string) ([]models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)

	ConfirmBooking(ctx context.Context, bookingID, shopID string) (*models.Booking, error)
	RejectBooking(ctx context.Context, bookingID, shopID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID, userID string) (*models.Booking, error)

	DaySchedule(ctx context.Context, serviceID, date string) (*DaySchedule, error)
	WeekSchedule(ctx context.Context, serviceID, weekStart string) ([]DaySchedule, error)
}
