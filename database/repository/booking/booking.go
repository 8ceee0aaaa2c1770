package bookingRepo

import (
	"context"
	"errors"

	"vendora/models"
)

// ErrNotFound is returned when no booking matches the given ID.
var ErrNotFound = errors.New("booking not found")

// ErrSlotConflict is returned when an occurrence collides with one already
// persisted for the same service, date and time range.
var ErrSlotConflict = errors.New("slot already booked")

// BookingRepository persists bookings and their expanded occurrences.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking, occurrences []models.Occurrence) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error
	ListByService(ctx context.Context, serviceID string) ([]models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListOccurrences(ctx context.Context, serviceID, date string) ([]models.Occurrence, error)
	DeleteOccurrences(ctx context.Context, bookingID string) error
}
