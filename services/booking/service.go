package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "vendora/database/repository/booking"
	catalogRepo "vendora/database/repository/catalog"
	"vendora/metrics"
	"vendora/models"
	"vendora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production booking engine.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	CatalogRepo catalogRepo.ServiceRepository
}

// CreateSpecificBooking validates the entries against the service's
// availability and persists a pending booking with one occurrence per date.
func (s *DefaultBookingService) CreateSpecificBooking(ctx context.Context, serviceID, userID string, entries []models.SpecificDateEntry) (*models.Booking, error) {
	svc, err := s.CatalogRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	accepted, err := BuildSpecificDates(svc.Availability, entries)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &models.Booking{
		ID:            uuid.New().String(),
		ServiceID:     serviceID,
		UserID:        userID,
		Status:        models.StatusPending,
		SpecificDates: accepted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	occurrences := make([]models.Occurrence, 0, len(accepted))
	for _, e := range accepted {
		occurrences = append(occurrences, models.Occurrence{
			BookingID: booking.ID,
			ServiceID: serviceID,
			Date:      e.Date,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
		})
	}
	return s.persist(ctx, booking, occurrences)
}

// CreateRecurringBooking validates the recurring spec, expands it into
// concrete weekly occurrences and persists a pending booking.
func (s *DefaultBookingService) CreateRecurringBooking(ctx context.Context, serviceID, userID string, spec models.RecurringDetails) (*models.Booking, error) {
	svc, err := s.CatalogRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	normalized, err := BuildRecurring(svc.Availability, spec)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &models.Booking{
		ID:          uuid.New().String(),
		ServiceID:   serviceID,
		UserID:      userID,
		Status:      models.StatusPending,
		IsRecurring: true,
		Recurring:   normalized,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	occurrences := ExpandRecurring(serviceID, booking.ID, *normalized)
	return s.persist(ctx, booking, occurrences)
}

func (s *DefaultBookingService) persist(ctx context.Context, booking *models.Booking, occurrences []models.Occurrence) (*models.Booking, error) {
	logger := utils.GetLogger()
	if err := s.Repo.Create(ctx, booking, occurrences); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotConflict) {
			return nil, NewSlotTakenError("one of the requested slots was just booked by someone else")
		}
		logger.Error("booking submission failed",
			zap.String("serviceID", booking.ServiceID), zap.Error(err))
		return nil, NewSubmissionError(err.Error())
	}
	metrics.BookingCreated(booking.IsRecurring)
	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("serviceID", booking.ServiceID),
		zap.Bool("recurring", booking.IsRecurring))
	return booking, nil
}

// GetBooking retrieves a single booking.
func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, bookingID)
}

// ListByService returns the bookings made against a service.
func (s *DefaultBookingService) ListByService(ctx context.Context, serviceID string) ([]models.Booking, error) {
	return s.Repo.ListByService(ctx, serviceID)
}

// ListByUser returns the bookings a user has made.
func (s *DefaultBookingService) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// ConfirmBooking moves a pending booking to confirmed. Only the shop that
// owns the booked service may confirm.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, bookingID, shopID string) (*models.Booking, error) {
	return s.transition(ctx, bookingID, models.StatusConfirmed, func(b *models.Booking) error {
		return s.requireShopOwnership(ctx, b, shopID)
	})
}

// RejectBooking moves a pending booking to rejected and releases its slot
// claims. Only the owning shop may reject.
func (s *DefaultBookingService) RejectBooking(ctx context.Context, bookingID, shopID string) (*models.Booking, error) {
	return s.transition(ctx, bookingID, models.StatusRejected, func(b *models.Booking) error {
		return s.requireShopOwnership(ctx, b, shopID)
	})
}

// CancelBooking lets the customer cancel their own pending booking,
// releasing its slot claims.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID, userID string) (*models.Booking, error) {
	return s.transition(ctx, bookingID, models.StatusCanceled, func(b *models.Booking) error {
		if b.UserID != userID {
			return NewForbiddenError("only the booking's customer may cancel it")
		}
		return nil
	})
}

func (s *DefaultBookingService) transition(ctx context.Context, bookingID string, to models.BookingStatus, authorize func(*models.Booking) error) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := authorize(booking); err != nil {
		return nil, err
	}
	if !CanTransition(booking.Status, to) {
		return nil, &TransitionError{From: string(booking.Status), To: string(to)}
	}
	if err := s.Repo.UpdateStatus(ctx, bookingID, to); err != nil {
		return nil, NewSubmissionError(err.Error())
	}
	if to == models.StatusRejected || to == models.StatusCanceled {
		if err := s.Repo.DeleteOccurrences(ctx, bookingID); err != nil {
			utils.GetLogger().Error("failed to release occurrences",
				zap.String("bookingID", bookingID), zap.Error(err))
		}
	}
	booking.Status = to
	booking.UpdatedAt = time.Now().UTC()
	metrics.BookingTransitioned(string(to))
	return booking, nil
}

func (s *DefaultBookingService) requireShopOwnership(ctx context.Context, b *models.Booking, shopID string) error {
	svc, err := s.CatalogRepo.GetByID(ctx, b.ServiceID)
	if err != nil {
		return err
	}
	if svc.ShopID != shopID {
		return NewForbiddenError("only the shop that owns this service may manage its bookings")
	}
	return nil
}
