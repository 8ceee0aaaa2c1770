package handlers

import (
	"context"
	"net/http"

	"vendora/models"
	"vendora/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking accepts either a specific-dates request or a recurring one,
// selected by the isRecurring flag, matching the create-booking body shape.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input struct {
		ServiceID        string                     `json:"serviceId" binding:"required"`
		UserID           string                     `json:"userId" binding:"required"`
		IsRecurring      bool                       `json:"isRecurring"`
		SpecificDates    []models.SpecificDateEntry `json:"specificDates"`
		RecurringDetails *models.RecurringDetails   `json:"recurringDetails"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	var (
		created *models.Booking
		err     error
	)
	if input.IsRecurring {
		if input.RecurringDetails == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": "recurringDetails is required for a recurring booking"})
			return
		}
		created, err = h.Service.CreateRecurringBooking(c.Request.Context(), input.ServiceID, input.UserID, *input.RecurringDetails)
	} else {
		created, err = h.Service.CreateSpecificBooking(c.Request.Context(), input.ServiceID, input.UserID, input.SpecificDates)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": created})
}

// GetBooking returns one booking by ID.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// ListByService returns a service's bookings for its shop.
func (h *BookingHandler) ListByService(c *gin.Context) {
	bookings, err := h.Service.ListByService(c.Request.Context(), c.Param("serviceId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListByUser returns a customer's bookings.
func (h *BookingHandler) ListByUser(c *gin.Context) {
	bookings, err := h.Service.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ConfirmBooking lets the owning shop confirm a pending booking.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	h.transition(c, h.Service.ConfirmBooking)
}

// RejectBooking lets the owning shop reject a pending booking.
func (h *BookingHandler) RejectBooking(c *gin.Context) {
	h.transition(c, h.Service.RejectBooking)
}

// CancelBooking lets the customer cancel their pending booking.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var input struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	b, err := h.Service.CancelBooking(c.Request.Context(), c.Param("id"), input.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

func (h *BookingHandler) transition(c *gin.Context, fn func(ctx context.Context, bookingID, shopID string) (*models.Booking, error)) {
	var input struct {
		ShopID string `json:"shopId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	b, err := fn(c.Request.Context(), c.Param("id"), input.ShopID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}
