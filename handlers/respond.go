package handlers

import (
	"errors"
	"net/http"

	bookingRepo "vendora/database/repository/booking"
	catalogRepo "vendora/database/repository/catalog"
	"vendora/services/booking"
	"vendora/services/schedule"
	"vendora/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps engine and repository errors to HTTP responses.
// Validation errors keep their kind so clients can show the exact rule
// that fired.
func respondError(c *gin.Context, err error) {
	var ve *schedule.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": string(ve.Kind), "message": ve.Message})
		return
	}

	var te *booking.TransitionError
	if errors.As(err, &te) {
		c.JSON(http.StatusConflict, gin.H{"error": "invalidTransition", "message": te.Error()})
		return
	}

	switch {
	case errors.Is(err, bookingRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
	case errors.Is(err, catalogRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "service not found", "")
	case booking.IsSlotTaken(err):
		c.JSON(http.StatusConflict, gin.H{"error": "slotTaken", "message": err.Error()})
	case booking.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden", "message": err.Error()})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "booking submission failed", err.Error())
	}
}
