package handlers

import (
	"net/http"

	"vendora/services/booking"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves the calendar views of a service's availability.
type ScheduleHandler struct {
	Service booking.BookingService
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc booking.BookingService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// DaySchedule returns the 30-minute options for a service on one date.
func (h *ScheduleHandler) DaySchedule(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": "date query parameter is required"})
		return
	}
	day, err := h.Service.DaySchedule(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": day})
}

// WeekSchedule returns seven days of availability starting at weekStart.
func (h *ScheduleHandler) WeekSchedule(c *gin.Context) {
	weekStart := c.Query("weekStart")
	if weekStart == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": "weekStart query parameter is required"})
		return
	}
	week, err := h.Service.WeekSchedule(c.Request.Context(), c.Param("id"), weekStart)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": week})
}
