package routes

import (
	"vendora/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler, sh *handlers.ScheduleHandler) {
	booking := r.Group("/api/bookings")
	{
		booking.POST("", h.CreateBooking)
		booking.GET("/:id", h.GetBooking)
		booking.PUT("/:id/confirm", h.ConfirmBooking)
		booking.PUT("/:id/reject", h.RejectBooking)
		booking.PUT("/:id/cancel", h.CancelBooking)
		booking.GET("/service/:serviceId", h.ListByService)
		booking.GET("/user/:userId", h.ListByUser)
	}

	schedule := r.Group("/api/services/:id/schedule")
	{
		schedule.GET("/day", sh.DaySchedule)
		schedule.GET("/week", sh.WeekSchedule)
	}
}
