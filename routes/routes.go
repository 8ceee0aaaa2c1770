package routes

import (
	"time"

	"vendora/handlers"
	"vendora/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, bookingH *handlers.BookingHandler, catalogH *handlers.CatalogHandler, scheduleH *handlers.ScheduleHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)
	r.GET("/metrics", metrics.Handler())

	RegisterBookingRoutes(r, bookingH, scheduleH)
	RegisterCatalogRoutes(r, catalogH)
}
