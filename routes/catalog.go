package routes

import (
	"vendora/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers shop service management endpoints.
func RegisterCatalogRoutes(r *gin.Engine, h *handlers.CatalogHandler) {
	api := r.Group("/api/services")
	{
		api.POST("", h.CreateService)
		api.GET("/:id", h.GetService)
		api.PUT("/:id", h.UpdateService)
		api.PUT("/:id/availability", h.UpdateAvailability)
		api.DELETE("/:id", h.DeleteService)
	}
	r.GET("/api/shops/:shopId/services", h.ListByShop)
}
