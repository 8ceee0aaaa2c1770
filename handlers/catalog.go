package handlers

import (
	"net/http"

	"vendora/models"
	"vendora/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes shop service management over HTTP.
type CatalogHandler struct {
	Service catalog.CatalogService
	Logger  *zap.Logger
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Service: svc, Logger: logger}
}

// CreateService registers a new bookable service for a shop.
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var input models.Service
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := h.Service.CreateService(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": created})
}

// GetService returns one service by ID.
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.Service.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// UpdateService replaces a service's editable fields.
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var input models.Service
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.ID = c.Param("id")
	updated, err := h.Service.UpdateService(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": updated})
}

// UpdateAvailability replaces a service's weekly availability map.
func (h *CatalogHandler) UpdateAvailability(c *gin.Context) {
	var input models.WeeklyAvailability
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Service.UpdateAvailability(c.Request.Context(), c.Param("id"), input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": input})
}

// ListByShop returns a shop's services.
func (h *CatalogHandler) ListByShop(c *gin.Context) {
	services, err := h.Service.ListByShop(c.Request.Context(), c.Param("shopId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// DeleteService removes a service from the catalog.
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.Service.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
