package catalog

import (
	"context"

	"vendora/models"
)

// CatalogService manages the services a shop offers, including the weekly
// availability the booking engine consumes.
type CatalogService interface {
	CreateService(ctx context.Context, svc *models.Service) (*models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	UpdateService(ctx context.Context, svc *models.Service) (*models.Service, error)
	UpdateAvailability(ctx context.Context, id string, avail models.WeeklyAvailability) error
	ListByShop(ctx context.Context, shopID string) ([]models.Service, error)
	DeleteService(ctx context.Context, id string) error
}
