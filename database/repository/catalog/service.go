package catalogRepo

import (
	"context"
	"errors"

	"vendora/models"
)

// ErrNotFound is returned when no service matches the given ID.
var ErrNotFound = errors.New("service not found")

// ServiceRepository persists the service catalog.
type ServiceRepository interface {
	Create(ctx context.Context, svc *models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	Update(ctx context.Context, svc *models.Service) error
	UpdateAvailability(ctx context.Context, id string, avail models.WeeklyAvailability) error
	ListByShop(ctx context.Context, shopID string) ([]models.Service, error)
	Delete(ctx context.Context, id string) error
}
