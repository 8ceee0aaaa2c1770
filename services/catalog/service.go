package catalog

import (
	"context"
	"strings"
	"time"

	catalogRepo "vendora/database/repository/catalog"
	"vendora/models"
	"vendora/services/schedule"
	"vendora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCatalogService is the production catalog implementation.
type DefaultCatalogService struct {
	Repo catalogRepo.ServiceRepository
}

// CreateService validates and persists a new service.
func (s *DefaultCatalogService) CreateService(ctx context.Context, svc *models.Service) (*models.Service, error) {
	if strings.TrimSpace(svc.Name) == "" {
		return nil, schedule.NewValidationError(schedule.KindEmptySelection, "service name is required")
	}
	if svc.Availability != nil {
		if err := validateAvailability(svc.Availability); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	svc.ID = uuid.New().String()
	svc.CreatedAt = now
	svc.UpdatedAt = now
	if err := s.Repo.Create(ctx, svc); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("service created",
		zap.String("serviceID", svc.ID), zap.String("shopID", svc.ShopID))
	return svc, nil
}

// GetService fetches a service by ID.
func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	return s.Repo.GetByID(ctx, id)
}

// UpdateService replaces a service's editable fields.
func (s *DefaultCatalogService) UpdateService(ctx context.Context, svc *models.Service) (*models.Service, error) {
	if svc.Availability != nil {
		if err := validateAvailability(svc.Availability); err != nil {
			return nil, err
		}
	}
	svc.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// UpdateAvailability replaces a service's weekly availability map.
func (s *DefaultCatalogService) UpdateAvailability(ctx context.Context, id string, avail models.WeeklyAvailability) error {
	if err := validateAvailability(avail); err != nil {
		return err
	}
	return s.Repo.UpdateAvailability(ctx, id, avail)
}

// ListByShop returns a shop's services.
func (s *DefaultCatalogService) ListByShop(ctx context.Context, shopID string) ([]models.Service, error) {
	return s.Repo.ListByShop(ctx, shopID)
}

// DeleteService removes a service from the catalog.
func (s *DefaultCatalogService) DeleteService(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// validateAvailability checks that every key is a canonical weekday and
// that open days carry parseable start and end times. Cross-midnight
// windows are valid; closed days' times are ignored.
func validateAvailability(avail models.WeeklyAvailability) error {
	for day, win := range avail {
		if !day.Valid() {
			return schedule.NewValidationError(schedule.KindDayNotAvailable, "%q is not a weekday", day)
		}
		if !win.Available {
			continue
		}
		if _, err := schedule.TimeToMinutes(win.StartTime); err != nil {
			return err
		}
		if _, err := schedule.TimeToMinutes(win.EndTime); err != nil {
			return err
		}
	}
	return nil
}
