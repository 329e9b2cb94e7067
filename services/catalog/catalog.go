// File: services/catalog/catalog.go
package catalog

import (
	"context"
	"fmt"

	catalogRepo "bookify/database/repository/catalog"
	"bookify/models"

	"github.com/google/uuid"
)

// CatalogService manages a business's bookable service offerings.
type CatalogService interface {
	CreateService(ctx context.Context, userID string, req models.CreateServiceRequest) (*models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	ListServices(ctx context.Context, userID string) ([]models.Service, error)
	UpdateService(ctx context.Context, userID, id string, req models.UpdateServiceRequest) (*models.Service, error)
	DeleteService(ctx context.Context, userID, id string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo catalogRepo.ServiceRepository
}

func (s *DefaultCatalogService) CreateService(ctx context.Context, userID string, req models.CreateServiceRequest) (*models.Service, error) {
	svc := &models.Service{
		ID:              uuid.New().String(),
		UserID:          userID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Active:          true,
	}
	if err := s.Repo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultCatalogService) ListServices(ctx context.Context, userID string) ([]models.Service, error) {
	return s.Repo.ListByUserID(ctx, userID)
}

func (s *DefaultCatalogService) UpdateService(ctx context.Context, userID, id string, req models.UpdateServiceRequest) (*models.Service, error) {
	svc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc.UserID != userID {
		return nil, fmt.Errorf("service %s does not belong to user %s", id, userID)
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes < 1 {
			return nil, fmt.Errorf("duration must be at least one minute")
		}
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := s.Repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *DefaultCatalogService) DeleteService(ctx context.Context, userID, id string) error {
	return s.Repo.Delete(ctx, userID, id)
}
