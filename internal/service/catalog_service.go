package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nattapong-dev/garage-booking-service/internal/models"
	"github.com/nattapong-dev/garage-booking-service/internal/repository"
	"gorm.io/gorm"
)

// CatalogService manages the service catalog offered by the shop.
type CatalogService interface {
	CreateService(ctx context.Context, svc *models.Service) error
	GetService(ctx context.Context, id uint) (*models.Service, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	UpdateService(ctx context.Context, svc *models.Service) error
	DeleteService(ctx context.Context, id uint) error
}

type catalogService struct {
	repo repository.ServiceRepository
}

func NewCatalogService(repo repository.ServiceRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) CreateService(ctx context.Context, svc *models.Service) error {
	if err := s.repo.Create(ctx, svc); err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	return nil
}

func (s *catalogService) GetService(ctx context.Context, id uint) (*models.Service, error) {
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (s *catalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	return s.repo.FindAll(ctx)
}

func (s *catalogService) UpdateService(ctx context.Context, svc *models.Service) error {
	if _, err := s.repo.FindByID(ctx, svc.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrServiceNotFound
		}
		return err
	}
	return s.repo.Update(ctx, svc)
}

func (s *catalogService) DeleteService(ctx context.Context, id uint) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrServiceNotFound
	}
	return nil
}
