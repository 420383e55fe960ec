package repository

import (
	"context"

	"github.com/nattapong-dev/garage-booking-service/internal/models"
	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(ctx context.Context, svc *models.Service) error
	FindByID(ctx context.Context, id uint) (*models.Service, error)
	FindAll(ctx context.Context) ([]models.Service, error)
	Update(ctx context.Context, svc *models.Service) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type serviceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, svc *models.Service) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *serviceRepository) FindByID(ctx context.Context, id uint) (*models.Service, error) {
	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *serviceRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	var svcs []models.Service
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&svcs).Error; err != nil {
		return nil, err
	}
	return svcs, nil
}

func (r *serviceRepository) Update(ctx context.Context, svc *models.Service) error {
	return r.db.WithContext(ctx).Save(svc).Error
}

func (r *serviceRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	return result.RowsAffected, result.Error
}
