package repository

import (
	"context"

	"github.com/nattapong-dev/garage-booking-service/internal/models"
	"gorm.io/gorm"
)

type BayRepository interface {
	// CountActive counts bays not in Maintenance. Pass the admission
	// transaction as tx to evaluate capacity inside it; nil uses the base
	// connection.
	CountActive(ctx context.Context, tx *gorm.DB) (int64, error)
	FindAll(ctx context.Context) ([]models.Bay, error)
	FindByID(ctx context.Context, id uint) (*models.Bay, error)
}

type bayRepository struct {
	db *gorm.DB
}

func NewBayRepository(db *gorm.DB) BayRepository {
	return &bayRepository{db: db}
}

func (r *bayRepository) CountActive(ctx context.Context, tx *gorm.DB) (int64, error) {
	db := r.db
	if tx != nil {
		db = tx
	}
	var count int64
	err := db.WithContext(ctx).
		Model(&models.Bay{}).
		Where("status <> ?", models.BayMaintenance).
		Count(&count).Error
	return count, err
}

func (r *bayRepository) FindAll(ctx context.Context) ([]models.Bay, error) {
	var bays []models.Bay
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&bays).Error; err != nil {
		return nil, err
	}
	return bays, nil
}

func (r *bayRepository) FindByID(ctx context.Context, id uint) (*models.Bay, error) {
	var bay models.Bay
	if err := r.db.WithContext(ctx).First(&bay, id).Error; err != nil {
		return nil, err
	}
	return &bay, nil
}
