package repository

import (
	"context"

	"balitrip/internal/domain"

	"gorm.io/gorm"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) GetAll(ctx context.Context) ([]domain.Hotel, error) {
	var hotels []domain.Hotel
	err := r.db.WithContext(ctx).Order("id").Find(&hotels).Error
	return hotels, err
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	return r.db.WithContext(ctx).Create(h).Error
}
