package repository

import (
	"context"

	"balitrip/internal/domain"

	"gorm.io/gorm"
)

type DestinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

// GetAll returns the full collection in insertion order. The catalog works
// on the whole set in memory — the dataset tops out at a few hundred rows —
// so there is no pagination here.
func (r *DestinationRepository) GetAll(ctx context.Context) ([]domain.Destination, error) {
	var destinations []domain.Destination
	err := r.db.WithContext(ctx).Order("id").Find(&destinations).Error
	return destinations, err
}

func (r *DestinationRepository) GetByPlace(ctx context.Context, place string) (*domain.Destination, error) {
	var destination domain.Destination
	err := r.db.WithContext(ctx).Where("place = ?", place).First(&destination).Error
	if err != nil {
		return nil, err
	}
	return &destination, nil
}

func (r *DestinationRepository) Create(ctx context.Context, d *domain.Destination) error {
	return r.db.WithContext(ctx).Create(d).Error
}
