package repository

import (
	"context"

	"balitrip/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) GetAll(ctx context.Context) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).Order("id").Find(&reviews).Error
	return reviews, err
}

// GetByPlace looks reviews up by the dataset's name key. Ordering follows
// insertion order so review cards render the way the dataset lists them.
func (r *ReviewRepository) GetByPlace(ctx context.Context, place string) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).Where("place = ?", place).Order("id").Find(&reviews).Error
	return reviews, err
}

// GetByDestination looks reviews up by the ID assigned at ingestion. This is
// the primary join; GetByPlace stays for callers that only have the name key.
func (r *ReviewRepository) GetByDestination(ctx context.Context, destinationID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).Where("destination_id = ?", destinationID).Order("id").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}
