package repository

import (
	"context"

	"balitrip/internal/domain"

	"gorm.io/gorm"
)

type GuideRepository struct {
	db *gorm.DB
}

func NewGuideRepository(db *gorm.DB) *GuideRepository {
	return &GuideRepository{db: db}
}

func (r *GuideRepository) GetAll(ctx context.Context) ([]domain.TourGuide, error) {
	var guides []domain.TourGuide
	err := r.db.WithContext(ctx).Order("id").Find(&guides).Error
	return guides, err
}

func (r *GuideRepository) Create(ctx context.Context, g *domain.TourGuide) error {
	return r.db.WithContext(ctx).Create(g).Error
}

// CreateApplication stores the raw submission alongside the derived
// directory entry, in one transaction so an accepted application never
// exists without its listing.
func (r *GuideRepository) CreateApplication(ctx context.Context, app *domain.GuideApplication, guide *domain.TourGuide) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(guide).Error; err != nil {
			return err
		}
		app.GuideID = guide.PublicID
		return tx.Create(app).Error
	})
}
