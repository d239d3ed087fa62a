package repository

import (
	"context"
	"errors"

	"balitrip/internal/domain"

	"gorm.io/gorm"
)

// FavoriteListRepository persists one JSON-encoded list of place names per
// user. The favorite module owns decoding; this layer only moves the blob.
type FavoriteListRepository interface {
	Get(ctx context.Context, userID int64) (string, error)
	Put(ctx context.Context, userID int64, places string) error
}

type favoriteListRepository struct {
	db *gorm.DB
}

func NewFavoriteListRepository(db *gorm.DB) FavoriteListRepository {
	return &favoriteListRepository{db: db}
}

// Get returns the stored payload, or "" when the user has no row yet.
func (r *favoriteListRepository) Get(ctx context.Context, userID int64) (string, error) {
	var row domain.FavoriteList
	err := r.db.WithContext(ctx).First(&row, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return row.Places, nil
}

func (r *favoriteListRepository) Put(ctx context.Context, userID int64, places string) error {
	row := domain.FavoriteList{UserID: userID, Places: places}
	return r.db.WithContext(ctx).Save(&row).Error
}
