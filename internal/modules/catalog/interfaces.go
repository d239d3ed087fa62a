package catalog

import (
	"context"

	"balitrip/internal/domain"
)

type DestinationReader interface {
	GetAll(ctx context.Context) ([]domain.Destination, error)
}

type ReviewReader interface {
	GetAll(ctx context.Context) ([]domain.Review, error)
	GetByPlace(ctx context.Context, place string) ([]domain.Review, error)
	GetByDestination(ctx context.Context, destinationID int64) ([]domain.Review, error)
}

type HotelReader interface {
	GetAll(ctx context.Context) ([]domain.Hotel, error)
}

// FavoriteNamesReader resolves the favorited place names of a user. The
// favorite module implements it; the catalog only needs the membership set
// to build the curated home view.
type FavoriteNamesReader interface {
	Names(ctx context.Context, userID int64) ([]string, error)
}
