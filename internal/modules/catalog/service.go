package catalog

import (
	"context"
	"log"
	"math"
	"sort"
	"strings"
	"sync"

	"balitrip/internal/domain"
)

// NearbyHotelCount caps both the matched set and the top-rated fallback.
const NearbyHotelCount = 8

type Service struct {
	destinations DestinationReader
	reviews      ReviewReader
	hotels       HotelReader
}

func NewService(destinations DestinationReader, reviews ReviewReader, hotels HotelReader) *Service {
	return &Service{
		destinations: destinations,
		reviews:      reviews,
		hotels:       hotels,
	}
}

// loadDestinations fetches the full collection, degrading to empty on
// failure. Dataset loss is never fatal to a view: the caller renders an
// empty state instead.
func (s *Service) loadDestinations(ctx context.Context) []domain.Destination {
	destinations, err := s.destinations.GetAll(ctx)
	if err != nil {
		log.Printf("catalog: failed to load destinations: %v", err)
		return nil
	}
	return destinations
}

func (s *Service) loadReviews(ctx context.Context) []domain.Review {
	reviews, err := s.reviews.GetAll(ctx)
	if err != nil {
		log.Printf("catalog: failed to load reviews: %v", err)
		return nil
	}
	return reviews
}

// Browse returns the filtered, searched subset of the catalog.
func (s *Service) Browse(ctx context.Context, state FilterState) []domain.Destination {
	return Filter(s.loadDestinations(ctx), state)
}

// Recommendations computes the top-N surface. Destinations and reviews are
// fetched concurrently and joined before ranking; either fetch failing
// degrades that side to empty rather than aborting.
func (s *Service) Recommendations(ctx context.Context) []domain.Destination {
	var (
		destinations []domain.Destination
		reviews      []domain.Review
		wg           sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		destinations = s.loadDestinations(ctx)
	}()
	go func() {
		defer wg.Done()
		reviews = s.loadReviews(ctx)
	}()
	wg.Wait()

	return TopRecommended(destinations, reviews)
}

// Detail is the composed single-destination payload.
type Detail struct {
	Destination   domain.Destination `json:"destination"`
	Reviews       []domain.Review    `json:"reviews"`
	AverageRating *float64           `json:"average_rating"`
	Hotels        []domain.Hotel     `json:"hotels"`
}

// Detail joins one destination with its reviews and a heuristically matched
// set of nearby hotels. The first exact name match wins; duplicate names in
// the dataset are a documented ambiguity, not something resolved here.
// A nil result means the place could not be resolved and the caller should
// render the degraded loading state.
func (s *Service) Detail(ctx context.Context, place string) *Detail {
	var matched *domain.Destination
	for _, d := range s.loadDestinations(ctx) {
		if d.Place == place {
			matched = &d
			break
		}
	}
	if matched == nil {
		return nil
	}

	detail := &Detail{Destination: *matched}

	reviews, err := s.reviews.GetByDestination(ctx, matched.ID)
	if err != nil {
		log.Printf("catalog: failed to load reviews for %q: %v", place, err)
		reviews = nil
	}
	detail.Reviews = reviews
	detail.AverageRating = averageRating(reviews)

	hotels, err := s.hotels.GetAll(ctx)
	if err != nil {
		log.Printf("catalog: failed to load hotels: %v", err)
		hotels = nil
	}
	detail.Hotels = nearbyHotels(*matched, hotels)

	return detail
}

// HasPlace reports whether a destination with that exact name is loaded.
func (s *Service) HasPlace(ctx context.Context, place string) bool {
	for _, d := range s.loadDestinations(ctx) {
		if d.Place == place {
			return true
		}
	}
	return false
}

// ByNames resolves place names to destination records by membership test,
// preserving collection order. Names without a matching record are dropped.
func (s *Service) ByNames(ctx context.Context, names []string) []domain.Destination {
	if len(names) == 0 {
		return nil
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	var out []domain.Destination
	for _, d := range s.loadDestinations(ctx) {
		if wanted[d.Place] {
			out = append(out, d)
		}
	}
	return out
}

// averageRating is the mean rating rounded to two decimals, or nil when
// there are no reviews ("no rating", not zero).
func averageRating(reviews []domain.Review) *float64 {
	if len(reviews) == 0 {
		return nil
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := math.Round(sum/float64(len(reviews))*100) / 100
	return &avg
}

// nearbyHotels matches hotels whose address contains any comma-separated,
// trimmed, lowercased token of the destination's location. Zero matches
// fall back to the top-rated hotels overall; a non-empty match set keeps
// dataset order and is capped, unranked.
func nearbyHotels(d domain.Destination, hotels []domain.Hotel) []domain.Hotel {
	var tokens []string
	for _, t := range strings.Split(d.Location, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			tokens = append(tokens, t)
		}
	}

	var matched []domain.Hotel
	for _, h := range hotels {
		if h.Address == "" {
			continue
		}
		addr := strings.ToLower(h.Address)
		for _, token := range tokens {
			if strings.Contains(addr, token) {
				matched = append(matched, h)
				break
			}
		}
	}

	if len(matched) == 0 {
		fallback := make([]domain.Hotel, len(hotels))
		copy(fallback, hotels)
		sort.SliceStable(fallback, func(i, j int) bool {
			return fallback[i].Rating > fallback[j].Rating
		})
		if len(fallback) > NearbyHotelCount {
			fallback = fallback[:NearbyHotelCount]
		}
		return fallback
	}

	if len(matched) > NearbyHotelCount {
		matched = matched[:NearbyHotelCount]
	}
	return matched
}
