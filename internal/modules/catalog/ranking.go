package catalog

import (
	"sort"

	"balitrip/internal/domain"
)

// RecommendedCount is how many destinations the curated home surface shows.
const RecommendedCount = 8

// meanRatings computes the mean review rating per place name. Places with
// no reviews are absent from the map; callers treat that as a zero score.
func meanRatings(reviews []domain.Review) map[string]float64 {
	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range reviews {
		totals[r.Place] += r.Rating
		counts[r.Place]++
	}

	means := make(map[string]float64, len(counts))
	for place, n := range counts {
		means[place] = totals[place] / float64(n)
	}
	return means
}

// RankByReviews orders destinations descending by mean review rating.
// Destinations without reviews score zero and sink to the bottom. The sort
// is stable: ties keep the collection's load order.
func RankByReviews(destinations []domain.Destination, reviews []domain.Review) []domain.Destination {
	means := meanRatings(reviews)

	ranked := make([]domain.Destination, len(destinations))
	copy(ranked, destinations)

	sort.SliceStable(ranked, func(i, j int) bool {
		return means[ranked[i].Place] > means[ranked[j].Place]
	})
	return ranked
}

// TopRecommended returns the first RecommendedCount of the ranked
// collection, or the whole thing when it is smaller.
func TopRecommended(destinations []domain.Destination, reviews []domain.Review) []domain.Destination {
	ranked := RankByReviews(destinations, reviews)
	if len(ranked) > RecommendedCount {
		ranked = ranked[:RecommendedCount]
	}
	return ranked
}
