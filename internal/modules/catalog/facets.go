package catalog

import (
	"strings"

	"balitrip/internal/domain"
)

// Facet labels form a closed enumeration. Each label maps to a fixed set of
// keyword substrings tested against the lowercased description (and, for
// some activities, the lowercased place name). A destination matches a label
// when ANY keyword appears. Unknown labels match nothing, and records with
// empty text fields simply never match — filtering fails closed.

// Experience facet labels.
const (
	ExperienceNature     = "Nature"
	ExperienceBeach      = "Beach"
	ExperienceCultural   = "Cultural & Temple Visits"
	ExperienceAdventure  = "Adventure"
	ExperienceWildlife   = "Wildlife"
	ExperienceRelaxation = "Relaxation & Scenic Views"
	ExperienceHistorical = "Historical Sites"
)

// Activity facet labels.
const (
	ActivitySightseeing = "Sightseeing"
	ActivityHiking      = "Hiking & Trekking"
	ActivitySwimming    = "Swimming & Snorkeling"
	ActivityPhotography = "Photography"
	ActivitySpiritual   = "Spiritual & Religious"
	ActivityShopping    = "Shopping & Local Markets"
)

// Crowd-level facet labels. Popular and Quiet are defined by review count
// with a deliberate gap: counts in (5000, 10000] match neither bucket. The
// source data behaves this way and the boundary is kept as-is.
const (
	CrowdPopular      = "Popular & Crowded"
	CrowdQuiet        = "Quiet & Less Touristy"
	CrowdDoesntMatter = "Doesn't Matter"
)

const (
	popularReviewThreshold = 10000
	quietReviewThreshold   = 5000
)

var experienceKeywords = map[string][]string{
	ExperienceNature:     {"nature", "mountain", "rice fields", "valley", "waterfall", "garden", "forest", "park"},
	ExperienceBeach:      {"beach", "coast"},
	ExperienceCultural:   {"temple", "cultural", "hindu"},
	ExperienceAdventure:  {"volcano", "trek", "swing", "rafting", "safari", "water park", "zoo"},
	ExperienceWildlife:   {"monkey", "zoo", "bird", "reptile", "animal"},
	ExperienceRelaxation: {"scenic", "gardens", "ridge walk", "retreat", "hot spring"},
	ExperienceHistorical: {"ancient", "historical", "monument", "palace", "sanctuary"},
}

// activityKeywords are tested against the description; activityNameKeywords
// additionally against the place name.
var activityKeywords = map[string][]string{
	ActivitySightseeing: {"tourist", "icon", "destination", "cultural park", "landmark", "village", "scenic"},
	ActivityHiking:      {"trek", "hiking"},
	ActivitySwimming:    {"bathing", "swimming", "water park"},
	ActivityPhotography: {"photography", "scenic", "views", "gardens"},
	ActivitySpiritual:   {"temple", "hindu", "pilgrimage", "spiritual", "holy spring"},
	ActivityShopping:    {"market", "souvenirs", "handicrafts", "produce"},
}

var activityNameKeywords = map[string][]string{
	ActivityHiking:   {"mount"},
	ActivitySwimming: {"beach", "waterboom"},
}

func containsAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// MatchExperience reports whether the destination matches an experience
// label. Empty label means the axis is inactive and everything passes.
func MatchExperience(d domain.Destination, label string) bool {
	if label == "" {
		return true
	}
	keywords, ok := experienceKeywords[label]
	if !ok {
		return false
	}
	return containsAny(strings.ToLower(d.Description), keywords)
}

func MatchActivity(d domain.Destination, label string) bool {
	if label == "" {
		return true
	}
	keywords, ok := activityKeywords[label]
	if !ok {
		return false
	}
	if containsAny(strings.ToLower(d.Description), keywords) {
		return true
	}
	return containsAny(strings.ToLower(d.Place), activityNameKeywords[label])
}

func MatchCrowdness(d domain.Destination, label string) bool {
	switch label {
	case "":
		return true
	case CrowdPopular:
		return d.ReviewCount > popularReviewThreshold
	case CrowdQuiet:
		return d.ReviewCount <= quietReviewThreshold
	case CrowdDoesntMatter:
		return true
	default:
		return false
	}
}

// matchQuery is the free-text search: case-insensitive substring against the
// place name only, never the description.
func matchQuery(d domain.Destination, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(d.Place), strings.ToLower(query))
}

// Filter applies the three facet axes AND the free-text query, in that
// order, over the full collection. The result is always a subset of the
// input in input order.
func Filter(destinations []domain.Destination, state FilterState) []domain.Destination {
	out := make([]domain.Destination, 0, len(destinations))
	for _, d := range destinations {
		if !MatchExperience(d, state.Experience) {
			continue
		}
		if !MatchActivity(d, state.Activity) {
			continue
		}
		if !MatchCrowdness(d, state.Crowdness) {
			continue
		}
		if !matchQuery(d, state.Query) {
			continue
		}
		out = append(out, d)
	}
	return out
}
