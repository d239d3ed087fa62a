package catalog

import "balitrip/internal/domain"

// ExploreResponse is the view-discriminated payload for GET /explore. Only
// the fields the resolved view needs are populated.
type ExploreResponse struct {
	View  string      `json:"view"`
	State FilterState `json:"state"`

	// detail view
	Detail *Detail `json:"detail,omitempty"`

	// catalog view
	Destinations []domain.Destination `json:"destinations,omitempty"`
	Count        *int                 `json:"count,omitempty"`

	// home view
	Recommended []domain.Destination `json:"recommended,omitempty"`
	Favorites   []domain.Destination `json:"favorites,omitempty"`
}
