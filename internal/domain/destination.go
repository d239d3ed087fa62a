package domain

import "time"

// Destination is a single place of interest loaded from the static dataset.
//
// The source data has no identifiers of its own — Place doubles as the
// primary key there. A synthetic ID is assigned at ingestion; Place keeps a
// unique index so duplicate names in the dataset fail loudly instead of one
// record silently shadowing another.
type Destination struct {
	ID          int64   `json:"id" gorm:"primaryKey"`
	Place       string  `json:"place" gorm:"uniqueIndex;not null"`
	Picture     string  `json:"picture"`
	Location    string  `json:"location"`
	Coordinate  string  `json:"coordinate"`
	MapsRating  float64 `json:"maps_rating"`
	ReviewCount int     `json:"review_count"`
	Source      string  `json:"source"`
	Description string  `json:"description"`
	VisitorFee  string  `json:"visitor_fee"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Destination) TableName() string {
	return "destinations"
}
