package domain

// Review is one visitor review for a destination. The dataset relates
// reviews to destinations by exact place-name match; DestinationID is filled
// in at ingestion once destinations have synthetic IDs, and the name is kept
// for the fallback lookup path.
type Review struct {
	ID            int64   `json:"id" gorm:"primaryKey"`
	DestinationID int64   `json:"destination_id" gorm:"index"`
	Place         string  `json:"place" gorm:"index;not null"`
	Body          string  `json:"review"`
	Rating        float64 `json:"rating"`
}

func (Review) TableName() string {
	return "reviews"
}
