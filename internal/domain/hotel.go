package domain

// Hotel is a lodging record. There is no stored relationship to a
// destination: proximity is decided at read time by matching the hotel
// address against the destination's location tokens.
type Hotel struct {
	ID        int64   `json:"id" gorm:"primaryKey"`
	Name      string  `json:"name" gorm:"not null"`
	Picture   string  `json:"picture"`
	Category  string  `json:"category"`
	Rating    float64 `json:"rating"`
	Address   string  `json:"address"`
	Contact   string  `json:"contact"`
	Price     string  `json:"price"`
	Amenities string  `json:"amenities"`
}

func (Hotel) TableName() string {
	return "hotels"
}
