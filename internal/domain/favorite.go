package domain

import "time"

// FavoriteList holds one user's favorited place names as a single
// JSON-encoded array, mirroring the one-key storage shape of the original
// client. Decoding and repair of malformed payloads belongs to the favorite
// module, not here.
type FavoriteList struct {
	UserID    int64     `json:"user_id" gorm:"primaryKey"`
	Places    string    `json:"places" gorm:"type:text"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (FavoriteList) TableName() string {
	return "favorite_lists"
}
