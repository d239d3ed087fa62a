package domain

import "time"

// TourGuide is a published directory entry. PublicID is a uuid string; the
// listing predates the application flow, so rows created by an approved
// application and rows seeded from the dataset share this table.
type TourGuide struct {
	ID          int64  `json:"-" gorm:"primaryKey"`
	PublicID    string `json:"id" gorm:"uniqueIndex;not null"`
	Name        string `json:"name" gorm:"not null"`
	Language    string `json:"language"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Picture     string `json:"picture"`

	CreatedAt time.Time `json:"-" gorm:"autoCreateTime"`
}

func (TourGuide) TableName() string {
	return "tour_guides"
}

// GuideApplication keeps the raw submission, including where the uploaded CV
// landed on disk. Directory entries are derived from it on acceptance.
type GuideApplication struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	Contact     string `json:"contact" gorm:"not null"`
	Name        string `json:"name" gorm:"not null"`
	Language    string `json:"language"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Picture     string `json:"picture"`
	CVPath      string `json:"cv_path"`
	GuideID     string `json:"guide_id" gorm:"index"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (GuideApplication) TableName() string {
	return "guide_applications"
}
