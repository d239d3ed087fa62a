package dataset

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"balitrip/internal/domain"
)

// Default file names inside the dataset directory. These match the static
// JSON collections the frontend used to fetch directly.
const (
	DestinationsFile = "destinationBali.json"
	ReviewsFile      = "destinationReview.json"
	HotelsFile       = "hotelsBali.json"
	TourGuidesFile   = "tourGuides.json"
)

// destinationRecord mirrors the raw dataset field names, spaces and all.
type destinationRecord struct {
	Place       string  `json:"Place"`
	Picture     string  `json:"Picture"`
	Location    string  `json:"Location"`
	Coordinate  string  `json:"Coordinate"`
	MapsRating  float64 `json:"Google Maps Rating"`
	ReviewCount int     `json:"Google Reviews (Count)"`
	Source      string  `json:"Source"`
	Description string  `json:"Description"`
	VisitorFee  string  `json:"Tourism/Visitor Fee (approx in USD)"`
}

type reviewRecord struct {
	Place   string `json:"place"`
	Reviews []struct {
		Review string  `json:"review"`
		Rating float64 `json:"rating"`
	} `json:"reviews"`
}

type hotelRecord struct {
	Name      string  `json:"Name"`
	Picture   string  `json:"Picture"`
	Category  string  `json:"Category"`
	Rating    float64 `json:"Rating"`
	Address   string  `json:"Address"`
	Contact   string  `json:"Contact"`
	Price     string  `json:"Price"`
	Amenities string  `json:"Amenities"`
}

type guideRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Language    string `json:"language"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Picture     string `json:"picture"`
}

// Loader reads the static JSON collections from a directory. Every Load
// method degrades to an empty slice on a missing or corrupted file: the
// datasets are external collaborators and their absence must never take the
// service down.
type Loader struct {
	dir string
}

func New(dir string) *Loader {
	return &Loader{dir: dir}
}

func (l *Loader) Destinations() []domain.Destination {
	var records []destinationRecord
	if !l.read(DestinationsFile, &records) {
		return nil
	}

	out := make([]domain.Destination, 0, len(records))
	for _, r := range records {
		out = append(out, domain.Destination{
			Place:       r.Place,
			Picture:     r.Picture,
			Location:    r.Location,
			Coordinate:  r.Coordinate,
			MapsRating:  r.MapsRating,
			ReviewCount: r.ReviewCount,
			Source:      r.Source,
			Description: r.Description,
			VisitorFee:  r.VisitorFee,
		})
	}
	return out
}

// Reviews flattens the nested per-place review groups into individual rows,
// keyed by place name. DestinationID linking happens at seed time.
func (l *Loader) Reviews() []domain.Review {
	var records []reviewRecord
	if !l.read(ReviewsFile, &records) {
		return nil
	}

	var out []domain.Review
	for _, group := range records {
		for _, r := range group.Reviews {
			out = append(out, domain.Review{
				Place:  group.Place,
				Body:   r.Review,
				Rating: r.Rating,
			})
		}
	}
	return out
}

func (l *Loader) Hotels() []domain.Hotel {
	var records []hotelRecord
	if !l.read(HotelsFile, &records) {
		return nil
	}

	out := make([]domain.Hotel, 0, len(records))
	for _, r := range records {
		out = append(out, domain.Hotel{
			Name:      r.Name,
			Picture:   r.Picture,
			Category:  r.Category,
			Rating:    r.Rating,
			Address:   r.Address,
			Contact:   r.Contact,
			Price:     r.Price,
			Amenities: r.Amenities,
		})
	}
	return out
}

func (l *Loader) TourGuides() []domain.TourGuide {
	var records []guideRecord
	if !l.read(TourGuidesFile, &records) {
		return nil
	}

	out := make([]domain.TourGuide, 0, len(records))
	for _, r := range records {
		out = append(out, domain.TourGuide{
			PublicID:    r.ID,
			Name:        r.Name,
			Language:    r.Language,
			Price:       r.Price,
			Description: r.Description,
			Picture:     r.Picture,
		})
	}
	return out
}

func (l *Loader) read(name string, dst any) bool {
	path := filepath.Join(l.dir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("dataset: skipping %s: %v", path, err)
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Printf("dataset: %s is corrupted, ignoring: %v", path, err)
		return false
	}
	return true
}
