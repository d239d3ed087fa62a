package guide

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"balitrip/internal/domain"

	"github.com/google/uuid"
)

// DefaultPicture is used when an applicant submits no picture URL.
const DefaultPicture = "/assets/default_profile.jpg"

var (
	emailPattern      = regexp.MustCompile(`[^@]+@[^@]+\.[^@]+`)
	phonePattern      = regexp.MustCompile(`^\+?[0-9\s\-\(\)]{7,20}$`)
	pricePatternISO   = regexp.MustCompile(`^[A-Z]{3}\s\d+(\.\d+)?$`)
	pricePatternRange = regexp.MustCompile(`^\$\d+(\.\d+)?(\s*-\s*\$\d+(\.\d+)?)?$`)
)

type Repository interface {
	GetAll(ctx context.Context) ([]domain.TourGuide, error)
	CreateApplication(ctx context.Context, app *domain.GuideApplication, guide *domain.TourGuide) error
}

type ApplicationInput struct {
	Contact     string
	Name        string
	Language    string
	Price       string
	Description string
	Picture     string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListGuides(ctx context.Context) ([]domain.TourGuide, error) {
	return s.repo.GetAll(ctx)
}

// ValidateApplication checks every field and returns all failures at once.
// A contact containing '@' is validated as an email, otherwise as a phone
// number. Price accepts either an ISO currency prefix ("IDR 100000") or a
// dollar range ("$50 - $100"). An empty slice means the input is valid.
func ValidateApplication(input ApplicationInput, cvFilename string) []string {
	var errs []string

	if input.Contact == "" {
		errs = append(errs, msgContactRequired)
	} else if strings.Contains(input.Contact, "@") {
		if !emailPattern.MatchString(input.Contact) {
			errs = append(errs, msgInvalidEmail)
		}
	} else if !phonePattern.MatchString(input.Contact) {
		errs = append(errs, msgInvalidPhone)
	}

	if input.Name == "" {
		errs = append(errs, msgNameRequired)
	}
	if input.Language == "" {
		errs = append(errs, msgLanguageRequired)
	}

	if input.Price == "" {
		errs = append(errs, msgPriceRequired)
	} else if !pricePatternISO.MatchString(input.Price) && !pricePatternRange.MatchString(input.Price) {
		errs = append(errs, msgInvalidPrice)
	}

	if input.Description == "" {
		errs = append(errs, msgDescriptionRequired)
	}

	if cvFilename == "" {
		errs = append(errs, msgCVRequired)
	} else if !strings.HasSuffix(strings.ToLower(cvFilename), ".pdf") {
		errs = append(errs, msgCVNotPDF)
	}

	return errs
}

// CVFileName derives the stored name for an uploaded CV from the applicant
// name and the current time, so the original upload name never reaches disk.
func CVFileName(applicantName string, now time.Time) string {
	return fmt.Sprintf("%s_%s.pdf", strings.ReplaceAll(applicantName, " ", "_"), now.Format("20060102150405"))
}

// Apply persists the validated application and publishes the derived
// directory entry. Callers are expected to have run ValidateApplication and
// saved the CV to cvPath already.
func (s *Service) Apply(ctx context.Context, input ApplicationInput, cvPath string) (*domain.TourGuide, error) {
	picture := input.Picture
	if picture == "" {
		picture = DefaultPicture
	}

	guide := &domain.TourGuide{
		PublicID:    uuid.NewString(),
		Name:        input.Name,
		Language:    input.Language,
		Price:       input.Price,
		Description: input.Description,
		Picture:     picture,
	}
	app := &domain.GuideApplication{
		Contact:     input.Contact,
		Name:        input.Name,
		Language:    input.Language,
		Price:       input.Price,
		Description: input.Description,
		Picture:     picture,
		CVPath:      cvPath,
	}

	if err := s.repo.CreateApplication(ctx, app, guide); err != nil {
		return nil, err
	}
	return guide, nil
}
