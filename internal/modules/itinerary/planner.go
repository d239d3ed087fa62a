package itinerary

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"

	"balitrip/internal/domain"
)

// Day boundaries in minutes since midnight.
const (
	dayStart    = 8 * 60
	lunchStart  = 11 * 60
	lunchEnd    = 13 * 60
	dinnerStart = 17 * 60
	dinnerEnd   = 19 * 60
	dayEnd      = 22 * 60
)

// durationChoices are the visit lengths assigned to destinations that carry
// no duration of their own.
var durationChoices = []int{90, 120, 150, 180}

var usdFeePattern = regexp.MustCompile(`(?i)\$?(\d+\.?\d*)\s*USD`)

// Activity is one scheduled visit within a day.
type Activity struct {
	DestinationName string   `json:"destination_name"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           string   `json:"price"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	Rating          *float64 `json:"rating"`
}

type DayPlan struct {
	Day      int        `json:"day"`
	Schedule []Activity `json:"schedule"`
}

// Planner fills tour days with destination visits around fixed meal breaks.
// The zero value is not usable; construct with NewPlanner.
type Planner struct {
	rng *rand.Rand
}

func NewPlanner(rng *rand.Rand) *Planner {
	return &Planner{rng: rng}
}

// Plan lays out the given number of days. Each day is 08:00 to 22:00 with
// lunch 11:00-13:00 and dinner 17:00-19:00 left free. Destinations are
// shuffled independently per day, so consecutive days differ. Reviews only
// matter for destinations without a maps rating.
func (p *Planner) Plan(destinations []domain.Destination, reviews []domain.Review, days int) []DayPlan {
	avgByPlace := reviewAverages(reviews)

	// Each destination keeps one duration for the whole trip.
	visits := make([]visit, len(destinations))
	for i, d := range destinations {
		visits[i] = visit{
			dest:     d,
			duration: durationChoices[p.rng.Intn(len(durationChoices))],
		}
	}

	plans := make([]DayPlan, 0, days)
	for day := 1; day <= days; day++ {
		pool := make([]visit, len(visits))
		copy(pool, visits)
		p.rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})

		plans = append(plans, DayPlan{
			Day:      day,
			Schedule: planDay(pool, avgByPlace),
		})
	}
	return plans
}

type visit struct {
	dest     domain.Destination
	duration int
}

func planDay(pool []visit, avgByPlace map[string]float64) []Activity {
	schedule := []Activity{}
	now := dayStart
	idx := 0

	for now < dayEnd && idx < len(pool) {
		if now >= lunchStart && now < lunchEnd {
			now = lunchEnd
			continue
		}
		if now >= dinnerStart && now < dinnerEnd {
			now = dinnerEnd
			continue
		}

		dest := pool[idx].dest
		duration := pool[idx].duration
		end := now + duration

		// A visit that would run into a meal break pushes the clock past
		// the break without consuming the destination.
		if now < lunchStart && end > lunchStart && end != lunchEnd {
			now = lunchEnd
			continue
		}
		if now < dinnerStart && end > dinnerStart && end != dinnerEnd {
			now = dinnerEnd
			continue
		}

		if end > dayEnd {
			idx++
			continue
		}

		schedule = append(schedule, Activity{
			DestinationName: dest.Place,
			StartTime:       clock(now),
			EndTime:         clock(end),
			DurationMinutes: duration,
			Price:           normalizePrice(dest.VisitorFee),
			Location:        fallback(dest.Location),
			Description:     fallback(dest.Description),
			Rating:          destinationRating(dest, avgByPlace),
		})
		now = end
		idx++
	}

	return schedule
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func fallback(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// normalizePrice turns a recognizable USD fee into "USD %.2f". Plain
// numbers count as USD; anything else passes through untouched, and an
// absent fee becomes "N/A".
func normalizePrice(fee string) string {
	if fee == "" {
		return "N/A"
	}
	if v, err := strconv.ParseFloat(fee, 64); err == nil {
		return fmt.Sprintf("USD %.2f", v)
	}
	if m := usdFeePattern.FindStringSubmatch(fee); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return fmt.Sprintf("USD %.2f", v)
		}
	}
	return fee
}

// destinationRating prefers the maps rating and falls back to the review
// mean; nil means the destination is unrated.
func destinationRating(d domain.Destination, avgByPlace map[string]float64) *float64 {
	if d.MapsRating > 0 {
		r := d.MapsRating
		return &r
	}
	if avg, ok := avgByPlace[d.Place]; ok {
		return &avg
	}
	return nil
}

func reviewAverages(reviews []domain.Review) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range reviews {
		sums[r.Place] += r.Rating
		counts[r.Place]++
	}

	avgs := make(map[string]float64, len(sums))
	for place, sum := range sums {
		avgs[place] = sum / float64(counts[place])
	}
	return avgs
}
