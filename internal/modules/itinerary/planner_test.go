package itinerary

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"balitrip/internal/domain"
)

func testPlanner() *Planner {
	return NewPlanner(rand.New(rand.NewSource(1)))
}

func parseClock(s string) int {
	var h, m int
	_, _ = fmt.Sscanf(s, "%d:%d", &h, &m)
	return h*60 + m
}

func TestPlan_RespectsDayBounds(t *testing.T) {
	destinations := []domain.Destination{
		{Place: "A", VisitorFee: "10"},
		{Place: "B", VisitorFee: "20"},
		{Place: "C"},
		{Place: "D"},
		{Place: "E"},
	}

	plans := testPlanner().Plan(destinations, nil, 3)
	assert.Len(t, plans, 3)

	for _, day := range plans {
		for _, item := range day.Schedule {
			start := parseClock(item.StartTime)
			end := parseClock(item.EndTime)

			assert.GreaterOrEqual(t, start, dayStart)
			assert.LessOrEqual(t, end, dayEnd)
			assert.Equal(t, item.DurationMinutes, end-start)
		}
	}
}

func TestPlan_LeavesMealBreaksFree(t *testing.T) {
	var destinations []domain.Destination
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		destinations = append(destinations, domain.Destination{Place: name})
	}

	plans := testPlanner().Plan(destinations, nil, 5)

	for _, day := range plans {
		for _, item := range day.Schedule {
			start := parseClock(item.StartTime)
			end := parseClock(item.EndTime)

			// No visit may start inside a meal break.
			assert.False(t, start >= lunchStart && start < lunchEnd,
				"day %d: %s starts during lunch", day.Day, item.DestinationName)
			assert.False(t, start >= dinnerStart && start < dinnerEnd,
				"day %d: %s starts during dinner", day.Day, item.DestinationName)

			// No visit may straddle a break, except ending exactly at its end.
			if start < lunchStart {
				assert.True(t, end <= lunchStart || end == lunchEnd,
					"day %d: %s overlaps lunch", day.Day, item.DestinationName)
			}
			if start < dinnerStart {
				assert.True(t, end <= dinnerStart || end == dinnerEnd,
					"day %d: %s overlaps dinner", day.Day, item.DestinationName)
			}
		}
	}
}

func TestPlan_ScheduleIsSequential(t *testing.T) {
	destinations := []domain.Destination{
		{Place: "A"}, {Place: "B"}, {Place: "C"}, {Place: "D"},
	}

	plans := testPlanner().Plan(destinations, nil, 2)

	for _, day := range plans {
		prevEnd := 0
		for _, item := range day.Schedule {
			start := parseClock(item.StartTime)
			assert.GreaterOrEqual(t, start, prevEnd)
			prevEnd = parseClock(item.EndTime)
		}
	}
}

func TestPlan_DurationFromChoices(t *testing.T) {
	destinations := []domain.Destination{{Place: "A"}, {Place: "B"}}

	plans := testPlanner().Plan(destinations, nil, 4)
	for _, day := range plans {
		for _, item := range day.Schedule {
			assert.Contains(t, durationChoices, item.DurationMinutes)
		}
	}
}

func TestPlan_DurationStableAcrossDays(t *testing.T) {
	destinations := []domain.Destination{{Place: "Only Stop"}}

	plans := testPlanner().Plan(destinations, nil, 3)

	durations := map[int]bool{}
	for _, day := range plans {
		for _, item := range day.Schedule {
			durations[item.DurationMinutes] = true
		}
	}
	// One destination keeps one duration for the whole trip.
	assert.Len(t, durations, 1)
}

func TestPlan_RatingFallback(t *testing.T) {
	destinations := []domain.Destination{
		{Place: "Rated", MapsRating: 4.7},
		{Place: "Reviewed"},
		{Place: "Unknown"},
	}
	reviews := []domain.Review{
		{Place: "Reviewed", Rating: 4},
		{Place: "Reviewed", Rating: 5},
	}

	plans := testPlanner().Plan(destinations, reviews, 1)

	found := map[string]*float64{}
	for _, item := range plans[0].Schedule {
		found[item.DestinationName] = item.Rating
	}

	if r, ok := found["Rated"]; ok {
		assert.NotNil(t, r)
		assert.Equal(t, 4.7, *r)
	}
	if r, ok := found["Reviewed"]; ok {
		assert.NotNil(t, r)
		assert.Equal(t, 4.5, *r)
	}
	if r, ok := found["Unknown"]; ok {
		assert.Nil(t, r)
	}
}

func TestNormalizePrice(t *testing.T) {
	assert.Equal(t, "USD 10.00", normalizePrice("10"))
	assert.Equal(t, "USD 12.50", normalizePrice("12.5"))
	assert.Equal(t, "USD 15.00", normalizePrice("$15 USD"))
	assert.Equal(t, "USD 15.00", normalizePrice("15 usd"))
	assert.Equal(t, "N/A", normalizePrice(""))
	// Unparseable fees pass through untouched.
	assert.Equal(t, "Free entry", normalizePrice("Free entry"))
	assert.Equal(t, "IDR 50000", normalizePrice("IDR 50000"))
}
