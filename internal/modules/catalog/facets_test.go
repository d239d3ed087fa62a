package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"balitrip/internal/domain"
)

func sampleDestinations() []domain.Destination {
	return []domain.Destination{
		{Place: "Tanah Lot", Description: "A famous temple on a rock formation with great views", ReviewCount: 120000},
		{Place: "Mount Batur", Description: "Volcano hiking and trekking at sunrise in nature", ReviewCount: 7500},
		{Place: "Sanur Beach", Description: "Calm beach with water sports and diving spots", ReviewCount: 4800},
		{Place: "Ubud Art Market", Description: "Traditional market for souvenirs and local culture", ReviewCount: 15000},
		{Place: "Hidden Waterfall", Description: "A quiet waterfall deep in the jungle", ReviewCount: 900},
	}
}

func TestMatchExperience(t *testing.T) {
	nature := domain.Destination{Description: "Lush jungle and waterfall views"}
	cultural := domain.Destination{Description: "An ancient temple with traditional dance"}

	assert.True(t, MatchExperience(nature, ExperienceNature))
	assert.False(t, MatchExperience(nature, ExperienceCultural))
	assert.True(t, MatchExperience(cultural, ExperienceCultural))

	// Empty label means the axis is not constrained.
	assert.True(t, MatchExperience(nature, ""))

	// Unknown labels match nothing.
	assert.False(t, MatchExperience(nature, "Underwater"))
}

func TestMatchActivity_NameKeywords(t *testing.T) {
	// Hiking also matches on the place name, not just the description.
	mount := domain.Destination{Place: "Mount Agung", Description: "Sacred volcano"}
	assert.True(t, MatchActivity(mount, ActivityHiking))

	beach := domain.Destination{Place: "Kuta Beach", Description: "Nice sand"}
	assert.False(t, MatchActivity(beach, ActivityHiking))

	// Swimming matches beaches by name even without a watery description.
	assert.True(t, MatchActivity(beach, ActivitySwimming))
}

func TestMatchCrowdness_Thresholds(t *testing.T) {
	popular := domain.Destination{ReviewCount: 10001}
	boundary := domain.Destination{ReviewCount: 10000}
	quiet := domain.Destination{ReviewCount: 5000}
	justOver := domain.Destination{ReviewCount: 5001}
	middle := domain.Destination{ReviewCount: 7500}

	assert.True(t, MatchCrowdness(popular, CrowdPopular))
	assert.False(t, MatchCrowdness(boundary, CrowdPopular))

	assert.True(t, MatchCrowdness(quiet, CrowdQuiet))
	assert.False(t, MatchCrowdness(justOver, CrowdQuiet))

	// The (5000, 10000] interval belongs to neither bucket.
	assert.False(t, MatchCrowdness(middle, CrowdPopular))
	assert.False(t, MatchCrowdness(middle, CrowdQuiet))

	// "Doesn't Matter" and empty both pass everything.
	assert.True(t, MatchCrowdness(middle, CrowdDoesntMatter))
	assert.True(t, MatchCrowdness(middle, ""))
}

func TestFilter_SubsetInInputOrder(t *testing.T) {
	all := sampleDestinations()

	got := Filter(all, FilterState{Experience: ExperienceNature})

	// Result is a subset, and relative order of the input is preserved.
	assert.NotEmpty(t, got)
	idx := 0
	for _, d := range got {
		found := false
		for ; idx < len(all); idx++ {
			if all[idx].Place == d.Place {
				found = true
				idx++
				break
			}
		}
		assert.True(t, found, "result order diverged from input order at %s", d.Place)
	}
}

func TestFilter_AxesCombineWithAND(t *testing.T) {
	all := sampleDestinations()

	// Nature alone matches several places; adding Quiet narrows further.
	nature := Filter(all, FilterState{Experience: ExperienceNature})
	natureQuiet := Filter(all, FilterState{Experience: ExperienceNature, Crowdness: CrowdQuiet})

	assert.True(t, len(natureQuiet) <= len(nature))
	for _, d := range natureQuiet {
		assert.True(t, MatchExperience(d, ExperienceNature))
		assert.True(t, MatchCrowdness(d, CrowdQuiet))
	}
}

func TestFilter_QueryAppliesLast(t *testing.T) {
	all := sampleDestinations()

	got := Filter(all, FilterState{Experience: ExperienceNature, Query: "waterfall"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Hidden Waterfall", got[0].Place)

	// Query matches the place name only, case-insensitively.
	got = Filter(all, FilterState{Query: "TANAH"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Tanah Lot", got[0].Place)

	// A query term present only in descriptions matches nothing.
	got = Filter(all, FilterState{Query: "volcano"})
	assert.Empty(t, got)
}

func TestFilter_NoConstraintsReturnsEverything(t *testing.T) {
	all := sampleDestinations()
	got := Filter(all, FilterState{})
	assert.Equal(t, len(all), len(got))
}
