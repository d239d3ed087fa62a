package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEncode_RoundTrip(t *testing.T) {
	states := []FilterState{
		{},
		{Show: ShowAll},
		{Query: "temple"},
		{Experience: ExperienceNature, Activity: ActivityHiking, Crowdness: CrowdQuiet},
		{Place: "Tanah Lot"},
		{Show: ShowAll, Query: "beach", FilterOpen: true, AnimateFilter: true},
	}

	for _, state := range states {
		decoded := DecodeState(state.Encode())
		assert.Equal(t, state, decoded, "state %+v did not survive a round trip", state)
	}
}

func TestEncode_OmitsZeroValues(t *testing.T) {
	values := FilterState{Query: "temple"}.Encode()

	assert.Equal(t, "temple", values.Get(ParamQuery))
	assert.False(t, values.Has(ParamShow))
	assert.False(t, values.Has(ParamExperience))
	assert.False(t, values.Has(ParamFilterOpen))
}

func TestDecodeState_IgnoresUnknownParams(t *testing.T) {
	values := url.Values{}
	values.Set(ParamQuery, "beach")
	values.Set("utm_source", "newsletter")

	state := DecodeState(values)
	assert.Equal(t, "beach", state.Query)

	// Unknown parameters are dropped, not carried through.
	assert.False(t, state.Encode().Has("utm_source"))
}

func TestHasFilters(t *testing.T) {
	assert.False(t, FilterState{}.HasFilters())
	assert.False(t, FilterState{Place: "Tanah Lot"}.HasFilters())
	assert.True(t, FilterState{Show: ShowAll}.HasFilters())
	assert.True(t, FilterState{Query: "x"}.HasFilters())
	assert.True(t, FilterState{Crowdness: CrowdPopular}.HasFilters())
}

func TestResolve_PlaceWinsOverFilters(t *testing.T) {
	exists := func(place string) bool { return place == "Tanah Lot" }

	state := FilterState{Place: "Tanah Lot", Show: ShowAll, Query: "beach"}
	assert.Equal(t, ViewDetail, state.Resolve(exists))

	state.Place = "Atlantis"
	assert.Equal(t, ViewLoading, state.Resolve(exists))
}

func TestResolve_FiltersAndDefault(t *testing.T) {
	exists := func(string) bool { return false }

	assert.Equal(t, ViewCatalog, FilterState{Show: ShowAll}.Resolve(exists))
	assert.Equal(t, ViewCatalog, FilterState{Query: "beach"}.Resolve(exists))
	assert.Equal(t, ViewHome, FilterState{}.Resolve(exists))
}
