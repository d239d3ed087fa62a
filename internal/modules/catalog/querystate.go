package catalog

import "net/url"

// Query parameter names. The query string is the canonical representation
// of the discovery state; FilterState is a value-object view of it.
const (
	ParamPlace         = "place"
	ParamShow          = "show"
	ParamQuery         = "q"
	ParamExperience    = "experience"
	ParamActivity      = "activity"
	ParamCrowdness     = "crowdness"
	ParamFilterOpen    = "filterOpen"
	ParamAnimateFilter = "animateFilter"
)

// ShowAll is the discriminator value that forces the full catalog view.
const ShowAll = "all"

// View identifies which surface the discovery state resolves to.
type View string

const (
	// ViewHome is the curated surface: favorites plus top recommendations.
	ViewHome View = "home"
	// ViewCatalog is the full filtered/searched listing.
	ViewCatalog View = "catalog"
	// ViewDetail is a single destination page.
	ViewDetail View = "detail"
	// ViewLoading is the degraded detail state: a place was requested but
	// cannot be resolved against the loaded collection (empty collection or
	// unknown name).
	ViewLoading View = "loading"
)

// FilterState is the immutable discovery state. It maps totally and
// round-trip-safely to the URL query string: Decode(state.Encode()) == state
// for any state, and encoding always rebuilds the full parameter set so
// cleared facets leave no stale parameters behind.
type FilterState struct {
	Place         string
	Show          string
	Query         string
	Experience    string
	Activity      string
	Crowdness     string
	FilterOpen    bool
	AnimateFilter bool
}

// DecodeState reads the canonical query parameters into a FilterState.
// Unknown parameters are ignored; absent ones decode to zero values.
func DecodeState(q url.Values) FilterState {
	return FilterState{
		Place:         q.Get(ParamPlace),
		Show:          q.Get(ParamShow),
		Query:         q.Get(ParamQuery),
		Experience:    q.Get(ParamExperience),
		Activity:      q.Get(ParamActivity),
		Crowdness:     q.Get(ParamCrowdness),
		FilterOpen:    q.Get(ParamFilterOpen) == "true",
		AnimateFilter: q.Get(ParamAnimateFilter) == "true",
	}
}

// Encode rebuilds the complete parameter set from scratch. Zero-valued
// fields are omitted entirely rather than written as empty strings.
func (s FilterState) Encode() url.Values {
	q := url.Values{}
	if s.Place != "" {
		q.Set(ParamPlace, s.Place)
	}
	if s.Show != "" {
		q.Set(ParamShow, s.Show)
	}
	if s.Query != "" {
		q.Set(ParamQuery, s.Query)
	}
	if s.Experience != "" {
		q.Set(ParamExperience, s.Experience)
	}
	if s.Activity != "" {
		q.Set(ParamActivity, s.Activity)
	}
	if s.Crowdness != "" {
		q.Set(ParamCrowdness, s.Crowdness)
	}
	if s.FilterOpen {
		q.Set(ParamFilterOpen, "true")
	}
	if s.AnimateFilter {
		q.Set(ParamAnimateFilter, "true")
	}
	return q
}

// HasFilters reports whether any catalog-forcing input is active: an
// explicit show=all, a free-text query, or any facet selection.
func (s FilterState) HasFilters() bool {
	return s.Show == ShowAll || s.Query != "" ||
		s.Experience != "" || s.Activity != "" || s.Crowdness != ""
}

// Resolve decides the view. A requested place wins over everything when it
// resolves against the loaded collection; an unresolvable place degrades to
// the loading view instead of erroring. Otherwise any active filter input
// forces the catalog, and the curated home view is the default.
func (s FilterState) Resolve(placeExists func(string) bool) View {
	if s.Place != "" {
		if placeExists != nil && placeExists(s.Place) {
			return ViewDetail
		}
		return ViewLoading
	}
	if s.HasFilters() {
		return ViewCatalog
	}
	return ViewHome
}
