package catalog

import (
	"net/http"

	"balitrip/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service   *Service
	favorites FavoriteNamesReader
}

func NewHandler(service *Service, favorites FavoriteNamesReader) *Handler {
	return &Handler{
		service:   service,
		favorites: favorites,
	}
}

// GetDestinations handles GET /api/v1/destinations with optional facet
// filters and free-text query.
func (h *Handler) GetDestinations(c *gin.Context) {
	state := DecodeState(c.Request.URL.Query())
	destinations := h.service.Browse(c.Request.Context(), state)

	response.Success(c, http.StatusOK, gin.H{
		"destinations": destinations,
		"count":        len(destinations),
		"query":        state.Encode().Encode(),
	})
}

// GetRecommended handles GET /api/v1/destinations/recommended
func (h *Handler) GetRecommended(c *gin.Context) {
	destinations := h.service.Recommendations(c.Request.Context())

	response.Success(c, http.StatusOK, gin.H{
		"destinations": destinations,
	})
}

// GetDestinationDetail handles GET /api/v1/destinations/detail?place=
func (h *Handler) GetDestinationDetail(c *gin.Context) {
	place := c.Query(ParamPlace)
	if place == "" {
		response.Error(c, http.StatusBadRequest, "MISSING_PLACE", "Query parameter 'place' is required")
		return
	}

	detail := h.service.Detail(c.Request.Context(), place)
	if detail == nil {
		response.Error(c, http.StatusNotFound, "DESTINATION_NOT_FOUND", "Destination not found")
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// GetReviews handles GET /api/v1/reviews?place=
func (h *Handler) GetReviews(c *gin.Context) {
	place := c.Query(ParamPlace)
	if place == "" {
		response.Error(c, http.StatusBadRequest, "MISSING_PLACE", "Query parameter 'place' is required")
		return
	}

	reviews, err := h.service.reviews.GetByPlace(c.Request.Context(), place)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reviews")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"reviews": reviews,
	})
}

// Explore handles GET /api/v1/explore. It resolves the full query state to
// a view and returns the payload that view needs, so a client can restore
// itself from the URL alone.
func (h *Handler) Explore(c *gin.Context) {
	ctx := c.Request.Context()
	state := DecodeState(c.Request.URL.Query())

	view := state.Resolve(func(place string) bool {
		return h.service.HasPlace(ctx, place)
	})

	payload := ExploreResponse{
		View:  string(view),
		State: state,
	}

	switch view {
	case ViewDetail:
		payload.Detail = h.service.Detail(ctx, state.Place)
	case ViewCatalog:
		payload.Destinations = h.service.Browse(ctx, state)
		count := len(payload.Destinations)
		payload.Count = &count
	case ViewHome:
		payload.Recommended = h.service.Recommendations(ctx)
		if userID, ok := currentUserID(c); ok {
			names, err := h.favorites.Names(ctx, userID)
			if err == nil {
				payload.Favorites = h.service.ByNames(ctx, names)
			}
		}
	}

	response.Success(c, http.StatusOK, payload)
}

// currentUserID reads the identity set by the auth middleware, if any.
// Explore works anonymously; favorites just stay absent.
func currentUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
