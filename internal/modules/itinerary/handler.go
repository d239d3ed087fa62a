package itinerary

import (
	"context"
	"net/http"

	"balitrip/internal/domain"

	"github.com/gin-gonic/gin"
)

type DestinationReader interface {
	GetAll(ctx context.Context) ([]domain.Destination, error)
}

type ReviewReader interface {
	GetAll(ctx context.Context) ([]domain.Review, error)
}

type Handler struct {
	planner      *Planner
	destinations DestinationReader
	reviews      ReviewReader
}

func NewHandler(planner *Planner, destinations DestinationReader, reviews ReviewReader) *Handler {
	return &Handler{
		planner:      planner,
		destinations: destinations,
		reviews:      reviews,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/itinerary/generate", h.Generate)
}

type generateRequest struct {
	Days int `json:"days"`
}

// Generate handles POST /api/v1/itinerary/generate. The error payload shape
// is `{"error": ...}`, matching what itinerary clients expect.
func (h *Handler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Days <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": `Please provide a valid number of days (e.g., {"days": 3})`,
		})
		return
	}

	destinations, err := h.destinations.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error loading destination data: " + err.Error(),
		})
		return
	}
	if len(destinations) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No destinations found in the local data file. Please add some destinations.",
		})
		return
	}

	// Reviews are optional; without them ratings just fall back harder.
	reviews, err := h.reviews.GetAll(c.Request.Context())
	if err != nil {
		reviews = nil
	}

	plans := h.planner.Plan(destinations, reviews, req.Days)

	if c.Query("format") == "text" {
		c.String(http.StatusOK, FormatReport(plans))
		return
	}
	c.JSON(http.StatusOK, plans)
}
