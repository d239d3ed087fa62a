package favorite

import (
	"context"
	"log"
	"net/http"
	"time"

	"balitrip/internal/domain"
	"balitrip/internal/pkg/jwt"
	"balitrip/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,

	// Dev default; tighten per deployment origin.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// DestinationResolver turns saved place names into full records.
type DestinationResolver interface {
	ByNames(ctx context.Context, names []string) []domain.Destination
}

type Handler struct {
	store      *Store
	hub        *Hub
	jwtService *jwt.Service
	resolver   DestinationResolver
}

func NewHandler(store *Store, hub *Hub, jwtService *jwt.Service, resolver DestinationResolver) *Handler {
	return &Handler{
		store:      store,
		hub:        hub,
		jwtService: jwtService,
		resolver:   resolver,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	{
		favorites.GET("", h.GetFavorites)
		favorites.POST("/toggle", h.Toggle)
	}
}

type toggleRequest struct {
	Place string `json:"place" binding:"required"`
}

// Toggle handles POST /api/v1/favorites/toggle
func (h *Handler) Toggle(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Field 'place' is required")
		return
	}

	places, added, err := h.store.Toggle(c.Request.Context(), userID, req.Place)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update favorites")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"place":  req.Place,
		"added":  added,
		"places": places,
	})
}

// GetFavorites handles GET /api/v1/favorites and resolves the saved names
// to full destination records.
func (h *Handler) GetFavorites(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	names, err := h.store.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load favorites")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"places":       names,
		"destinations": h.resolver.ByNames(c.Request.Context(), names),
	})
}

// HandleWebSocket handles GET /ws/favorites?token=JWT. The token travels in
// the query because browsers cannot set headers on WebSocket dials.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required. Use ?token=YOUR_JWT_TOKEN"})
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}
	userID := claims.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	h.hub.Register(userID, conn)
	defer func() {
		h.hub.Unregister(userID)
		conn.Close()
	}()

	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))

	// The socket is push-only; reads exist to surface disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	}
}

func authedUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
