package main

import (
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"balitrip/internal/database"
	"balitrip/internal/domain"
	"balitrip/internal/middleware"
	"balitrip/internal/modules/auth"
	"balitrip/internal/modules/catalog"
	"balitrip/internal/modules/favorite"
	"balitrip/internal/modules/guide"
	"balitrip/internal/modules/itinerary"
	jwtsvc "balitrip/internal/pkg/jwt"
	"balitrip/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	uploadDir := os.Getenv("CV_UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads/cvs"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Destination{},
		&domain.Review{},
		&domain.Hotel{},
		&domain.TourGuide{},
		&domain.GuideApplication{},
		&domain.FavoriteList{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	userRepo := repository.NewUserRepository(db)
	destinationRepo := repository.NewDestinationRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	guideRepo := repository.NewGuideRepository(db)
	favoriteRepo := repository.NewFavoriteListRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	broker := favorite.NewBroker()
	favoriteStore := favorite.NewStore(favoriteRepo, broker)

	catalogService := catalog.NewService(destinationRepo, reviewRepo, hotelRepo)
	catalogHandler := catalog.NewHandler(catalogService, favoriteStore)

	hub := favorite.NewHub()
	go hub.Run(broker.Subscribe())
	favoriteHandler := favorite.NewHandler(favoriteStore, hub, j, catalogService)

	guideService := guide.NewService(guideRepo)
	guideHandler := guide.NewHandler(guideService, uploadDir)

	planner := itinerary.NewPlanner(rand.New(rand.NewSource(time.Now().UnixNano())))
	itineraryHandler := itinerary.NewHandler(planner, destinationRepo, reviewRepo)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		guideHandler.RegisterRoutes(v1)
		itineraryHandler.RegisterRoutes(v1)
		v1.GET("/destinations", catalogHandler.GetDestinations)
		v1.GET("/destinations/recommended", catalogHandler.GetRecommended)
		v1.GET("/destinations/detail", catalogHandler.GetDestinationDetail)
		v1.GET("/reviews", catalogHandler.GetReviews)

		// explore works anonymously but picks up identity when present
		v1.GET("/explore", optionalAuthMiddleware(j), catalogHandler.Explore)

		// protected
		protected := v1.Group("/")
		protected.Use(authMiddleware(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			favoriteHandler.RegisterRoutes(protected)
		}
	}

	r.GET("/ws/favorites", favoriteHandler.HandleWebSocket)
	r.Static("/static/cvs", uploadDir)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}

func authMiddleware(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Missing Authorization header",
				},
			})
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid Authorization header",
				},
			})
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Empty token",
				},
			})
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid token",
				},
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)

		c.Next()
	}
}

// optionalAuthMiddleware sets the identity when a valid token is present
// and lets the request through either way.
func optionalAuthMiddleware(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if strings.HasPrefix(h, "Bearer ") {
			tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
			if claims, err := jwt.ValidateToken(tokenStr); err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("email", claims.Email)
			}
		}
		c.Next()
	}
}
