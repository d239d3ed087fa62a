package main

import (
	"log"
	"os"

	"balitrip/internal/database"
	"balitrip/internal/dataset"
	"balitrip/internal/domain"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "balitrip.db"
	}
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
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

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM favorite_lists")
	db.Exec("DELETE FROM guide_applications")
	db.Exec("DELETE FROM tour_guides")
	db.Exec("DELETE FROM hotels")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM destinations")
	db.Exec("DELETE FROM users")

	loader := dataset.New(dataDir)

	// ================== DESTINATIONS ==================
	log.Println("Loading destinations...")
	destinations := loader.Destinations()
	idByPlace := make(map[string]int64, len(destinations))
	for i := range destinations {
		d := &destinations[i]
		if _, dup := idByPlace[d.Place]; dup {
			log.Printf("skipping duplicate destination %q", d.Place)
			continue
		}
		if err := db.Create(d).Error; err != nil {
			log.Printf("failed to insert destination %q: %v", d.Place, err)
			continue
		}
		idByPlace[d.Place] = d.ID
	}
	log.Printf("Inserted %d destinations", len(idByPlace))

	// ================== REVIEWS ==================
	log.Println("Loading reviews...")
	inserted := 0
	for _, r := range loader.Reviews() {
		id, ok := idByPlace[r.Place]
		if !ok {
			log.Printf("skipping review for unknown place %q", r.Place)
			continue
		}
		r.DestinationID = id
		if err := db.Create(&r).Error; err != nil {
			log.Printf("failed to insert review for %q: %v", r.Place, err)
			continue
		}
		inserted++
	}
	log.Printf("Inserted %d reviews", inserted)

	// ================== HOTELS ==================
	log.Println("Loading hotels...")
	hotels := loader.Hotels()
	for i := range hotels {
		if err := db.Create(&hotels[i]).Error; err != nil {
			log.Printf("failed to insert hotel %q: %v", hotels[i].Name, err)
		}
	}
	log.Printf("Inserted %d hotels", len(hotels))

	// ================== TOUR GUIDES ==================
	log.Println("Loading tour guides...")
	guides := loader.TourGuides()
	for i := range guides {
		g := &guides[i]
		if g.PublicID == "" {
			g.PublicID = uuid.NewString()
		}
		if err := db.Create(g).Error; err != nil {
			log.Printf("failed to insert guide %q: %v", g.Name, err)
		}
	}
	log.Printf("Inserted %d tour guides", len(guides))

	// ================== USERS ==================
	log.Println("Creating demo users...")
	demoUsers := []struct {
		email    string
		username string
		password string
	}{
		{"made@balitrip.example", "Made", "traveler123"},
		{"ketut@balitrip.example", "Ketut", "traveler123"},
	}
	for _, u := range demoUsers {
		hash, _ := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		user := domain.User{
			Email:        u.email,
			Username:     u.username,
			PasswordHash: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("failed to create user %s: %v", u.email, err)
			continue
		}
		log.Printf("User created: %s / %s", u.email, u.password)
	}

	log.Println("Seed complete.")
}
