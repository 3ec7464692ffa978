package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Hotel{},
		&domain.Room{},
		&domain.Booking{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data in dependency order.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM hotels")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	users := []domain.User{}
	for _, email := range []string{"anna@example.com", "boris@example.com", "dasha@example.com"} {
		hash, _ := bcrypt.GenerateFromPassword([]byte("guest123"), bcrypt.DefaultCost)
		u := domain.User{Email: email, PasswordHash: string(hash)}
		db.Create(&u)
		users = append(users, u)
	}
	log.Printf("Users created: %d (password guest123)", len(users))

	// ================== HOTELS & ROOMS ==================
	log.Println("Creating hotels and rooms...")

	hotels := []domain.Hotel{
		{
			Name:          "Grand Plaza Moscow",
			Location:      "Moscow, Tverskaya 12",
			Services:      []string{"wifi", "spa", "parking"},
			RoomsQuantity: 30,
			ImageID:       1,
		},
		{
			Name:          "Neva Riverside",
			Location:      "Saint Petersburg, Nevsky 44",
			Services:      []string{"wifi", "breakfast"},
			RoomsQuantity: 18,
			ImageID:       2,
		},
		{
			Name:          "Altai Lodge",
			Location:      "Altai, Chemal",
			Services:      []string{"sauna", "parking"},
			RoomsQuantity: 10,
			ImageID:       3,
		},
	}
	for i := range hotels {
		db.Create(&hotels[i])
	}

	rooms := []domain.Room{
		{HotelID: hotels[0].ID, Name: "Standard", Description: "City view, queen bed", Price: 4500, Services: []string{"wifi"}, Quantity: 20, ImageID: 11},
		{HotelID: hotels[0].ID, Name: "Suite", Description: "Two rooms, balcony", Price: 12000, Services: []string{"wifi", "minibar"}, Quantity: 10, ImageID: 12},
		{HotelID: hotels[1].ID, Name: "Standard", Description: "River view", Price: 3800, Services: []string{"wifi"}, Quantity: 12, ImageID: 13},
		{HotelID: hotels[1].ID, Name: "Family", Description: "Two bedrooms", Price: 7000, Services: []string{"wifi", "kitchen"}, Quantity: 6, ImageID: 14},
		{HotelID: hotels[2].ID, Name: "Cabin", Description: "Mountain cabin for four", Price: 5200, Services: []string{"sauna"}, Quantity: 10, ImageID: 15},
	}
	for i := range rooms {
		db.Create(&rooms[i])
	}

	// ================== BOOKINGS ==================
	log.Println("Creating sample bookings...")

	from := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2030, 5, 15, 0, 0, 0, 0, time.UTC)
	db.Create(&domain.Booking{
		RoomID:   rooms[0].ID,
		UserID:   users[0].ID,
		DateFrom: from,
		DateTo:   to,
		Price:    rooms[0].Price,
	})

	log.Println("Seed complete")
}
