package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"payhive/internal/config"
	"payhive/internal/db"
	"payhive/internal/model"
	"payhive/internal/repository"
	"payhive/internal/service"
)

// SeedUserData represents one user in the seed file.
type SeedUserData struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	users := defaultSeedUsers()
	if path := os.Getenv("SEED_FILE"); path != "" {
		users, err = loadSeedUsers(path)
		if err != nil {
			log.Fatalf("Failed to load seed file: %v", err)
		}
		log.Printf("Loaded %d users from %s", len(users), path)
	}

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	created, skipped := 0, 0
	for _, item := range users {
		email := service.NormalizeEmail(item.Email)
		if !service.IsValidEmail(email) {
			log.Printf("Skipping user with invalid email: %s", item.Email)
			skipped++
			continue
		}

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			log.Printf("User already exists, skipping: %s", email)
			skipped++
			continue
		} else if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check user %s: %v", email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(item.Password), 10)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", email, err)
		}

		user := &model.User{
			Email:        email,
			PasswordHash: string(hash),
			FirstName:    item.FirstName,
			LastName:     item.LastName,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", email, err)
		}
		created++
	}

	log.Printf("Seed completed: %d created, %d skipped", created, skipped)
}

func defaultSeedUsers() []SeedUserData {
	return []SeedUserData{
		{
			Email:     "demo@payhive.co.uk",
			Password:  "Demo1234!",
			FirstName: "Demo",
			LastName:  "User",
		},
	}
}

func loadSeedUsers(path string) ([]SeedUserData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var users []SeedUserData
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}
	return users, nil
}
