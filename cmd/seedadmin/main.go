// Command seedadmin ensures the platform admin account exists in the core
// API's database. Run it once against a fresh deployment; re-running is
// harmless.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/gatherhub/gatherhub/internal/seed"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using system environment")
	}

	dsn := buildDSN()
	cfg := seed.Config{
		Email:    os.Getenv("SEED_ADMIN_EMAIL"),
		Password: os.Getenv("SEED_ADMIN_PASSWORD"),
		Name:     os.Getenv("SEED_ADMIN_NAME"),
		Contact:  os.Getenv("SEED_ADMIN_CONTACT"),
	}
	if raw := os.Getenv("SEED_BCRYPT_COST"); raw != "" {
		cost, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("SEED_BCRYPT_COST is not a number: %v", err)
		}
		cfg.Cost = cost
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("seed config: %v", err)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}

	if err := seed.EnsureAdmin(db, cfg); err != nil {
		log.Fatalf("ensure admin: %v", err)
	}
	log.Printf("admin account %s is in place", cfg.Email)
}

func buildDSN() string {
	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	name := os.Getenv("DB_NAME")
	port := os.Getenv("DB_PORT")

	if host == "" || user == "" || pass == "" || name == "" || port == "" {
		log.Fatal("DB_HOST, DB_USER, DB_PASS, DB_NAME, and DB_PORT must all be set")
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		host, user, pass, name, port,
	)
}
