package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/nhea/awards-api/config"
	"github.com/nhea/awards-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@nhea.com"
	password := "changeme123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash, role, is_verified)
		VALUES ($1, $2, $3, 'ADMIN', TRUE)
		ON CONFLICT (email) DO UPDATE SET role = 'ADMIN', is_verified = TRUE
		RETURNING id
	`, "NHEA Admin", email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s password=%s\n", id, email, password)

	categories := []struct{ name, desc string }{
		{"Excellence in Patient Care", "Recognizing outstanding dedication to patient wellbeing"},
		{"Healthcare Innovation", "Celebrating novel approaches to care delivery"},
		{"Rising Star", "Honouring exceptional early-career professionals"},
	}
	for _, c := range categories {
		if _, err := db.Exec(`
			INSERT INTO categories (name, description)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING
		`, c.name, c.desc); err != nil {
			log.Fatalf("failed to seed category %q: %v", c.name, err)
		}
	}
	fmt.Printf("seeded %d categories\n", len(categories))
}
