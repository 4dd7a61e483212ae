package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/sharely/sharely/config"
	"github.com/sharely/sharely/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@sharely.dev"
	password := "password123"
	name := "Demo User"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (name, email, password, email_verified_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s password=%s\n", id, email, password)

	shares := []struct {
		title       string
		description string
		contentType string
		content     string
		shortCode   string
	}{
		{"Go proverbs", "A few lines worth keeping", "markdown", "# Go proverbs\n\nClear is better than clever.", ""},
		{"Search docs", "Elasticsearch query DSL reference", "link", "https://www.elastic.co/guide/en/elasticsearch/reference/current/query-dsl.html", ""},
		{"hello.go", "Minimal program", "code", "package main\n\nfunc main() { println(\"hello\") }", ""},
		{"Team standup", "Meeting room shortlink", "shortlink", "https://meet.example.com/standup-room-long-url", "standup"},
	}
	for _, s := range shares {
		var sid int64
		err := db.QueryRow(`
			INSERT INTO shares (user_id, title, description, content_type, content, short_code)
			VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
			ON CONFLICT DO NOTHING
			RETURNING id
		`, id, s.title, s.description, s.contentType, s.content, s.shortCode).Scan(&sid)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			log.Fatalf("failed to seed share %q: %v", s.title, err)
		}
		fmt.Printf("seeded share: id=%d title=%q type=%s\n", sid, s.title, s.contentType)
	}
}
