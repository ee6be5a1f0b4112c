package db

import (
	"database/sql"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	_ "github.com/go-sql-driver/mysql"
)

// Connect returns a MariaDB connection for the given DSN.
func Connect(dsn string) (*sql.DB, error) {
	return sql.Open("mysql", dsn)
}

// EnsureSchema creates required tables if not exist.
func EnsureSchema(db *sql.DB) error {
	if skip := strings.TrimSpace(os.Getenv("DB_SKIP_SCHEMA")); strings.EqualFold(skip, "true") || skip == "1" {
		log.Printf("EnsureSchema: skipped (DB_SKIP_SCHEMA=%q)", skip)
		return nil
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(50) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`); err != nil {
		return err
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS exercices (
			id CHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			type VARCHAR(100) NOT NULL,
			muscle VARCHAR(100) NOT NULL,
			equipment VARCHAR(255) NOT NULL DEFAULT '',
			img VARCHAR(500) NOT NULL DEFAULT '',
			gif VARCHAR(500) NOT NULL DEFAULT '',
			video VARCHAR(500) NOT NULL DEFAULT '',
			description TEXT,
			instructions TEXT,
			owner VARCHAR(64) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			INDEX idx_exercices_owner (owner)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`); err != nil {
		return err
	}

	return seedSystemExercices(db)
}

// seedSystemExercices inserts the shared "system" records on first run.
// They are visible to every user and read-only by convention.
func seedSystemExercices(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM exercices WHERE owner = 'system'`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []struct {
		name, exType, muscle, equipment string
	}{
		{"Push up", "body building", "Peck", "body weight"},
		{"Squat", "strength", "quadriceps", "barbell"},
		{"DeadLift", "powerlifting", "back", "barbell"},
		{"Plank", "strength", "abdominals", "body weight"},
	}
	for _, s := range seed {
		now := time.Now()
		if _, err := db.Exec(`
			INSERT INTO exercices (id, name, type, muscle, equipment, description, instructions, owner, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, '', '', 'system', ?, ?)
		`, uuid.NewString(), s.name, s.exType, s.muscle, s.equipment, now, now); err != nil {
			return err
		}
	}
	log.Printf("seeded %d system exercices", len(seed))
	return nil
}
