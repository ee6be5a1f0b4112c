package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds everything the server reads from the environment. It is
// resolved once at startup and passed explicitly into constructors; no
// package reads env vars at call time.
type Config struct {
	Port string

	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string

	JWTSecret  []byte
	TokenTTL   time.Duration
	BcryptCost int

	CatalogURL    string
	CatalogAPIKey string
}

// Load resolves the configuration from the process environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       "5000",
		DBHost:     "127.0.0.1",
		DBPort:     "3306",
		TokenTTL:   15 * time.Minute,
		BcryptCost: bcrypt.DefaultCost,
		CatalogURL: "https://api.api-ninjas.com/v1/exercises",
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	cfg.DBUser = os.Getenv("DB_USER")
	cfg.DBPass = os.Getenv("DB_PASS")
	cfg.DBName = os.Getenv("DB_NAME")
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.DBHost = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		cfg.DBPort = port
	}

	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET must be set")
	}
	cfg.JWTSecret = []byte(secret)

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		dur, err := time.ParseDuration(ttl)
		if err != nil || dur <= 0 {
			log.Printf("invalid TOKEN_TTL=%q, using default %s", ttl, cfg.TokenTTL)
		} else {
			cfg.TokenTTL = dur
		}
	}

	if url := os.Getenv("EXERCICES_API_URL"); url != "" {
		cfg.CatalogURL = url
	}
	cfg.CatalogAPIKey = os.Getenv("EXERCICES_API_KEY")

	return cfg, nil
}

// DSN builds the MySQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4,utf8",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}
