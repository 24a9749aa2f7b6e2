package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all environment-derived settings. It is built once in main
// and passed by reference; nothing reads the environment after Load returns.
type Config struct {
	Port        string
	DBDriver    string // "postgres" or "sqlite"
	DBDSN       string
	JWTSecret   string
	TokenTTL    time.Duration
	CORSOrigins []string
}

// Load reads .env (if present) and the environment into a Config.
// JWT_SECRET has no default: a per-deployment secret is required.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	ttl := 24 * time.Hour
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid TOKEN_TTL %q: %v", v, err)
		}
		ttl = d
	}

	cfg := &Config{
		Port:        env("PORT", "8080"),
		DBDriver:    env("DB_DRIVER", "postgres"),
		JWTSecret:   secret,
		TokenTTL:    ttl,
		CORSOrigins: strings.Split(env("CORS_ORIGINS", "*"), ","),
	}

	switch cfg.DBDriver {
	case "sqlite":
		cfg.DBDSN = env("DB_PATH", "slotswapper.db")
	case "postgres":
		cfg.DBDSN = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			env("DB_HOST", "localhost"),
			env("DB_USER", "postgres"),
			env("DB_PASS", "postgres"),
			env("DB_NAME", "slotswapper"),
			env("DB_PORT", "5432"),
		)
	default:
		log.Fatalf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
