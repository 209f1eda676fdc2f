package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBDSN     string
	JWTSecret string
	TokenTTL  time.Duration
	LogFile   string
	AdminUser string
	AdminPass string
}

func Load() Config {
	// .env overrides the process environment when present; a missing file is fine.
	_ = godotenv.Overload()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "phoneshop.db" // sqlite file in project root
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev_secret_change_me"
		log.Printf("[config] JWT_SECRET not set, using insecure dev default")
	}
	ttl := 24 * time.Hour
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			log.Printf("[config] invalid TOKEN_TTL %q, keeping 24h", raw)
		} else {
			ttl = d
		}
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{
		Port:      port,
		DBDSN:     dsn,
		JWTSecret: secret,
		TokenTTL:  ttl,
		LogFile:   logFile,
		AdminUser: os.Getenv("ADMIN_USER"),
		AdminPass: os.Getenv("ADMIN_PASS"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s TOKEN_TTL=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.TokenTTL, cfg.LogFile)
	return cfg
}
