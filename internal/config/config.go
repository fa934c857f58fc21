package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds everything the process reads from its environment, resolved
// once at startup and passed to constructors. Nothing else in the codebase
// touches os.Getenv.
type Config struct {
	Port        string
	DatabaseURL string

	// JWTSecret signs and verifies bearer tokens.
	JWTSecret string
	JWTTTL    time.Duration

	// StoreTimeout bounds every individual database call.
	StoreTimeout time.Duration

	DBMaxOpen     int
	DBMaxIdle     int
	DBMaxLifetime time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:          getenv("PORT", "4000"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTTTL:        getduration("JWT_TTL", 24*time.Hour),
		StoreTimeout:  getduration("STORE_TIMEOUT", 5*time.Second),
		DBMaxOpen:     getint("DB_MAX_OPEN", 25),
		DBMaxIdle:     getint("DB_MAX_IDLE", 25),
		DBMaxLifetime: getduration("DB_MAX_LIFETIME", 5*time.Minute),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("config: DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET is required")
	}

	return cfg, nil
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getint(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getduration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
