package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	AppEnv string
	Port   int

	// Mongo
	MongoURI string
	MongoDB  string

	// Password hashing
	BcryptCost int

	// Logging
	LogLevel  string
	LogFormat string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.Port = getInt("PORT", 8000)

	// Prefer MONGO_URI; DATABASE_URL accepted for parity with older deploys.
	// An empty URI is tolerated: the service starts in degraded mode and the
	// auth endpoints answer "Database not configured".
	cfg.MongoURI = firstNonEmpty(
		strings.TrimSpace(os.Getenv("MONGO_URI")),
		strings.TrimSpace(os.Getenv("DATABASE_URL")),
	)
	cfg.MongoDB = getEnv("MONGO_DB", "blood_bank")

	cfg.BcryptCost = getInt("BCRYPT_COST", bcrypt.DefaultCost)
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		cfg.BcryptCost = bcrypt.DefaultCost
	}

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "console")

	return cfg, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
