package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSemesterStart is used when SEMESTER_START is unset or invalid.
const DefaultSemesterStart = "2024-01-01"

// Config holds all application configuration. The engine packages never
// read the environment themselves; values flow in from here through the
// cmd binaries.
type Config struct {
	DataDir       string
	SemesterStart time.Time
	LogLevel      string
	LogFormat     string
	BcryptCost    int
}

// Load reads configuration from environment variables with sensible
// defaults. It loads .env if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		DataDir:       getEnv("DATA_DIR", "./data"),
		SemesterStart: parseDate(getEnv("SEMESTER_START", DefaultSemesterStart)),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "pretty"),
		BcryptCost:    getEnvInt("BCRYPT_COST", 10),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func parseDate(raw string) time.Time {
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		d, _ = time.Parse("2006-01-02", DefaultSemesterStart)
	}
	return d
}
