package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort       int
	DatabasePath     string
	PresenceWindow   time.Duration // recency window for the "online" predicate
	RateLimitRPS     float64
	RateLimitBurst   int
	SnapshotSchedule string // cron expression for the stats snapshot job
	CORSOrigins      []string
	LogLevel         string
}

// Load loads configuration from environment variables or sets defaults.
// A .env file in the working directory is read first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, err
	}

	window, err := time.ParseDuration(getEnv("PRESENCE_WINDOW", "2m"))
	if err != nil {
		return nil, err
	}

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "20"), 64)
	if err != nil {
		return nil, err
	}

	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "40"))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:       port,
		DatabasePath:     getEnv("DATABASE_PATH", "./chatline.db"),
		PresenceWindow:   window,
		RateLimitRPS:     rps,
		RateLimitBurst:   burst,
		SnapshotSchedule: getEnv("SNAPSHOT_SCHEDULE", "0 * * * *"),
		CORSOrigins:      strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
