package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration sourced from env vars. It is built once
// at startup and passed down explicitly; nothing reads the environment after
// Load returns.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	BcryptCost  int
	Environment string
	CORSOrigins []string

	// Rate limiting applied per client IP at the edge.
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// Load reads configuration from the environment and validates the settings
// the server cannot run without.
func Load() (Config, error) {
	cfg := Config{
		Port:               fallback(os.Getenv("PORT"), "3001"),
		DatabaseURL:        strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:          strings.TrimSpace(os.Getenv("JWT_SECRET")),
		TokenTTL:           parseHours(os.Getenv("TOKEN_TTL_HOURS"), 24),
		BcryptCost:         parseInt(os.Getenv("BCRYPT_COST"), 12),
		Environment:        fallback(os.Getenv("APP_ENV"), "development"),
		CORSOrigins:        parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "http://localhost:5173")),
		RateLimitPerSecond: parseFloat(os.Getenv("RATE_LIMIT_PER_SECOND"), 10),
		RateLimitBurst:     parseInt(os.Getenv("RATE_LIMIT_BURST"), 30),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	// Tokens must never be signed with an empty key.
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// IsProduction reports whether secure-only cookie flags should be set.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// HTTPAddress returns the host:port pair the HTTP server binds to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseHours(value string, def int) time.Duration {
	return time.Duration(parseInt(value, def)) * time.Hour
}

func parseInt(value string, def int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n > 0 {
		return n
	}
	return def
}

func parseFloat(value string, def float64) float64 {
	if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil && f > 0 {
		return f
	}
	return def
}

func parseCSV(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
