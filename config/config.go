package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTokenTTL     = 12 * time.Hour
	defaultRefreshGrace = 7 * 24 * time.Hour
	defaultAdminToken   = "MASTER_ADMIN"
)

type Config struct {
	Port         int
	DatabaseURL  string
	JWTSecret    string
	TokenTTL     time.Duration
	RefreshGrace time.Duration

	AdminUsername string
	AdminPassword string
	AdminToken    string

	CORSOrigins string
	LogLevel    string
	Environment string

	SendGridAPIKey string
	EmailFrom      string
	ContactEmail   string
}

// Load reads the service configuration from the environment. Call godotenv.Load
// first when a .env file should be honored.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		TokenTTL:     defaultTokenTTL,
		RefreshGrace: defaultRefreshGrace,
		AdminToken:   defaultAdminToken,
		CORSOrigins:  "*",
		LogLevel:     "info",
		Environment:  "development",
	}

	portStr := strings.TrimSpace(getenv("PORT"))
	if portStr == "" {
		return Config{}, fmt.Errorf("PORT environment variable not set")
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 {
		return Config{}, fmt.Errorf("invalid PORT %q", portStr)
	}
	cfg.Port = port

	cfg.DatabaseURL = strings.TrimSpace(getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg.JWTSecret = getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is not set")
	}

	if v := strings.TrimSpace(getenv("TOKEN_TTL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid TOKEN_TTL %q", v)
		}
		cfg.TokenTTL = d
	}
	if v := strings.TrimSpace(getenv("TOKEN_REFRESH_GRACE")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("invalid TOKEN_REFRESH_GRACE %q", v)
		}
		cfg.RefreshGrace = d
	}

	cfg.AdminUsername = getenv("ADMIN_USERNAME")
	cfg.AdminPassword = getenv("ADMIN_PASSWORD")
	if v := getenv("ADMIN_TOKEN"); v != "" {
		cfg.AdminToken = v
	}

	if v := strings.TrimSpace(getenv("CORS_ORIGINS")); v != "" {
		cfg.CORSOrigins = v
	}
	if v := strings.ToLower(strings.TrimSpace(getenv("LOG_LEVEL"))); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.ToLower(strings.TrimSpace(getenv("APP_ENV"))); v != "" {
		cfg.Environment = v
	}

	cfg.SendGridAPIKey = getenv("SENDGRID_API_KEY")
	cfg.EmailFrom = getenv("EMAIL_FROM")
	cfg.ContactEmail = getenv("CONTACT_EMAIL")

	return cfg, nil
}

// AdminLoginEnabled reports whether admin credentials were configured.
func (c Config) AdminLoginEnabled() bool {
	return c.AdminUsername != "" && c.AdminPassword != ""
}
