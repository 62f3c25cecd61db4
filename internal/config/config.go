package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL    string
	HTTPAddr       string
	BaseURL        string
	JWTSecret      string
	DefaultLocale  string
	Timezone       string
	MigrationsPath string
	DraftTTL       time.Duration
	ReminderTick   time.Duration
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}

	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		HTTPAddr:       os.Getenv("HTTP_ADDR"),
		BaseURL:        os.Getenv("BASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		DefaultLocale:  os.Getenv("DEFAULT_LOCALE"),
		Timezone:       os.Getenv("EVENT_TIMEZONE"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		DraftTTL:       envDuration("DRAFT_TTL_MINUTES", 120),
		ReminderTick:   envDuration("REMINDER_TICK_MINUTES", 10),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("config: JWT_SECRET est requis et ne peut pas être vide")
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Valeur par défaut utile en local lorsque DATABASE_URL n'est pas fournie.
		c.DatabaseURL = "postgres://localhost:5432/liveline?sslmode=disable"
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
	}

	if strings.TrimSpace(c.HTTPAddr) == "" {
		c.HTTPAddr = ":8080"
	}

	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = "https://liveline.app"
	}
	base, err := url.Parse(c.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return fmt.Errorf("config: BASE_URL invalide (%q)", c.BaseURL)
	}

	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "fr"
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "migrations"
	}

	return nil
}

func envDuration(key string, defaultMinutes int) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Duration(defaultMinutes) * time.Minute
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return time.Duration(defaultMinutes) * time.Minute
	}
	return time.Duration(minutes) * time.Minute
}
