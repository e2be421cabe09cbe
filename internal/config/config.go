package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config collects every environment knob the site reads. It is loaded
// once at startup and passed explicitly to the components that need it;
// nothing reads os.Getenv after boot.
type Config struct {
	Port        int
	DatabaseURL string

	GetResponse GetResponseConfig

	CalendlyURL        string
	OnboardingEmbedURL string
	LogoURL            string
	StaticVersion      string

	AllowedOrigins []string
}

// GetResponseConfig configures the mailing-list integration. Subscription
// is attempted only when both APIKey and ListID are set.
type GetResponseConfig struct {
	APIKey  string
	ListID  string
	BaseURL string
	Timeout time.Duration
}

// Configured reports whether the client has enough to reach the API.
func (c GetResponseConfig) Configured() bool {
	return c.APIKey != "" && c.ListID != ""
}

const defaultGetResponseURL = "https://api.getresponse.com"

// Load builds a Config from the process environment. Call godotenv.Load
// first if a .env file should be honored.
func Load() (Config, error) {
	cfg := Config{
		Port:        8080,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		GetResponse: GetResponseConfig{
			APIKey:  os.Getenv("GETRESPONSE_API_KEY"),
			ListID:  os.Getenv("GETRESPONSE_LIST_ID"),
			BaseURL: defaultGetResponseURL,
			Timeout: 10 * time.Second,
		},
		CalendlyURL:        os.Getenv("CALENDLY_URL"),
		OnboardingEmbedURL: os.Getenv("ONBOARDING_EMBED_URL"),
		LogoURL:            os.Getenv("LOGO_URL"),
		StaticVersion:      os.Getenv("STATIC_VERSION"),
	}

	if v := os.Getenv("GETRESPONSE_URL"); v != "" {
		cfg.GetResponse.BaseURL = v
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{"*"}
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}
