package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/i474232898/weather-panel/internal/panel"
	"github.com/i474232898/weather-panel/internal/weather/providers"
)

var validate = validator.New()

type AppConfig struct {
	// WeatherAPIKey is sent as the "key" query parameter on every request.
	WeatherAPIKey string
	WeatherAPIURL string `validate:"required,url"`

	DefaultCity   string `validate:"required"`
	CountrySuffix string

	// HTTPTimeout bounds each outbound call (0 = no timeout).
	HTTPTimeout time.Duration `validate:"gte=0"`
	// FetchMaxRetries is the number of retries after a failed fetch (0 = none).
	FetchMaxRetries int `validate:"gte=0"`
	// RefreshInterval re-fetches the displayed city periodically (0 = disabled).
	RefreshInterval time.Duration `validate:"gte=0"`

	Port string `validate:"required,numeric"`
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.WeatherAPIKey = os.Getenv("WEATHER_API_KEY")
	if cfg.WeatherAPIKey == "" {
		// Name used by the original browser build.
		cfg.WeatherAPIKey = os.Getenv("VITE_WEATHER_API_KEYS")
	}
	if cfg.WeatherAPIKey == "" {
		log.Printf("WARN: WEATHER_API_KEY is not set; requests will be rejected by the weather API")
	}
	cfg.WeatherAPIURL = getenvDefault("WEATHER_API_URL", providers.DefaultWeatherAPIURL)

	cfg.DefaultCity = getenvDefault("DEFAULT_CITY", panel.DefaultCity)
	cfg.CountrySuffix = getenvDefault("COUNTRY_SUFFIX", "IN")
	if cfg.CountrySuffix == "-" {
		cfg.CountrySuffix = ""
	}

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval, err = getenvDuration("REFRESH_INTERVAL", 0); err != nil {
		return nil, err
	}
	if cfg.FetchMaxRetries, err = getenvInt("FETCH_MAX_RETRIES", 0); err != nil {
		return nil, err
	}
	cfg.Port = getenvDefault("PORT", "8080")

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// PanelOptions returns the panel settings carried by cfg.
func (c *AppConfig) PanelOptions() panel.Options {
	return panel.Options{
		DefaultCity:   c.DefaultCity,
		CountrySuffix: c.CountrySuffix,
	}
}

// ProviderOptions returns the WeatherAPI client settings carried by cfg.
func (c *AppConfig) ProviderOptions() providers.WeatherAPIOptions {
	return providers.WeatherAPIOptions{
		BaseURL: c.WeatherAPIURL,
		Backoff: providers.BackoffConfig{MaxRetries: c.FetchMaxRetries},
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
