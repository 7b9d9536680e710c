package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Listing source kinds.
const (
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress       string        `mapstructure:"SERVER_ADDRESS"`
	GinMode             string        `mapstructure:"GIN_MODE"`
	LogLevel            string        `mapstructure:"LOG_LEVEL"`
	LogFormat           string        `mapstructure:"LOG_FORMAT"`
	ListingSource       string        `mapstructure:"LISTING_SOURCE"`
	ListingAPIURL       string        `mapstructure:"LISTING_API_URL"`
	ListingAPITimeout   time.Duration `mapstructure:"LISTING_API_TIMEOUT"`
	ListingCacheTTL     time.Duration `mapstructure:"LISTING_CACHE_TTL"`
	DBSource            string        `mapstructure:"DB_SOURCE"`
	RecommendationLimit int           `mapstructure:"RECOMMENDATION_LIMIT"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":       "0.0.0.0:8080",
	"GIN_MODE":             "release",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
	"LISTING_SOURCE":       SourceHTTP,
	"LISTING_API_URL":      "https://backendpi-production.up.railway.app",
	"LISTING_API_TIMEOUT":  "10s",
	"LISTING_CACHE_TTL":    "1h",
	"DB_SOURCE":            "",
	"RECOMMENDATION_LIMIT": 50,
}

// LoadConfig reads configuration from app.env under path, if present, and from
// environment variables, which take precedence.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	return config, config.Validate()
}

// Validate checks settings that cannot be defaulted.
func (c Config) Validate() error {
	switch c.ListingSource {
	case SourceHTTP:
		if c.ListingAPIURL == "" {
			return errors.New("config: LISTING_API_URL is required for the http listing source")
		}
	case SourcePostgres:
		if c.DBSource == "" {
			return errors.New("config: DB_SOURCE is required for the postgres listing source")
		}
	default:
		return fmt.Errorf("config: unknown LISTING_SOURCE %q", c.ListingSource)
	}
	if c.RecommendationLimit <= 0 {
		return fmt.Errorf("config: RECOMMENDATION_LIMIT must be positive, got %d", c.RecommendationLimit)
	}
	return nil
}
