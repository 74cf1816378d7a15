package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pizzavfm/backend/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Efood   EfoodConfig
	Scrape  ScrapeConfig
	Cache   CacheConfig
	Ranking RankingConfig
	Output  OutputConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EfoodConfig holds e-food API configuration. Latitude and longitude are the
// delivery location the catalog prices are computed for.
type EfoodConfig struct {
	BaseURL   string  `mapstructure:"base_url"`
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
}

// ScrapeConfig holds batch scan configuration
type ScrapeConfig struct {
	Shops              []ShopConfig `mapstructure:"shops"`
	SkipRestaurants    []string     `mapstructure:"skip_restaurants"`
	AllowedRestaurants []string     `mapstructure:"allowed_restaurants"`
	MaxRestaurants     int          `mapstructure:"max_restaurants"`
	OverridesFile      string       `mapstructure:"overrides_file"`
}

// ShopConfig identifies one shop to scan. Rating 0 means unrated.
type ShopConfig struct {
	ID     int     `mapstructure:"id"`
	Name   string  `mapstructure:"name"`
	Rating float64 `mapstructure:"rating"`
}

// CacheConfig holds catalog cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RankingConfig controls deal ranking output
type RankingConfig struct {
	TopN int `mapstructure:"top_n"`
}

// OutputConfig holds export configuration
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pizzavfm/")

	v.SetEnvPrefix("PIZZAVFM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything else
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// e-food defaults
	v.SetDefault("efood.base_url", "https://api.e-food.gr/v3")
	v.SetDefault("efood.latitude", 0.0)
	v.SetDefault("efood.longitude", 0.0)

	// Scrape defaults
	v.SetDefault("scrape.max_restaurants", 0) // 0 = no cap
	v.SetDefault("scrape.overrides_file", "restaurant_overrides.json")
	v.SetDefault("scrape.skip_restaurants", []string{})
	v.SetDefault("scrape.allowed_restaurants", []string{})

	// Cache defaults
	v.SetDefault("cache.ttl", "1h")

	// Ranking defaults
	v.SetDefault("ranking.top_n", 10)

	// Output defaults
	v.SetDefault("output.dir", "output")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Efood.BaseURL == "" {
		return fmt.Errorf("e-food base URL is required (set PIZZAVFM_EFOOD_BASE_URL)")
	}

	if config.Ranking.TopN < 1 {
		return fmt.Errorf("ranking top_n must be at least 1, got: %d", config.Ranking.TopN)
	}

	if config.Scrape.MaxRestaurants < 0 {
		return fmt.Errorf("scrape max_restaurants must not be negative, got: %d", config.Scrape.MaxRestaurants)
	}

	return nil
}

// ShopRefs converts the configured shop list to domain references.
func (c *ScrapeConfig) ShopRefs() []domain.ShopRef {
	refs := make([]domain.ShopRef, 0, len(c.Shops))
	for _, shop := range c.Shops {
		ref := domain.ShopRef{ID: shop.ID, Name: shop.Name}
		if shop.Rating > 0 {
			rating := shop.Rating
			ref.Rating = &rating
		}
		refs = append(refs, ref)
	}
	return refs
}
