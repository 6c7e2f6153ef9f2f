package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Load reads the configuration from config.toml and returns a Config struct.
// A missing config file is not an error: the defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath("$HOME/.config/mussick/")
	v.AddConfigPath(".")

	// Set defaults from DefaultConfig
	defaults := DefaultConfig()
	v.SetDefault("catalog.base_url", defaults.Catalog.BaseURL)
	v.SetDefault("catalog.http_timeout", defaults.Catalog.HTTPTimeout)
	v.SetDefault("catalog.placeholder_artwork", defaults.Catalog.PlaceholderArtwork)
	v.SetDefault("storage.data_dir", defaults.Storage.DataDir)
	v.SetDefault("engine.backend", defaults.Engine.Backend)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for values no component can work with.
func (c *Config) Validate() error {
	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog.base_url must not be empty")
	}
	if c.Catalog.HTTPTimeout <= 0 {
		return fmt.Errorf("catalog.http_timeout must be positive")
	}
	switch c.Engine.Backend {
	case "mpv", "mock":
	default:
		return fmt.Errorf("engine.backend must be \"mpv\" or \"mock\", got %q", c.Engine.Backend)
	}
	return nil
}
