// Package config loads application configuration.
package config

import (
	"time"
)

// Config represents the complete application configuration.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Storage StorageConfig `mapstructure:"storage"`
	Engine  EngineConfig  `mapstructure:"engine"`
	Log     LogConfig     `mapstructure:"log"`
}

// CatalogConfig contains remote catalog API settings.
type CatalogConfig struct {
	BaseURL            string `mapstructure:"base_url"`
	HTTPTimeout        int    `mapstructure:"http_timeout"` // in seconds
	PlaceholderArtwork string `mapstructure:"placeholder_artwork"`
}

// GetHTTPTimeout returns the HTTP timeout as a time.Duration.
func (c *CatalogConfig) GetHTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// StorageConfig contains persistence settings.
type StorageConfig struct {
	// DataDir is where the blob store keeps its files.
	// Empty selects <user config dir>/mussick.
	DataDir string `mapstructure:"data_dir"`
}

// EngineConfig selects the media engine backend.
type EngineConfig struct {
	// Backend is "mpv" for the native engine or "mock" for headless runs.
	Backend string `mapstructure:"backend"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "text" or "json"
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:            "https://saavn.sumit.co",
			HTTPTimeout:        15,
			PlaceholderArtwork: "https://placehold.co/200x200.png",
		},
		Engine: EngineConfig{
			Backend: "mpv",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
