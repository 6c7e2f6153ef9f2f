package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir, which is unavailable before Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://saavn.sumit.co", cfg.Catalog.BaseURL)
	assert.Equal(t, 15, cfg.Catalog.HTTPTimeout)
	assert.Equal(t, "mpv", cfg.Engine.Backend)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_FromFile(t *testing.T) {
	chdir(t, t.TempDir())

	content := `
[catalog]
base_url = "https://catalog.example.com"
http_timeout = 30

[engine]
backend = "mock"

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile("config.toml", []byte(content), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://catalog.example.com", cfg.Catalog.BaseURL)
	assert.Equal(t, 30, cfg.Catalog.HTTPTimeout)
	assert.Equal(t, "mock", cfg.Engine.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Keys absent from the file keep their defaults
	assert.Equal(t, "text", cfg.Log.Format)
	assert.NotEmpty(t, cfg.Catalog.PlaceholderArtwork)
}

func TestLoad_InvalidFile(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile("config.toml", []byte("not [valid toml"), 0o600))

	_, err := Load()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	t.Run("empty base url", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Catalog.BaseURL = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Catalog.HTTPTimeout = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown engine backend", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Engine.Backend = "tape-deck"
		assert.Error(t, cfg.Validate())
	})
}

func TestCatalogConfig_GetHTTPTimeout(t *testing.T) {
	cfg := CatalogConfig{HTTPTimeout: 30}
	assert.Equal(t, "30s", cfg.GetHTTPTimeout().String())
}
