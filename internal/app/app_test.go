package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mokshhhhh/mussick/internal/config"
	"github.com/mokshhhhh/mussick/internal/domain"
	"github.com/mokshhhhh/mussick/internal/testutil"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Engine.Backend = "mock"
	cfg.Storage.DataDir = t.TempDir()
	cfg.Log.Level = "warn"
	return cfg
}

func TestNewApplication_WiresEverything(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)

	application, err := NewApplication(testConfig(t))
	require.NoError(t, err)
	defer func() { _ = application.Shutdown() }()

	assert.NotNil(t, application.Player())
	assert.NotNil(t, application.Library())
	assert.NotNil(t, application.Catalog())
	assert.NotNil(t, application.EventBus())
	assert.NotNil(t, application.Logger())
}

func TestApplication_PlaybackThroughWiring(t *testing.T) {
	application, err := NewApplication(testConfig(t))
	require.NoError(t, err)
	defer func() { _ = application.Shutdown() }()

	track := domain.Track{
		ID:    "1",
		Title: "Song",
		URL:   "https://cdn/1.mp3",
	}

	require.NoError(t, application.Player().PlayTrack(track))

	state := application.Player().State()
	require.NotNil(t, state.ActiveTrack)
	assert.Equal(t, "1", state.ActiveTrack.ID)
	assert.True(t, state.Playing)
}

func TestApplication_LibraryPersistsAcrossRestarts(t *testing.T) {
	cfg := testConfig(t)

	first, err := NewApplication(cfg)
	require.NoError(t, err)

	id, err := first.Library().CreatePlaylist("Keep Me")
	require.NoError(t, err)
	require.NoError(t, first.Library().ToggleFavorite(domain.Track{ID: "fav1", Title: "Song"}))
	require.NoError(t, first.Shutdown())

	// A second application over the same data directory hydrates the library
	second, err := NewApplication(cfg)
	require.NoError(t, err)
	defer func() { _ = second.Shutdown() }()

	assert.True(t, second.Library().IsFavorite("fav1"))

	playlist, err := second.Library().Playlist(id)
	require.NoError(t, err)
	assert.Equal(t, "Keep Me", playlist.Name)
}

func TestApplication_ShutdownStopsPlayback(t *testing.T) {
	application, err := NewApplication(testConfig(t))
	require.NoError(t, err)

	require.NoError(t, application.Player().PlayTrack(domain.Track{ID: "1", URL: "https://cdn/1.mp3"}))
	require.NoError(t, application.Shutdown())

	// Further engine commands are rejected
	err = application.Player().PlayTrack(domain.Track{ID: "2", URL: "https://cdn/2.mp3"})
	assert.Error(t, err)
}
