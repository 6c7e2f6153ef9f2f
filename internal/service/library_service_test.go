package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mokshhhhh/mussick/internal/adapter/eventbus"
	"github.com/mokshhhhh/mussick/internal/domain"
	"github.com/mokshhhhh/mussick/internal/logger"
	"github.com/mokshhhhh/mussick/internal/ports"
)

// memFavoritesRepo is an in-memory favorites repository for tests.
type memFavoritesRepo struct {
	mu        sync.Mutex
	tracks    []domain.Track
	saveCalls int
	failSave  bool
}

func (r *memFavoritesRepo) Save(tracks []domain.Track) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSave {
		return errors.New("save failed")
	}
	r.saveCalls++
	r.tracks = append([]domain.Track(nil), tracks...)
	return nil
}

func (r *memFavoritesRepo) Load() ([]domain.Track, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Track(nil), r.tracks...), nil
}

// memPlaylistsRepo is an in-memory playlists repository for tests.
type memPlaylistsRepo struct {
	mu        sync.Mutex
	playlists []domain.Playlist
	saveCalls int
	failSave  bool
}

func (r *memPlaylistsRepo) Save(playlists []domain.Playlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSave {
		return errors.New("save failed")
	}
	r.saveCalls++
	r.playlists = append([]domain.Playlist(nil), playlists...)
	return nil
}

func (r *memPlaylistsRepo) Load() ([]domain.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Playlist(nil), r.playlists...), nil
}

var (
	_ ports.FavoritesRepository = (*memFavoritesRepo)(nil)
	_ ports.PlaylistsRepository = (*memPlaylistsRepo)(nil)
)

// Helper to create a test library service
func newTestLibraryService(t *testing.T) (*LibraryService, *memFavoritesRepo, *memPlaylistsRepo, *eventbus.SyncEventBus) {
	t.Helper()

	favorites := &memFavoritesRepo{}
	playlists := &memPlaylistsRepo{}
	bus := eventbus.NewSyncEventBus(logger.NewTestLogger())
	service := NewLibraryService(logger.NewTestLogger(), favorites, playlists, bus)

	return service, favorites, playlists, bus
}

func TestLibraryService_ToggleFavorite(t *testing.T) {
	service, repo, _, bus := newTestLibraryService(t)

	var lastUpdate domain.FavoritesUpdatedEvent
	bus.Subscribe(domain.EventFavoritesUpdated, func(e domain.Event) {
		lastUpdate = e.(domain.FavoritesUpdatedEvent)
	})

	track := createTestTrack("1", "Test Song")

	require.NoError(t, service.ToggleFavorite(track))
	assert.True(t, service.IsFavorite(track.ID))
	require.Len(t, lastUpdate.Favorites, 1)

	// Persisted on every mutation
	saved, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, track.ID, saved[0].ID)

	// Toggling again restores the original membership
	require.NoError(t, service.ToggleFavorite(track))
	assert.False(t, service.IsFavorite(track.ID))
	assert.Empty(t, service.Favorites())

	saved, err = repo.Load()
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestLibraryService_ToggleFavorite_SaveFailure(t *testing.T) {
	service, repo, _, _ := newTestLibraryService(t)

	repo.failSave = true
	track := createTestTrack("1", "Test Song")

	err := service.ToggleFavorite(track)
	require.Error(t, err)

	// Membership unchanged when persistence fails
	assert.False(t, service.IsFavorite(track.ID))
}

func TestLibraryService_LoadFavorites(t *testing.T) {
	service, repo, _, _ := newTestLibraryService(t)

	repo.tracks = []domain.Track{
		createTestTrack("1", "Song 1"),
		createTestTrack("2", "Song 2"),
	}

	require.NoError(t, service.LoadFavorites())
	assert.True(t, service.IsFavorite("1"))
	assert.True(t, service.IsFavorite("2"))
	assert.Len(t, service.Favorites(), 2)
}

func TestLibraryService_CreatePlaylist(t *testing.T) {
	service, _, repo, bus := newTestLibraryService(t)

	var created domain.PlaylistCreatedEvent
	bus.Subscribe(domain.EventPlaylistCreated, func(e domain.Event) {
		created = e.(domain.PlaylistCreatedEvent)
	})

	id, err := service.CreatePlaylist("Road Trip")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	playlist, err := service.Playlist(id)
	require.NoError(t, err)
	assert.Equal(t, "Road Trip", playlist.Name)
	assert.Empty(t, playlist.Songs)
	assert.NotEmpty(t, playlist.Artwork)

	assert.Equal(t, id, created.Playlist.ID)

	// Persisted
	saved, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, id, saved[0].ID)

	// Ids are unique
	id2, err := service.CreatePlaylist("Road Trip")
	require.NoError(t, err)
	assert.NotEqual(t, id, id2)
}

func TestLibraryService_CreatePlaylist_EmptyName(t *testing.T) {
	service, _, repo, _ := newTestLibraryService(t)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := service.CreatePlaylist(name)
		assert.ErrorIs(t, err, domain.ErrEmptyPlaylistName)
	}

	// Nothing allocated, nothing persisted
	assert.Empty(t, service.Playlists())
	assert.Equal(t, 0, repo.saveCalls)
}

func TestLibraryService_DeletePlaylist(t *testing.T) {
	service, _, repo, _ := newTestLibraryService(t)

	id, err := service.CreatePlaylist("Doomed")
	require.NoError(t, err)

	require.NoError(t, service.DeletePlaylist(id))
	assert.Empty(t, service.Playlists())

	saved, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, saved)

	// Unknown ids are a no-op
	require.NoError(t, service.DeletePlaylist("missing"))
}

func TestLibraryService_AddTrackToPlaylist(t *testing.T) {
	service, _, _, bus := newTestLibraryService(t)

	var notices []string
	bus.Subscribe(domain.EventNotice, func(e domain.Event) {
		notices = append(notices, e.(domain.NoticeEvent).Message)
	})

	id, err := service.CreatePlaylist("Mix")
	require.NoError(t, err)

	track := createTestTrack("1", "Song 1")
	require.NoError(t, service.AddTrackToPlaylist(id, track))

	playlist, err := service.Playlist(id)
	require.NoError(t, err)
	require.Len(t, playlist.Songs, 1)

	// The first track sets the playlist artwork
	assert.Equal(t, track.Artwork, playlist.Artwork)
	assert.Contains(t, notices, "Added to Mix")
}

func TestLibraryService_AddTrackToPlaylist_Duplicate(t *testing.T) {
	service, _, repo, bus := newTestLibraryService(t)

	var notices []string
	bus.Subscribe(domain.EventNotice, func(e domain.Event) {
		notices = append(notices, e.(domain.NoticeEvent).Message)
	})

	id, err := service.CreatePlaylist("Mix")
	require.NoError(t, err)

	track := createTestTrack("1", "Song 1")
	require.NoError(t, service.AddTrackToPlaylist(id, track))
	saves := repo.saveCalls

	// A duplicate is not an error, just a notice; nothing is re-persisted
	require.NoError(t, service.AddTrackToPlaylist(id, track))

	playlist, err := service.Playlist(id)
	require.NoError(t, err)
	assert.Len(t, playlist.Songs, 1)
	assert.Equal(t, saves, repo.saveCalls)
	assert.Contains(t, notices, "Already in playlist")
}

func TestLibraryService_AddTrackToPlaylist_NotFound(t *testing.T) {
	service, _, _, _ := newTestLibraryService(t)

	err := service.AddTrackToPlaylist("missing", createTestTrack("1", "Song 1"))
	assert.ErrorIs(t, err, domain.ErrPlaylistNotFound)
}

func TestLibraryService_LoadPlaylists(t *testing.T) {
	service, _, repo, _ := newTestLibraryService(t)

	id, err := service.CreatePlaylist("Persisted")
	require.NoError(t, err)
	require.NoError(t, service.AddTrackToPlaylist(id, createTestTrack("1", "Song 1")))

	// A fresh service hydrated from the same repository sees the same state
	reloaded := NewLibraryService(logger.NewTestLogger(), &memFavoritesRepo{}, repo,
		eventbus.NewSyncEventBus(logger.NewTestLogger()))
	require.NoError(t, reloaded.LoadPlaylists())

	playlist, err := reloaded.Playlist(id)
	require.NoError(t, err)
	assert.Equal(t, "Persisted", playlist.Name)
	require.Len(t, playlist.Songs, 1)
	assert.Equal(t, "1", playlist.Songs[0].ID)
}

func TestLibraryService_PlaylistSnapshotIsolation(t *testing.T) {
	service, _, _, _ := newTestLibraryService(t)

	id, err := service.CreatePlaylist("Mix")
	require.NoError(t, err)
	require.NoError(t, service.AddTrackToPlaylist(id, createTestTrack("1", "Song 1")))

	playlist, err := service.Playlist(id)
	require.NoError(t, err)
	playlist.Songs[0].ID = "mutated"

	fresh, err := service.Playlist(id)
	require.NoError(t, err)
	assert.Equal(t, "1", fresh.Songs[0].ID)
}
