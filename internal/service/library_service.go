// Package service provides business logic for the mussick playback core.
package service

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mokshhhhh/mussick/internal/domain"
	"github.com/mokshhhhh/mussick/internal/ports"
)

// defaultPlaylistArtwork is used until a playlist receives its first track.
const defaultPlaylistArtwork = "https://placehold.co/200x200/orange/white?text=Playlist"

// LibraryService manages the persisted user data: favorites and playlists.
// Every mutation is written through to the repositories in full; the
// repositories are read once at startup via LoadFavorites/LoadPlaylists.
//
// All operations are thread-safe via sync.RWMutex.
type LibraryService struct {
	// Dependencies (injected)
	logger        *slog.Logger
	favoritesRepo ports.FavoritesRepository
	playlistsRepo ports.PlaylistsRepository
	bus           ports.EventBus

	// State
	favorites []domain.Track
	playlists []domain.Playlist

	// Concurrency control
	mu sync.RWMutex
}

// NewLibraryService creates a new library service.
func NewLibraryService(
	logger *slog.Logger,
	favoritesRepo ports.FavoritesRepository,
	playlistsRepo ports.PlaylistsRepository,
	bus ports.EventBus,
) *LibraryService {
	return &LibraryService{
		logger:        logger,
		favoritesRepo: favoritesRepo,
		playlistsRepo: playlistsRepo,
		bus:           bus,
	}
}

// ToggleFavorite adds the track to the favorites when absent and removes it
// when present, keyed by id, then persists the updated set. Calling it twice
// with the same track restores the original membership.
func (s *LibraryService) ToggleFavorite(track domain.Track) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	updated := make([]domain.Track, 0, len(s.favorites)+1)
	for _, fav := range s.favorites {
		if fav.ID == track.ID {
			removed = true
			continue
		}
		updated = append(updated, fav)
	}
	if !removed {
		updated = append(updated, track)
	}

	if err := s.favoritesRepo.Save(updated); err != nil {
		s.logger.Error("failed to persist favorites", slog.Any("error", err))
		return err
	}

	s.favorites = updated
	s.logger.Debug("favorites updated",
		slog.String("track_id", track.ID),
		slog.Bool("removed", removed),
		slog.Int("count", len(updated)))

	s.bus.Publish(domain.NewFavoritesUpdatedEvent(s.favoritesCopyLocked()))

	return nil
}

// IsFavorite reports whether a track with the given id is in the favorites.
// Pure membership query, no side effects.
func (s *LibraryService) IsFavorite(trackID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, fav := range s.favorites {
		if fav.ID == trackID {
			return true
		}
	}
	return false
}

// Favorites returns a copy of the favorites in insertion order.
func (s *LibraryService) Favorites() []domain.Track {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.favoritesCopyLocked()
}

// LoadFavorites hydrates the favorites from the repository, overwriting the
// in-memory set unconditionally. Intended for one-time use at startup.
func (s *LibraryService) LoadFavorites() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites, err := s.favoritesRepo.Load()
	if err != nil {
		s.logger.Error("failed to load favorites", slog.Any("error", err))
		return err
	}

	s.favorites = favorites
	s.bus.Publish(domain.NewFavoritesUpdatedEvent(s.favoritesCopyLocked()))

	return nil
}

// CreatePlaylist allocates a new empty playlist and persists the collection.
// Empty or whitespace-only names are rejected before anything is allocated,
// so an unnamed playlist can never reach persisted state.
// Returns the new playlist's id.
func (s *LibraryService) CreatePlaylist(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", domain.ErrEmptyPlaylistName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	playlist := domain.Playlist{
		ID:        uuid.NewString(),
		Name:      name,
		Songs:     []domain.Track{},
		Artwork:   defaultPlaylistArtwork,
		CreatedAt: now,
		UpdatedAt: now,
	}

	updated := append(s.playlistsCopyLocked(), playlist)
	if err := s.playlistsRepo.Save(updated); err != nil {
		s.logger.Error("failed to persist playlists", slog.Any("error", err))
		return "", err
	}

	s.playlists = updated
	s.logger.Info("playlist created",
		slog.String("playlist_id", playlist.ID),
		slog.String("name", name))

	s.bus.Publish(domain.NewPlaylistCreatedEvent(playlist))
	s.bus.Publish(domain.NewNoticeEvent("Created \"" + name + "\""))

	return playlist.ID, nil
}

// DeletePlaylist removes the playlist with the given id and persists the
// collection. Unknown ids are a no-op.
func (s *LibraryService) DeletePlaylist(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]domain.Playlist, 0, len(s.playlists))
	for _, playlist := range s.playlists {
		if playlist.ID == id {
			continue
		}
		updated = append(updated, playlist)
	}

	if err := s.playlistsRepo.Save(updated); err != nil {
		s.logger.Error("failed to persist playlists", slog.Any("error", err))
		return err
	}

	s.playlists = updated
	s.bus.Publish(domain.NewPlaylistDeletedEvent(id))
	s.bus.Publish(domain.NewNoticeEvent("Playlist deleted"))

	return nil
}

// AddTrackToPlaylist appends the track to the playlist and persists the
// collection. Unknown playlist ids fail with ErrPlaylistNotFound. A track
// already present is not an error: the call is a no-op that emits a notice.
// The first track added also becomes the playlist artwork.
func (s *LibraryService) AddTrackToPlaylist(playlistID string, track domain.Track) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i := range s.playlists {
		if s.playlists[i].ID == playlistID {
			index = i
			break
		}
	}
	if index == -1 {
		return domain.ErrPlaylistNotFound
	}

	if s.playlists[index].Contains(track.ID) {
		s.bus.Publish(domain.NewNoticeEvent("Already in playlist"))
		return nil
	}

	updated := s.playlistsCopyLocked()
	playlist := &updated[index]
	playlist.Songs = append(playlist.Songs, track)
	playlist.UpdatedAt = time.Now()
	if len(playlist.Songs) == 1 && track.Artwork != "" {
		playlist.Artwork = track.Artwork
	}

	if err := s.playlistsRepo.Save(updated); err != nil {
		s.logger.Error("failed to persist playlists", slog.Any("error", err))
		return err
	}

	s.playlists = updated
	s.logger.Debug("track added to playlist",
		slog.String("playlist_id", playlistID),
		slog.String("track_id", track.ID))

	s.bus.Publish(domain.NewPlaylistUpdatedEvent(*playlist))
	s.bus.Publish(domain.NewNoticeEvent("Added to " + playlist.Name))

	return nil
}

// Playlist returns a copy of the playlist with the given id.
func (s *LibraryService) Playlist(id string) (domain.Playlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, playlist := range s.playlists {
		if playlist.ID == id {
			return copyPlaylist(playlist), nil
		}
	}
	return domain.Playlist{}, domain.ErrPlaylistNotFound
}

// Playlists returns a copy of all playlists in creation order.
func (s *LibraryService) Playlists() []domain.Playlist {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.playlistsCopyLocked()
}

// LoadPlaylists hydrates the playlists from the repository, overwriting the
// in-memory collection unconditionally. Intended for one-time use at startup.
func (s *LibraryService) LoadPlaylists() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	playlists, err := s.playlistsRepo.Load()
	if err != nil {
		s.logger.Error("failed to load playlists", slog.Any("error", err))
		return err
	}

	s.playlists = playlists
	s.logger.Debug("playlists loaded", slog.Int("count", len(playlists)))

	return nil
}

// favoritesCopyLocked returns a copy of the favorites. Caller must hold the lock.
func (s *LibraryService) favoritesCopyLocked() []domain.Track {
	favorites := make([]domain.Track, len(s.favorites))
	copy(favorites, s.favorites)
	return favorites
}

// playlistsCopyLocked returns a deep copy of the playlists. Caller must hold the lock.
func (s *LibraryService) playlistsCopyLocked() []domain.Playlist {
	playlists := make([]domain.Playlist, len(s.playlists))
	for i, playlist := range s.playlists {
		playlists[i] = copyPlaylist(playlist)
	}
	return playlists
}

// copyPlaylist copies a playlist including its song slice.
func copyPlaylist(playlist domain.Playlist) domain.Playlist {
	songs := make([]domain.Track, len(playlist.Songs))
	copy(songs, playlist.Songs)
	playlist.Songs = songs
	return playlist
}

// Verify that LibraryService implements the expected interface patterns
var _ interface {
	ToggleFavorite(domain.Track) error
	IsFavorite(string) bool
	Favorites() []domain.Track
	LoadFavorites() error
	CreatePlaylist(string) (string, error)
	DeletePlaylist(string) error
	AddTrackToPlaylist(string, domain.Track) error
	Playlist(string) (domain.Playlist, error)
	Playlists() []domain.Playlist
	LoadPlaylists() error
} = (*LibraryService)(nil)
