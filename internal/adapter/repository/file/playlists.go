package file

import (
	"log/slog"

	"github.com/mokshhhhh/mussick/internal/domain"
	"github.com/mokshhhhh/mussick/internal/ports"
)

// playlistsKey is the blob store key holding the playlists array.
const playlistsKey = "playlists"

// PlaylistsRepository implements ports.PlaylistsRepository over a blob store.
type PlaylistsRepository struct {
	store  *Store
	logger *slog.Logger
}

// NewPlaylistsRepository creates a new playlists repository.
func NewPlaylistsRepository(store *Store, logger *slog.Logger) *PlaylistsRepository {
	return &PlaylistsRepository{
		store:  store,
		logger: logger,
	}
}

// Save overwrites the persisted playlists.
func (r *PlaylistsRepository) Save(playlists []domain.Playlist) error {
	if playlists == nil {
		playlists = []domain.Playlist{}
	}
	if err := r.store.Write(playlistsKey, playlists); err != nil {
		return domain.NewRepositoryError("save", "playlists", "write failed", err)
	}
	return nil
}

// Load retrieves the persisted playlists.
// Returns an empty slice when nothing was saved yet.
func (r *PlaylistsRepository) Load() ([]domain.Playlist, error) {
	playlists := []domain.Playlist{}
	ok, err := r.store.Read(playlistsKey, &playlists)
	if err != nil {
		return nil, domain.NewRepositoryError("load", "playlists", "read failed", err)
	}
	if !ok {
		r.logger.Debug("no persisted playlists")
	}
	return playlists, nil
}

// Verify interface implementation
var _ ports.PlaylistsRepository = (*PlaylistsRepository)(nil)
