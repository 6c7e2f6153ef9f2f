package file

import (
	"log/slog"

	"github.com/mokshhhhh/mussick/internal/domain"
	"github.com/mokshhhhh/mussick/internal/ports"
)

// favoritesKey is the blob store key holding the favorites array.
const favoritesKey = "favorites"

// FavoritesRepository implements ports.FavoritesRepository over a blob store.
type FavoritesRepository struct {
	store  *Store
	logger *slog.Logger
}

// NewFavoritesRepository creates a new favorites repository.
func NewFavoritesRepository(store *Store, logger *slog.Logger) *FavoritesRepository {
	return &FavoritesRepository{
		store:  store,
		logger: logger,
	}
}

// Save overwrites the persisted favorites.
func (r *FavoritesRepository) Save(tracks []domain.Track) error {
	if tracks == nil {
		tracks = []domain.Track{}
	}
	if err := r.store.Write(favoritesKey, tracks); err != nil {
		return domain.NewRepositoryError("save", "favorites", "write failed", err)
	}
	return nil
}

// Load retrieves the persisted favorites.
// Returns an empty slice when nothing was saved yet.
func (r *FavoritesRepository) Load() ([]domain.Track, error) {
	tracks := []domain.Track{}
	ok, err := r.store.Read(favoritesKey, &tracks)
	if err != nil {
		return nil, domain.NewRepositoryError("load", "favorites", "read failed", err)
	}
	if !ok {
		r.logger.Debug("no persisted favorites")
	}
	return tracks, nil
}

// Verify interface implementation
var _ ports.FavoritesRepository = (*FavoritesRepository)(nil)
