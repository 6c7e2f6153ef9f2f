// Package ports defines repository interfaces for data persistence abstraction.
// These interfaces enable the repository pattern and allow swapping persistence mechanisms.
package ports

import (
	"github.com/mokshhhhh/mussick/internal/domain"
)

// FavoritesRepository persists the user's favorite tracks.
// The set is written as a whole on every mutation and read once at startup.
//
// Thread-safety: Implementations must be thread-safe.
type FavoritesRepository interface {
	// Save overwrites the persisted favorites with the given list.
	//
	// Returns an error if saving fails.
	Save(tracks []domain.Track) error

	// Load retrieves the persisted favorites.
	// If nothing was saved yet, returns an empty slice (not an error).
	//
	// Returns an error if loading fails.
	Load() ([]domain.Track, error)
}

// PlaylistsRepository persists the user's playlists.
// The collection is written as a whole on every mutation and read once at startup.
//
// Thread-safety: Implementations must be thread-safe.
type PlaylistsRepository interface {
	// Save overwrites the persisted playlists with the given collection.
	//
	// Returns an error if saving fails.
	Save(playlists []domain.Playlist) error

	// Load retrieves the persisted playlists.
	// If nothing was saved yet, returns an empty slice (not an error).
	//
	// Returns an error if loading fails.
	Load() ([]domain.Playlist, error)
}
