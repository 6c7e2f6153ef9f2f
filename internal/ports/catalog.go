// Package ports defines the Catalog interface for remote catalog access.
package ports

import (
	"context"

	"github.com/mokshhhhh/mussick/internal/domain"
)

// Catalog translates free-text queries and entity ids into normalized
// Track/Album/Artist collections from a remote catalog API.
//
// All methods are fail-soft: transport and parse errors are logged by the
// implementation and surface as empty collections (nil for ArtistDetails),
// never as errors, so list consumers degrade to "no results".
type Catalog interface {
	// SearchSongs returns tracks matching the query, paginated.
	SearchSongs(ctx context.Context, query string, page, limit int) []domain.Track

	// SearchAlbums returns albums matching the query, paginated.
	SearchAlbums(ctx context.Context, query string, page, limit int) []domain.Album

	// SearchArtists returns artists matching the query, paginated.
	SearchArtists(ctx context.Context, query string, page, limit int) []domain.Artist

	// AlbumSongs returns the track listing of one album.
	// Albums without songs yield an empty slice, not an error.
	AlbumSongs(ctx context.Context, albumID string) []domain.Track

	// ArtistDetails returns an artist's merged song and album listings,
	// supplemented by name-keyed searches when the direct result is sparse.
	// Returns nil when the artist cannot be fetched.
	ArtistDetails(ctx context.Context, artistID string) *domain.ArtistDetails
}
