// Package domain contains core business models and logic with no external dependencies.
// This package defines the fundamental entities of the mussick playback core.
package domain

import (
	"time"
)

// Track represents a single playable catalog item.
// Tracks are value types: operations replace them wholesale, never mutate in place.
type Track struct {
	// ID is the catalog-wide unique identifier
	ID string `json:"id"`

	// Title is the song title
	Title string `json:"title"`

	// Artist is the display name of the performing artist(s)
	Artist string `json:"artist"`

	// Artwork is the cover image URL (a placeholder when the catalog has none)
	Artwork string `json:"artwork"`

	// URL is the playable media URL
	URL string `json:"url"`

	// Duration is the track length in seconds (0 when unknown)
	Duration int `json:"duration"`
}

// Album is a container reference for a set of tracks.
// Member tracks are fetched lazily via the catalog and are not embedded.
type Album struct {
	// ID is the catalog-wide unique identifier
	ID string `json:"id"`

	// Title is the album title
	Title string `json:"title"`

	// Artist is the display name of the album artist(s)
	Artist string `json:"artist"`

	// Year is the release year ("Unknown" when the catalog has none)
	Year string `json:"year"`

	// Artwork is the cover image URL
	Artwork string `json:"artwork"`

	// SongCount is the number of tracks on the album
	SongCount int `json:"songsCount"`
}

// Artist is a catalog artist entry.
// Counts are often zero because the upstream search endpoint omits them.
type Artist struct {
	// ID is the catalog-wide unique identifier
	ID string `json:"id"`

	// Name is the artist display name
	Name string `json:"name"`

	// Artwork is the artist image URL
	Artwork string `json:"artwork"`

	// AlbumCount is the number of albums (0 when unknown)
	AlbumCount int `json:"albumsCount"`

	// SongCount is the number of songs (0 when unknown)
	SongCount int `json:"songsCount"`
}

// ArtistDetails is the merged result of an artist-by-id fetch.
type ArtistDetails struct {
	// ID is the catalog-wide unique identifier
	ID string

	// Name is the artist display name
	Name string

	// Bio holds free-form biography paragraphs (may be empty)
	Bio []string

	// FanCount is the upstream follower count (0 when unknown)
	FanCount int64

	// TopSongs is the artist's song listing, supplemented by search when sparse
	TopSongs []Track

	// Albums is the artist's album listing, supplemented by search when sparse
	Albums []Album
}

// Playlist is a user-named, ordered collection of tracks.
// Member tracks are unique by id; tracks can be added but not removed.
type Playlist struct {
	// ID is a unique identifier (UUID)
	ID string `json:"id"`

	// Name is the user-supplied playlist name (non-empty)
	Name string `json:"name"`

	// Songs is the ordered list of tracks
	Songs []Track `json:"songs"`

	// Artwork is derived from the first added track, otherwise a placeholder
	Artwork string `json:"artwork"`

	// CreatedAt is when the playlist was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the playlist was last modified
	UpdatedAt time.Time `json:"updatedAt"`
}

// Contains reports whether the playlist already holds a track with the given id.
func (p *Playlist) Contains(trackID string) bool {
	for _, song := range p.Songs {
		if song.ID == trackID {
			return true
		}
	}
	return false
}

// RepeatMode selects how the engine continues when a track or the queue ends.
type RepeatMode int

const (
	// RepeatOff plays the queue once and stops
	RepeatOff RepeatMode = iota

	// RepeatTrack repeats the active track
	RepeatTrack

	// RepeatQueue restarts the queue from the beginning
	RepeatQueue
)

// String returns a human-readable representation of the repeat mode.
func (m RepeatMode) String() string {
	switch m {
	case RepeatOff:
		return "off"
	case RepeatTrack:
		return "track"
	case RepeatQueue:
		return "queue"
	default:
		return "unknown"
	}
}

// Next returns the mode that follows in the off -> track -> queue -> off cycle.
func (m RepeatMode) Next() RepeatMode {
	switch m {
	case RepeatOff:
		return RepeatTrack
	case RepeatTrack:
		return RepeatQueue
	default:
		return RepeatOff
	}
}

// PlayerState is a point-in-time snapshot of the player service.
type PlayerState struct {
	// ActiveTrack is the track loaded for playback (nil if none)
	ActiveTrack *Track

	// Playing mirrors the engine's transport state
	Playing bool

	// PlayerVisible indicates whether consumers should show the player surface
	PlayerVisible bool

	// Queue is the mirror of the engine's queue
	Queue []Track

	// RepeatMode is the current repeat mode
	RepeatMode RepeatMode
}
