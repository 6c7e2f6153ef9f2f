// Package ports defines interfaces for dependency inversion.
// These interfaces allow the core business logic to remain independent of external frameworks.
package ports

import (
	"time"

	"github.com/mokshhhhh/mussick/internal/domain"
)

// MediaEngine is the interface for the platform's queue-based playback engine.
// It abstracts the native media subsystem (libmpv in production, an in-memory
// engine in tests) behind transport and queue commands.
//
// The engine owns the authoritative queue and active index. Services treat it
// as the single source of truth and re-read state after mutating commands.
//
// Implementations must be thread-safe as they may be called from multiple goroutines.
type MediaEngine interface {
	// Lifecycle methods

	// Start initializes the engine. It must be called before any other command.
	//
	// Returns an error if initialization fails.
	Start() error

	// Shutdown stops playback and releases all engine resources.
	//
	// Returns an error if shutdown fails.
	Shutdown() error

	// Queue commands

	// Reset stops playback and clears the engine queue.
	// Safe to call when the queue is already empty.
	Reset() error

	// Add appends tracks to the end of the engine queue.
	Add(tracks ...domain.Track) error

	// AddAt inserts a track at the given queue index.
	// Index len(queue) appends; anything beyond that is an error.
	AddAt(track domain.Track, index int) error

	// Move relocates the queue entry at from to position to.
	Move(from, to int) error

	// Transport commands

	// Play starts or resumes playback of the active queue entry.
	Play() error

	// Pause pauses playback, preserving the position.
	Pause() error

	// Seek sets the playback position within the active track.
	Seek(position time.Duration) error

	// SkipToNext advances to the next queue entry.
	SkipToNext() error

	// SkipToPrevious moves back to the previous queue entry.
	SkipToPrevious() error

	// SkipTo jumps to the queue entry at the given index.
	SkipTo(index int) error

	// SetRepeatMode forwards the repeat mode to the engine.
	SetRepeatMode(mode domain.RepeatMode) error

	// State queries

	// ActiveIndex returns the index of the currently loaded queue entry.
	// ok is false when nothing is loaded.
	ActiveIndex() (index int, ok bool, err error)

	// Queue returns a snapshot of the engine's queue.
	Queue() ([]domain.Track, error)

	// Position returns the playback position within the active track.
	Position() (time.Duration, error)

	// Duration returns the duration of the active track.
	Duration() (time.Duration, error)
}
