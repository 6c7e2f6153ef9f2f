// Package domain defines events for the event-driven architecture.
// Events let UI consumers re-render from service state without callbacks.
package domain

import (
	"time"
)

// Event is the base interface for all events in the system.
// All events must implement this interface to be published via the event bus.
type Event interface {
	// Type returns the event type identifier
	Type() EventType

	// Timestamp returns when the event occurred
	Timestamp() time.Time
}

// EventType is a string identifier for different event types.
type EventType string

// Event type constants define all possible events in the system.
const (
	// Playback events
	EventTrackChanged  EventType = "track.changed"
	EventPlayingState  EventType = "playback.state"
	EventPlayerVisible EventType = "player.visible"
	EventTrackError    EventType = "track.error"

	// Queue events
	EventQueueUpdated  EventType = "queue.updated"
	EventRepeatChanged EventType = "repeat.changed"

	// Library events
	EventFavoritesUpdated EventType = "favorites.updated"
	EventPlaylistCreated  EventType = "playlist.created"
	EventPlaylistDeleted  EventType = "playlist.deleted"
	EventPlaylistUpdated  EventType = "playlist.updated"

	// EventNotice carries transient user-visible messages ("Added to queue", ...)
	EventNotice EventType = "notice"
)

// EventHandler is a function that handles events.
type EventHandler func(event Event)

// SubscriptionID uniquely identifies an event subscription.
type SubscriptionID string

// baseEvent provides common event functionality.
// All concrete events should embed this struct.
type baseEvent struct {
	timestamp time.Time
}

// Timestamp returns when the event occurred.
func (e baseEvent) Timestamp() time.Time {
	return e.timestamp
}

// newBaseEvent creates a new base event with the current timestamp.
func newBaseEvent() baseEvent {
	return baseEvent{timestamp: time.Now()}
}

// TrackChangedEvent is published when the active track changes.
// Track is nil when playback has been reset to nothing.
type TrackChangedEvent struct {
	baseEvent
	Track *Track
}

// Type returns the event type.
func (e TrackChangedEvent) Type() EventType {
	return EventTrackChanged
}

// NewTrackChangedEvent creates a new TrackChangedEvent.
func NewTrackChangedEvent(track *Track) TrackChangedEvent {
	return TrackChangedEvent{
		baseEvent: newBaseEvent(),
		Track:     track,
	}
}

// PlayingStateEvent is published when the transport flips between play and pause.
type PlayingStateEvent struct {
	baseEvent
	Playing bool
}

// Type returns the event type.
func (e PlayingStateEvent) Type() EventType {
	return EventPlayingState
}

// NewPlayingStateEvent creates a new PlayingStateEvent.
func NewPlayingStateEvent(playing bool) PlayingStateEvent {
	return PlayingStateEvent{
		baseEvent: newBaseEvent(),
		Playing:   playing,
	}
}

// PlayerVisibleEvent is published when the player surface should show or hide.
type PlayerVisibleEvent struct {
	baseEvent
	Visible bool
}

// Type returns the event type.
func (e PlayerVisibleEvent) Type() EventType {
	return EventPlayerVisible
}

// NewPlayerVisibleEvent creates a new PlayerVisibleEvent.
func NewPlayerVisibleEvent(visible bool) PlayerVisibleEvent {
	return PlayerVisibleEvent{
		baseEvent: newBaseEvent(),
		Visible:   visible,
	}
}

// TrackErrorEvent is published when an engine command fails for a track.
type TrackErrorEvent struct {
	baseEvent
	Track Track
	Error error
}

// Type returns the event type.
func (e TrackErrorEvent) Type() EventType {
	return EventTrackError
}

// NewTrackErrorEvent creates a new TrackErrorEvent.
func NewTrackErrorEvent(track Track, err error) TrackErrorEvent {
	return TrackErrorEvent{
		baseEvent: newBaseEvent(),
		Track:     track,
		Error:     err,
	}
}

// QueueUpdatedEvent is published whenever the queue mirror changes.
type QueueUpdatedEvent struct {
	baseEvent
	Queue []Track
}

// Type returns the event type.
func (e QueueUpdatedEvent) Type() EventType {
	return EventQueueUpdated
}

// NewQueueUpdatedEvent creates a new QueueUpdatedEvent.
func NewQueueUpdatedEvent(queue []Track) QueueUpdatedEvent {
	return QueueUpdatedEvent{
		baseEvent: newBaseEvent(),
		Queue:     queue,
	}
}

// RepeatChangedEvent is published when the repeat mode changes.
type RepeatChangedEvent struct {
	baseEvent
	Mode RepeatMode
}

// Type returns the event type.
func (e RepeatChangedEvent) Type() EventType {
	return EventRepeatChanged
}

// NewRepeatChangedEvent creates a new RepeatChangedEvent.
func NewRepeatChangedEvent(mode RepeatMode) RepeatChangedEvent {
	return RepeatChangedEvent{
		baseEvent: newBaseEvent(),
		Mode:      mode,
	}
}

// FavoritesUpdatedEvent is published after a favorite toggle is persisted.
type FavoritesUpdatedEvent struct {
	baseEvent
	Favorites []Track
}

// Type returns the event type.
func (e FavoritesUpdatedEvent) Type() EventType {
	return EventFavoritesUpdated
}

// NewFavoritesUpdatedEvent creates a new FavoritesUpdatedEvent.
func NewFavoritesUpdatedEvent(favorites []Track) FavoritesUpdatedEvent {
	return FavoritesUpdatedEvent{
		baseEvent: newBaseEvent(),
		Favorites: favorites,
	}
}

// PlaylistCreatedEvent is published after a playlist is created and persisted.
type PlaylistCreatedEvent struct {
	baseEvent
	Playlist Playlist
}

// Type returns the event type.
func (e PlaylistCreatedEvent) Type() EventType {
	return EventPlaylistCreated
}

// NewPlaylistCreatedEvent creates a new PlaylistCreatedEvent.
func NewPlaylistCreatedEvent(playlist Playlist) PlaylistCreatedEvent {
	return PlaylistCreatedEvent{
		baseEvent: newBaseEvent(),
		Playlist:  playlist,
	}
}

// PlaylistDeletedEvent is published after a playlist is removed.
type PlaylistDeletedEvent struct {
	baseEvent
	PlaylistID string
}

// Type returns the event type.
func (e PlaylistDeletedEvent) Type() EventType {
	return EventPlaylistDeleted
}

// NewPlaylistDeletedEvent creates a new PlaylistDeletedEvent.
func NewPlaylistDeletedEvent(id string) PlaylistDeletedEvent {
	return PlaylistDeletedEvent{
		baseEvent:  newBaseEvent(),
		PlaylistID: id,
	}
}

// PlaylistUpdatedEvent is published after a track is added to a playlist.
type PlaylistUpdatedEvent struct {
	baseEvent
	Playlist Playlist
}

// Type returns the event type.
func (e PlaylistUpdatedEvent) Type() EventType {
	return EventPlaylistUpdated
}

// NewPlaylistUpdatedEvent creates a new PlaylistUpdatedEvent.
func NewPlaylistUpdatedEvent(playlist Playlist) PlaylistUpdatedEvent {
	return PlaylistUpdatedEvent{
		baseEvent: newBaseEvent(),
		Playlist:  playlist,
	}
}

// NoticeEvent carries a short user-visible message.
// Consumers render these as toasts or status-line flashes.
type NoticeEvent struct {
	baseEvent
	Message string
}

// Type returns the event type.
func (e NoticeEvent) Type() EventType {
	return EventNotice
}

// NewNoticeEvent creates a new NoticeEvent.
func NewNoticeEvent(message string) NoticeEvent {
	return NoticeEvent{
		baseEvent: newBaseEvent(),
		Message:   message,
	}
}
