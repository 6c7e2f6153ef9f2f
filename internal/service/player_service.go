// Package service provides business logic for the mussick playback core.
package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/mokshhhhh/mussick/internal/domain"
	"github.com/mokshhhhh/mussick/internal/ports"
)

// PlayerService is the single authority for what is playing and what is queued.
// It is the only component permitted to issue playback commands to the media
// engine, and it mirrors the engine's queue and active track for cheap reads.
//
// The engine owns the authoritative queue: after every mutating command the
// mirror is refreshed from the engine rather than maintained by hand, so the
// two cannot drift apart. All mutating operations serialize through one mutex.
type PlayerService struct {
	// Dependencies (injected)
	logger *slog.Logger
	engine ports.MediaEngine
	bus    ports.EventBus

	// State (mirror of the engine, plus presentation flags)
	activeTrack   *domain.Track
	playing       bool
	playerVisible bool
	queue         []domain.Track
	repeatMode    domain.RepeatMode

	// Concurrency control
	mu sync.Mutex
}

// NewPlayerService creates a new player service.
func NewPlayerService(
	logger *slog.Logger,
	engine ports.MediaEngine,
	bus ports.EventBus,
) *PlayerService {
	return &PlayerService{
		logger: logger,
		engine: engine,
		bus:    bus,
	}
}

// PlayTrack replaces the entire engine queue with the given track and starts
// playback. On success the track is active, playing, and the player surface
// becomes visible. On engine failure the state is reset to "nothing playing":
// the failure is logged and returned, not silently swallowed.
func (s *PlayerService) PlayTrack(track domain.Track) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.playTrackLocked(track)
}

// playTrackLocked implements PlayTrack. Caller must hold the lock.
func (s *PlayerService) playTrackLocked(track domain.Track) error {
	s.logger.Debug("playing track",
		slog.String("track_id", track.ID),
		slog.String("title", track.Title))

	err := s.engine.Reset()
	if err == nil {
		err = s.engine.Add(track)
	}
	if err == nil {
		err = s.engine.Play()
	}

	if err != nil {
		s.logger.Error("failed to play track",
			slog.String("track_id", track.ID),
			slog.Any("error", err))

		// Explicit recovery policy: back to "nothing playing"
		s.activeTrack = nil
		s.playing = false
		s.refreshQueueLocked()

		s.bus.Publish(domain.NewTrackErrorEvent(track, err))
		s.bus.Publish(domain.NewTrackChangedEvent(nil))
		s.bus.Publish(domain.NewPlayingStateEvent(false))
		return err
	}

	active := track
	s.activeTrack = &active
	s.playing = true
	s.playerVisible = true
	s.queue = []domain.Track{track}

	s.bus.Publish(domain.NewTrackChangedEvent(s.activeTrack))
	s.bus.Publish(domain.NewPlayingStateEvent(true))
	s.bus.Publish(domain.NewPlayerVisibleEvent(true))
	s.bus.Publish(domain.NewQueueUpdatedEvent(s.queueCopyLocked()))

	return nil
}

// TogglePlay inverts play/pause by issuing the complementary transport
// command. On engine failure the state is left unchanged and the error is
// returned.
func (s *PlayerService) TogglePlay() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if s.playing {
		err = s.engine.Pause()
	} else {
		err = s.engine.Play()
	}
	if err != nil {
		s.logger.Warn("failed to toggle playback", slog.Any("error", err))
		return err
	}

	s.playing = !s.playing
	s.bus.Publish(domain.NewPlayingStateEvent(s.playing))

	return nil
}

// SetPlayerVisible shows or hides the player surface.
func (s *PlayerService) SetPlayerVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.playerVisible == visible {
		return
	}

	s.playerVisible = visible
	s.bus.Publish(domain.NewPlayerVisibleEvent(visible))
}

// ResetPlayer clears the engine queue and all transient playback fields.
// Idempotent. Local state is cleared even when the engine command fails.
func (s *PlayerService) ResetPlayer() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.engine.Reset()
	if err != nil {
		s.logger.Warn("engine reset failed", slog.Any("error", err))
	}

	s.activeTrack = nil
	s.playing = false
	s.playerVisible = false
	s.queue = nil

	s.bus.Publish(domain.NewTrackChangedEvent(nil))
	s.bus.Publish(domain.NewPlayingStateEvent(false))
	s.bus.Publish(domain.NewPlayerVisibleEvent(false))
	s.bus.Publish(domain.NewQueueUpdatedEvent(nil))

	return err
}

// AddToQueue appends the track to the engine queue. Duplicates are permitted.
func (s *PlayerService) AddToQueue(track domain.Track) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.engine.Add(track); err != nil {
		s.logger.Warn("failed to add to queue",
			slog.String("track_id", track.ID),
			slog.Any("error", err))
		return err
	}

	s.refreshQueueLocked()
	s.bus.Publish(domain.NewQueueUpdatedEvent(s.queueCopyLocked()))
	s.bus.Publish(domain.NewNoticeEvent("Added to queue"))

	return nil
}

// PlayNext inserts the track immediately after the engine's active entry.
// When nothing is active it degrades to PlayTrack.
func (s *PlayerService) PlayNext(track domain.Track) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, ok, err := s.engine.ActiveIndex()
	if err != nil {
		s.logger.Warn("failed to query active index", slog.Any("error", err))
		return err
	}
	if !ok {
		return s.playTrackLocked(track)
	}

	if err := s.engine.AddAt(track, index+1); err != nil {
		s.logger.Warn("failed to insert track",
			slog.String("track_id", track.ID),
			slog.Any("error", err))
		return err
	}

	s.refreshQueueLocked()
	s.bus.Publish(domain.NewQueueUpdatedEvent(s.queueCopyLocked()))
	s.bus.Publish(domain.NewNoticeEvent("Playing next"))

	return nil
}

// SetQueue replaces the engine queue with the given tracks. Playback stops;
// the first track becomes the active entry without starting to play. Callers
// that want playback follow up with TogglePlay or SkipTo.
func (s *PlayerService) SetQueue(tracks []domain.Track) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.engine.Reset(); err != nil {
		s.logger.Warn("engine reset failed", slog.Any("error", err))
		return err
	}
	if len(tracks) > 0 {
		if err := s.engine.Add(tracks...); err != nil {
			s.logger.Warn("failed to load queue", slog.Any("error", err))
			return err
		}
	}

	s.playing = false
	s.refreshQueueLocked()
	s.refreshActiveTrackLocked()

	s.bus.Publish(domain.NewQueueUpdatedEvent(s.queueCopyLocked()))
	s.bus.Publish(domain.NewTrackChangedEvent(s.activeTrack))
	s.bus.Publish(domain.NewPlayingStateEvent(false))

	return nil
}

// ClearQueue removes all tracks from the engine queue and stops playback.
func (s *PlayerService) ClearQueue() error {
	return s.SetQueue(nil)
}

// ReorderQueue moves a queue entry from one index to another, in the engine
// and in the mirror.
func (s *PlayerService) ReorderQueue(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.engine.Move(from, to); err != nil {
		s.logger.Warn("failed to reorder queue",
			slog.Int("from", from),
			slog.Int("to", to),
			slog.Any("error", err))
		return err
	}

	s.refreshQueueLocked()
	s.refreshActiveTrackLocked()
	s.bus.Publish(domain.NewQueueUpdatedEvent(s.queueCopyLocked()))

	return nil
}

// ToggleRepeat cycles the repeat mode off -> track -> queue -> off.
func (s *PlayerService) ToggleRepeat() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setRepeatModeLocked(s.repeatMode.Next())
}

// SetRepeatMode sets the repeat mode and forwards it to the engine.
// On engine failure the mode is left unchanged.
func (s *PlayerService) SetRepeatMode(mode domain.RepeatMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setRepeatModeLocked(mode)
}

// setRepeatModeLocked implements SetRepeatMode. Caller must hold the lock.
func (s *PlayerService) setRepeatModeLocked(mode domain.RepeatMode) error {
	if err := s.engine.SetRepeatMode(mode); err != nil {
		s.logger.Warn("failed to set repeat mode",
			slog.String("mode", mode.String()),
			slog.Any("error", err))
		return err
	}

	s.repeatMode = mode
	s.bus.Publish(domain.NewRepeatChangedEvent(mode))

	return nil
}

// SkipToNext advances to the next entry of the engine's queue.
// A no-op when nothing is active or the active entry is already the last:
// no skip command is issued and state is unchanged.
func (s *PlayerService) SkipToNext() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue, err := s.engine.Queue()
	if err != nil {
		return err
	}
	index, ok, err := s.engine.ActiveIndex()
	if err != nil {
		return err
	}
	if !ok || index >= len(queue)-1 {
		return nil
	}

	if err := s.engine.SkipToNext(); err != nil {
		s.logger.Warn("skip failed", slog.Any("error", err))
		return err
	}

	s.refreshQueueLocked()
	s.refreshActiveTrackLocked()
	s.bus.Publish(domain.NewTrackChangedEvent(s.activeTrack))

	return nil
}

// SkipToPrevious moves back to the previous entry of the engine's queue.
// A no-op when nothing is active or the active entry is already the first.
func (s *PlayerService) SkipToPrevious() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, ok, err := s.engine.ActiveIndex()
	if err != nil {
		return err
	}
	if !ok || index <= 0 {
		return nil
	}

	if err := s.engine.SkipToPrevious(); err != nil {
		s.logger.Warn("skip failed", slog.Any("error", err))
		return err
	}

	s.refreshQueueLocked()
	s.refreshActiveTrackLocked()
	s.bus.Publish(domain.NewTrackChangedEvent(s.activeTrack))

	return nil
}

// Seek sets the playback position within the active track.
func (s *PlayerService) Seek(position time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeTrack == nil {
		return domain.ErrNoActiveTrack
	}

	return s.engine.Seek(position)
}

// State returns a snapshot of the player state.
func (s *PlayerService) State() domain.PlayerState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.PlayerState{
		ActiveTrack:   s.activeTrack,
		Playing:       s.playing,
		PlayerVisible: s.playerVisible,
		Queue:         s.queueCopyLocked(),
		RepeatMode:    s.repeatMode,
	}
}

// Shutdown stops playback and releases the engine. The service must not be
// used afterwards.
func (s *PlayerService) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeTrack = nil
	s.playing = false
	s.playerVisible = false
	s.queue = nil

	return s.engine.Shutdown()
}

// refreshQueueLocked re-reads the queue mirror from the engine.
// Caller must hold the lock.
func (s *PlayerService) refreshQueueLocked() {
	queue, err := s.engine.Queue()
	if err != nil {
		s.logger.Warn("failed to read engine queue", slog.Any("error", err))
		return
	}
	s.queue = queue
}

// refreshActiveTrackLocked re-reads the active track from the engine.
// Caller must hold the lock.
func (s *PlayerService) refreshActiveTrackLocked() {
	index, ok, err := s.engine.ActiveIndex()
	if err != nil {
		s.logger.Warn("failed to read active index", slog.Any("error", err))
		return
	}
	if !ok || index < 0 || index >= len(s.queue) {
		s.activeTrack = nil
		return
	}

	active := s.queue[index]
	s.activeTrack = &active
}

// queueCopyLocked returns a copy of the queue mirror for publication.
// Caller must hold the lock.
func (s *PlayerService) queueCopyLocked() []domain.Track {
	if s.queue == nil {
		return nil
	}
	queue := make([]domain.Track, len(s.queue))
	copy(queue, s.queue)
	return queue
}

// Verify that PlayerService implements the expected interface patterns
var _ interface {
	PlayTrack(domain.Track) error
	TogglePlay() error
	SetPlayerVisible(bool)
	ResetPlayer() error
	AddToQueue(domain.Track) error
	PlayNext(domain.Track) error
	SetQueue([]domain.Track) error
	ClearQueue() error
	ReorderQueue(int, int) error
	ToggleRepeat() error
	SetRepeatMode(domain.RepeatMode) error
	SkipToNext() error
	SkipToPrevious() error
	Seek(time.Duration) error
	State() domain.PlayerState
	Shutdown() error
} = (*PlayerService)(nil)
