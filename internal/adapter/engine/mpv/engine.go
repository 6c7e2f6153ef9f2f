// Package mpv implements the MediaEngine interface over libmpv.
//
// mpv's internal playlist is the authoritative queue; commands are issued via
// the libmpv client API and state is read back through properties. Because an
// mpv playlist entry carries only its URL, the adapter keeps the track values
// alongside the playlist, mirrored command for command.
package mpv

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/wildeyedskies/go-mpv/mpv"

	"github.com/mokshhhhh/mussick/internal/domain"
	"github.com/mokshhhhh/mussick/internal/ports"
)

// Engine drives a libmpv instance as a queue-based media engine.
//
// Thread-safety: all operations are protected by a mutex; libmpv itself is
// thread-safe for command and property access.
type Engine struct {
	logger *slog.Logger

	mu       sync.Mutex
	instance *mpv.Mpv
	tracks   []domain.Track
}

// NewEngine creates a new mpv engine. Call Start before issuing commands.
func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{
		logger: logger,
	}
}

// Start creates and initializes the libmpv instance in audio-only mode.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.instance != nil {
		return nil
	}

	instance := mpv.Create()
	_ = instance.SetOptionString("audio-display", "no")
	_ = instance.SetOptionString("video", "no")
	_ = instance.SetOptionString("idle", "yes")

	if err := instance.Initialize(); err != nil {
		instance.TerminateDestroy()
		return domain.NewEngineError("start", "mpv initialization failed", err)
	}

	e.instance = instance
	e.logger.Debug("mpv engine started")

	return nil
}

// Shutdown terminates the libmpv instance.
func (e *Engine) Shutdown() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.instance == nil {
		return nil
	}

	e.instance.TerminateDestroy()
	e.instance = nil
	e.tracks = nil

	e.logger.Debug("mpv engine stopped")

	return nil
}

// Reset stops playback and clears the playlist.
func (e *Engine) Reset() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.instance == nil {
		return domain.ErrEngineNotRunning
	}

	// "stop" also clears mpv's internal playlist
	if err := e.instance.Command([]string{"stop"}); err != nil {
		return domain.NewEngineError("reset", "stop command failed", err)
	}

	e.tracks = nil
	return nil
}

// Add appends tracks to the playlist without starting playback.
func (e *Engine) Add(tracks ...domain.Track) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.instance == nil {
		return domain.ErrEngineNotRunning
	}

	for i, track := range tracks {
		if err := e.instance.Command([]string{"loadfile", track.URL, "append"}); err != nil {
			return domain.NewEngineError("add",
				fmt.Sprintf("loadfile failed for entry %d", i), err)
		}
		e.tracks = append(e.tracks, track)
	}

	return nil
}

// AddAt inserts a track at the given playlist index.
func (e *Engine) AddAt(track domain.Track, index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.instance == nil {
		return domain.ErrEngineNotRunning
	}
	if index < 0 || index > len(e.tracks) {
		return domain.ErrInvalidIndex
	}

	if err := e.instance.Command([]string{"loadfile", track.URL, "append"}); err != nil {
		return domain.NewEngineError("add", "loadfile failed", err)
	}

	last := len(e.tracks)
	if index != last {
		if err := e.instance.Command([]string{
			"playlist-move", strconv.Itoa(last), strconv.Itoa(index),
		}); err != nil {
			return domain.NewEngineError("add", "playlist-move failed", err)
		}
	}

	e.tracks = append(e.tracks[:index], append([]domain.Track{track}, e.tracks[index:]...)...)
	return nil
}

// Move relocates a playlist entry.
func (e *Engine) Move(from, to int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.instance == nil {
		return domain.ErrEngineNotRunning
	}
	if from < 0 || from >= len(e.tracks) || to < 0 || to >= len(e.tracks) {
		return domain.ErrInvalidIndex
	}
	if from == to {
		return nil
	}

	// playlist-move inserts before the target entry, so moving forward
	// needs the slot after the destination
	target := to
	if from < to {
		target = to + 1
	}
	if err := e.instance.Command([]string{
		"playlist-move", strconv.Itoa(from), strconv.Itoa(target),
	}); err != nil {
		return domain.NewEngineError("move", "playlist-move failed", err)
	}

	track := e.tracks[from]
	e.tracks = append(e.tracks[:from], e.tracks[from+1:]...)
	e.tracks = append(e.tracks[:to], append([]domain.Track{track}, e.tracks[to:]...)...)

	return nil
}

// Play starts or resumes playback of the current playlist entry.
func (e *Engine) Play() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.instance == nil {
		return domain.ErrEngineNotRunning
	}
	if len(e.tracks) == 0 {
		return domain.ErrNoActiveTrack
	}

	// When idle, playback must be (re)started from the playlist entry;
	// unpausing alone does nothing.
	idle, err := e.instance.GetProperty("idle-active", mpv.FORMAT_FLAG)
	if err == nil && idle.(bool) {
		index := e.activeIndexLocked()
		if index < 0 {
			index = 0
		}
		if err := e.instance.Command([]string{
			"playlist-play-index", strconv.Itoa(index),
		}); err != nil {
			return domain.NewEngineError("play", "playlist-play-index failed", err)
		}
	}

	if err := e.instance.SetProperty("pause", mpv.FORMAT_FLAG, false); err != nil {
		return domain.NewEngineError("play", "unpause failed", err)
	}

	return nil
}

// Pause pauses playback, preserving the position.
func (e *Engine) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.instance == nil {
		return domain.ErrEngineNotRunning
	}

	if err := e.instance.SetProperty("pause", mpv.FORMAT_FLAG, true); err != nil {
		return domain.NewEngineError("pause", "pause failed", err)
	}

	return nil
}

// Seek sets the playback position within the active track.
func (e *Engine) Seek(position time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.instance == nil {
		return domain.ErrEngineNotRunning
	}

	seconds := strconv.FormatFloat(position.Seconds(), 'f', 3, 64)
	if err := e.instance.Command([]string{"seek", seconds, "absolute"}); err != nil {
		return domain.NewEngineError("seek", "seek failed", err)
	}

	return nil
}

// SkipToNext advances to the next playlist entry.
func (e *Engine) SkipToNext() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.instance == nil {
		return domain.ErrEngineNotRunning
	}

	if err := e.instance.Command([]string{"playlist-next"}); err != nil {
		return domain.NewEngineError("skip", "playlist-next failed", err)
	}

	return nil
}

// SkipToPrevious moves back to the previous playlist entry.
func (e *Engine) SkipToPrevious() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.instance == nil {
		return domain.ErrEngineNotRunning
	}

	if err := e.instance.Command([]string{"playlist-prev"}); err != nil {
		return domain.NewEngineError("skip", "playlist-prev failed", err)
	}

	return nil
}

// SkipTo jumps to the playlist entry at the given index.
func (e *Engine) SkipTo(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.instance == nil {
		return domain.ErrEngineNotRunning
	}
	if index < 0 || index >= len(e.tracks) {
		return domain.ErrInvalidIndex
	}

	if err := e.instance.Command([]string{
		"playlist-play-index", strconv.Itoa(index),
	}); err != nil {
		return domain.NewEngineError("skip", "playlist-play-index failed", err)
	}

	return nil
}

// SetRepeatMode maps the repeat mode onto mpv's loop-file / loop-playlist options.
func (e *Engine) SetRepeatMode(mode domain.RepeatMode) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.instance == nil {
		return domain.ErrEngineNotRunning
	}

	loopFile, loopPlaylist := "no", "no"
	switch mode {
	case domain.RepeatTrack:
		loopFile = "inf"
	case domain.RepeatQueue:
		loopPlaylist = "inf"
	}

	if err := e.instance.SetPropertyString("loop-file", loopFile); err != nil {
		return domain.NewEngineError("repeat", "loop-file failed", err)
	}
	if err := e.instance.SetPropertyString("loop-playlist", loopPlaylist); err != nil {
		return domain.NewEngineError("repeat", "loop-playlist failed", err)
	}

	return nil
}

// ActiveIndex returns the playlist position of the current entry.
func (e *Engine) ActiveIndex() (int, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.instance == nil {
		return -1, false, domain.ErrEngineNotRunning
	}

	index := e.activeIndexLocked()
	if index < 0 || index >= len(e.tracks) {
		return -1, false, nil
	}
	return index, true, nil
}

// activeIndexLocked reads playlist-pos; -1 when nothing is loaded.
// Caller must hold the lock.
func (e *Engine) activeIndexLocked() int {
	pos, err := e.instance.GetProperty("playlist-pos", mpv.FORMAT_INT64)
	if err != nil {
		return -1
	}
	return int(pos.(int64))
}

// Queue returns a snapshot of the tracks mirroring the mpv playlist.
func (e *Engine) Queue() ([]domain.Track, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.instance == nil {
		return nil, domain.ErrEngineNotRunning
	}

	queue := make([]domain.Track, len(e.tracks))
	copy(queue, e.tracks)
	return queue, nil
}

// Position returns the playback position within the active track.
func (e *Engine) Position() (time.Duration, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.instance == nil {
		return 0, domain.ErrEngineNotRunning
	}

	pos, err := e.instance.GetProperty("time-pos", mpv.FORMAT_DOUBLE)
	if err != nil {
		return 0, domain.NewEngineError("position", "time-pos unavailable", err)
	}
	return time.Duration(pos.(float64) * float64(time.Second)), nil
}

// Duration returns the duration of the active track.
func (e *Engine) Duration() (time.Duration, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.instance == nil {
		return 0, domain.ErrEngineNotRunning
	}

	duration, err := e.instance.GetProperty("duration", mpv.FORMAT_DOUBLE)
	if err != nil {
		return 0, domain.NewEngineError("duration", "duration unavailable", err)
	}
	return time.Duration(duration.(float64) * float64(time.Second)), nil
}

// Verify that Engine implements the MediaEngine interface
var _ ports.MediaEngine = (*Engine)(nil)
