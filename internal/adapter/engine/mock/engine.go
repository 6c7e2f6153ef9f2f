// Package mock provides an in-memory implementation of the MediaEngine interface.
// It is used for testing services without a native playback engine, and as the
// engine for headless runs.
package mock

import (
	"sync"
	"time"

	"github.com/mokshhhhh/mussick/internal/domain"
	"github.com/mokshhhhh/mussick/internal/ports"
)

// Engine simulates a queue-based media engine in memory.
// It keeps an authoritative queue and active index the way a native engine
// would, without producing audio.
//
// Thread-safety: all operations are protected by a mutex.
type Engine struct {
	mu sync.RWMutex

	running     bool
	queue       []domain.Track
	activeIndex int // -1 when nothing is loaded
	playing     bool
	position    time.Duration
	repeatMode  domain.RepeatMode

	// Behavior switches for error-path tests
	failReset bool
	failAdd   bool
	failPlay  bool
	failPause bool
	failSkip  bool

	// Command counters for asserting that an operation was (not) issued
	skipCalls int
}

// NewEngine creates a new mock media engine.
func NewEngine() *Engine {
	return &Engine{
		activeIndex: -1,
	}
}

// SetFailReset configures the mock to fail Reset calls (for testing).
func (m *Engine) SetFailReset(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failReset = fail
}

// SetFailAdd configures the mock to fail Add/AddAt calls (for testing).
func (m *Engine) SetFailAdd(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failAdd = fail
}

// SetFailPlay configures the mock to fail Play calls (for testing).
func (m *Engine) SetFailPlay(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failPlay = fail
}

// SetFailPause configures the mock to fail Pause calls (for testing).
func (m *Engine) SetFailPause(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failPause = fail
}

// SetFailSkip configures the mock to fail skip calls (for testing).
func (m *Engine) SetFailSkip(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failSkip = fail
}

// SkipCalls returns how many skip commands reached the engine (for testing).
func (m *Engine) SkipCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.skipCalls
}

// Start initializes the mock engine.
func (m *Engine) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.running = true
	return nil
}

// Shutdown stops the mock engine and clears its state.
func (m *Engine) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return domain.ErrEngineNotRunning
	}

	m.running = false
	m.queue = nil
	m.activeIndex = -1
	m.playing = false
	m.position = 0

	return nil
}

// Reset stops playback and clears the queue.
func (m *Engine) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return domain.ErrEngineNotRunning
	}
	if m.failReset {
		return domain.NewEngineError("reset", "mock reset failed", nil)
	}

	m.queue = nil
	m.activeIndex = -1
	m.playing = false
	m.position = 0

	return nil
}

// Add appends tracks to the queue. The first track added to an empty queue
// becomes the active entry, matching native engine behavior.
func (m *Engine) Add(tracks ...domain.Track) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return domain.ErrEngineNotRunning
	}
	if m.failAdd {
		return domain.NewEngineError("add", "mock add failed", nil)
	}

	wasEmpty := len(m.queue) == 0
	m.queue = append(m.queue, tracks...)
	if wasEmpty && len(m.queue) > 0 {
		m.activeIndex = 0
	}

	return nil
}

// AddAt inserts a track at the given index.
func (m *Engine) AddAt(track domain.Track, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return domain.ErrEngineNotRunning
	}
	if m.failAdd {
		return domain.NewEngineError("add", "mock add failed", nil)
	}
	if index < 0 || index > len(m.queue) {
		return domain.ErrInvalidIndex
	}

	m.queue = append(m.queue[:index], append([]domain.Track{track}, m.queue[index:]...)...)
	if m.activeIndex >= index {
		m.activeIndex++
	}
	if m.activeIndex == -1 && len(m.queue) > 0 {
		m.activeIndex = 0
	}

	return nil
}

// Move relocates a queue entry.
func (m *Engine) Move(from, to int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return domain.ErrEngineNotRunning
	}
	if from < 0 || from >= len(m.queue) || to < 0 || to >= len(m.queue) {
		return domain.ErrInvalidIndex
	}
	if from == to {
		return nil
	}

	track := m.queue[from]
	m.queue = append(m.queue[:from], m.queue[from+1:]...)
	m.queue = append(m.queue[:to], append([]domain.Track{track}, m.queue[to:]...)...)

	// Follow the active entry through the move
	switch {
	case m.activeIndex == from:
		m.activeIndex = to
	case from < m.activeIndex && to >= m.activeIndex:
		m.activeIndex--
	case from > m.activeIndex && to <= m.activeIndex:
		m.activeIndex++
	}

	return nil
}

// Play starts or resumes playback of the active entry.
func (m *Engine) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return domain.ErrEngineNotRunning
	}
	if m.failPlay {
		return domain.NewEngineError("play", "mock play failed", nil)
	}
	if m.activeIndex < 0 || m.activeIndex >= len(m.queue) {
		return domain.ErrNoActiveTrack
	}

	m.playing = true
	return nil
}

// Pause pauses playback, preserving the position.
func (m *Engine) Pause() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return domain.ErrEngineNotRunning
	}
	if m.failPause {
		return domain.NewEngineError("pause", "mock pause failed", nil)
	}

	m.playing = false
	return nil
}

// Seek sets the playback position within the active track.
func (m *Engine) Seek(position time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return domain.ErrEngineNotRunning
	}
	if m.activeIndex < 0 {
		return domain.ErrNoActiveTrack
	}
	if position < 0 {
		return domain.ErrInvalidIndex
	}

	m.position = position
	return nil
}

// SkipToNext advances to the next queue entry.
func (m *Engine) SkipToNext() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return domain.ErrEngineNotRunning
	}
	m.skipCalls++
	if m.failSkip {
		return domain.NewEngineError("skip", "mock skip failed", nil)
	}
	if m.activeIndex < 0 {
		return domain.ErrNoActiveTrack
	}
	if m.activeIndex >= len(m.queue)-1 {
		return domain.ErrEndOfQueue
	}

	m.activeIndex++
	m.position = 0
	return nil
}

// SkipToPrevious moves back to the previous queue entry.
func (m *Engine) SkipToPrevious() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return domain.ErrEngineNotRunning
	}
	m.skipCalls++
	if m.failSkip {
		return domain.NewEngineError("skip", "mock skip failed", nil)
	}
	if m.activeIndex < 0 {
		return domain.ErrNoActiveTrack
	}
	if m.activeIndex <= 0 {
		return domain.ErrStartOfQueue
	}

	m.activeIndex--
	m.position = 0
	return nil
}

// SkipTo jumps to the queue entry at the given index.
func (m *Engine) SkipTo(index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return domain.ErrEngineNotRunning
	}
	m.skipCalls++
	if m.failSkip {
		return domain.NewEngineError("skip", "mock skip failed", nil)
	}
	if index < 0 || index >= len(m.queue) {
		return domain.ErrInvalidIndex
	}

	m.activeIndex = index
	m.position = 0
	return nil
}

// SetRepeatMode records the repeat mode.
func (m *Engine) SetRepeatMode(mode domain.RepeatMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return domain.ErrEngineNotRunning
	}

	m.repeatMode = mode
	return nil
}

// RepeatMode returns the recorded repeat mode (for testing).
func (m *Engine) RepeatMode() domain.RepeatMode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.repeatMode
}

// ActiveIndex returns the index of the active queue entry.
func (m *Engine) ActiveIndex() (int, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.running {
		return -1, false, domain.ErrEngineNotRunning
	}
	if m.activeIndex < 0 || m.activeIndex >= len(m.queue) {
		return -1, false, nil
	}

	return m.activeIndex, true, nil
}

// Queue returns a snapshot of the engine's queue.
func (m *Engine) Queue() ([]domain.Track, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.running {
		return nil, domain.ErrEngineNotRunning
	}

	queue := make([]domain.Track, len(m.queue))
	copy(queue, m.queue)
	return queue, nil
}

// Position returns the playback position within the active track.
func (m *Engine) Position() (time.Duration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.running {
		return 0, domain.ErrEngineNotRunning
	}

	return m.position, nil
}

// Duration returns the duration of the active track.
func (m *Engine) Duration() (time.Duration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.running {
		return 0, domain.ErrEngineNotRunning
	}
	if m.activeIndex < 0 || m.activeIndex >= len(m.queue) {
		return 0, domain.ErrNoActiveTrack
	}

	return time.Duration(m.queue[m.activeIndex].Duration) * time.Second, nil
}

// Playing reports the transport state (for testing).
func (m *Engine) Playing() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.playing
}

// Verify that Engine implements the MediaEngine interface
var _ ports.MediaEngine = (*Engine)(nil)
