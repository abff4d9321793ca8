// Package player holds the playback session: the single state machine
// owning the current track, the configured volume, and the live engine
// handle.
package player

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/Parado-xy/rust-cli-player/audio"
	"github.com/Parado-xy/rust-cli-player/catalog"
)

var (
	// ErrInvalidIndex reports a play request for an index the catalog
	// does not hold.
	ErrInvalidIndex = errors.New("invalid song index")
	// ErrVolumeOutOfRange reports a volume outside [0.0, 1.0].
	ErrVolumeOutOfRange = errors.New("volume out of range")
)

// Session couples the state machine to the engine. Methods are safe
// for concurrent use: the command loop is the only steady-state
// caller, but the interrupt path releases the handle from its own
// goroutine.
type Session struct {
	mu sync.RWMutex

	catalog *catalog.Catalog
	engine  audio.Engine

	state     State
	current   *catalog.Track
	volume    float64
	startedAt time.Time
	handle    audio.Handle
}

// NewSession returns an idle session at full volume.
func NewSession(cat *catalog.Catalog, engine audio.Engine) *Session {
	return &Session{
		catalog: cat,
		engine:  engine,
		state:   StateIdle,
		volume:  1.0,
	}
}

// Play resolves index against the catalog and starts that track. An
// unknown index leaves the session untouched. If a track is already
// playing or paused, its handle is stopped and released before the new
// one is acquired; there are never two live handles. An engine failure
// past that point leaves the session idle with no current track.
func (s *Session) Play(index int) (catalog.Track, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	track, ok := s.catalog.Get(index)
	if !ok {
		return catalog.Track{}, ErrInvalidIndex
	}

	s.releaseLocked()

	handle, err := s.engine.Open()
	if err != nil {
		return catalog.Track{}, fmt.Errorf("failed to open playback session: %w", err)
	}
	if err := handle.Start(track.Path); err != nil {
		handle.Release()
		return catalog.Track{}, fmt.Errorf("failed to play %s: %w", track.Name, err)
	}
	handle.SetGain(s.volume)

	s.handle = handle
	s.current = &track
	s.startedAt = time.Now()
	s.state = StatePlaying
	slog.Debug("session: playing", "index", track.Index, "name", track.Name)
	return track, nil
}

// Pause moves Playing to Paused. Any other state is a no-op; the
// return value reports whether a transition happened.
func (s *Session) Pause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePlaying {
		return false
	}
	s.handle.Pause()
	s.state = StatePaused
	return true
}

// Resume moves Paused back to Playing. Any other state is a no-op.
func (s *Session) Resume() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePaused {
		return false
	}
	s.handle.Resume()
	s.state = StatePlaying
	return true
}

// Stop releases the handle and clears the current track. No-op when
// already idle.
func (s *Session) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateIdle {
		return false
	}
	s.releaseLocked()
	return true
}

// SetVolume stores a linear gain in [0.0, 1.0] and applies it to the
// live handle, if any. The stored value survives track switches: every
// newly started track gets the configured volume, not a reset.
func (s *Session) SetVolume(v float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// NaN compares false against both bounds, so reject it explicitly.
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%w: %.1f", ErrVolumeOutOfRange, v)
	}
	s.volume = v
	if s.handle != nil {
		s.handle.SetGain(v)
	}
	return nil
}

// Status reports the current track, state, elapsed time and volume.
// Elapsed is wall-clock time since the track started and keeps
// counting while paused.
func (s *Session) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := Status{State: s.state, Volume: s.volume}
	if s.current != nil {
		status.Track = s.current
		status.Elapsed = time.Since(s.startedAt)
	}
	return status
}

// Close releases any live handle. Every exit path funnels through
// here: the exit command, end of input, the interrupt handler, and
// deferred teardown. Safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseLocked()
}

// releaseLocked stops and releases the live handle and resets the
// session to idle (must be called with s.mu held).
func (s *Session) releaseLocked() {
	if s.handle != nil {
		s.handle.Stop()
		s.handle.Release()
		s.handle = nil
	}
	s.current = nil
	s.startedAt = time.Time{}
	s.state = StateIdle
}
