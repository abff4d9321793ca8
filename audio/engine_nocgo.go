//go:build linux && !cgo

package audio

import (
	"log/slog"

	"github.com/google/uuid"
)

// Available indicates whether this build can produce sound. Playback
// requires cgo for the native sound libraries; without it the engine
// accepts every operation silently so the player remains usable.
const Available = false

// Init is a no-op without cgo.
func Init() error {
	return nil
}

// NewEngine returns the silent engine.
func NewEngine() Engine {
	return silentEngine{}
}

type silentEngine struct{}

func (silentEngine) Open() (Handle, error) {
	h := &silentHandle{id: uuid.New()}
	slog.Debug("audio: silent session opened", "id", h.id)
	return h, nil
}

type silentHandle struct {
	id uuid.UUID
}

func (h *silentHandle) Start(path string) error { return nil }

func (h *silentHandle) Pause() {}

func (h *silentHandle) Resume() {}

func (h *silentHandle) Stop() {}

func (h *silentHandle) SetGain(gain float64) {}

func (h *silentHandle) Release() {
	slog.Debug("audio: silent session released", "id", h.id)
}
