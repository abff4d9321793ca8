//go:build (linux && cgo) || windows || darwin

package audio

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// Available indicates whether this build can produce sound.
const Available = true

// All sources are resampled to one speaker rate so the device is
// initialized exactly once, at startup.
const outputRate beep.SampleRate = 44100

// Init opens the output device. Failure here is fatal to startup.
func Init() error {
	return speaker.Init(outputRate, outputRate.N(time.Second/10))
}

// NewEngine returns the beep-backed engine.
func NewEngine() Engine {
	return beepEngine{}
}

type beepEngine struct{}

func (beepEngine) Open() (Handle, error) {
	h := &beepHandle{id: uuid.New(), gain: 1.0}
	slog.Debug("audio: session opened", "id", h.id)
	return h, nil
}

// beepHandle owns one decoded stream on the speaker. The speaker mixer
// only ever holds this handle's sequence: Release clears it.
type beepHandle struct {
	mu sync.Mutex

	id       uuid.UUID
	gain     float64
	file     *os.File
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	released bool
}

func (h *beepHandle) Start(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := decode(f)
	if err != nil {
		f.Close()
		return err
	}

	h.file = f
	h.streamer = streamer
	h.ctrl = &beep.Ctrl{Streamer: beep.Resample(4, format.SampleRate, outputRate, streamer)}

	vol, silent := gainToVolume(h.gain)
	h.volume = &effects.Volume{Streamer: h.ctrl, Base: 2, Volume: vol, Silent: silent}

	id := h.id
	speaker.Play(beep.Seq(h.volume, beep.Callback(func() {
		slog.Debug("audio: track finished", "id", id)
	})))

	return nil
}

func (h *beepHandle) Pause() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.ctrl != nil {
		speaker.Lock()
		h.ctrl.Paused = true
		speaker.Unlock()
	}
}

func (h *beepHandle) Resume() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.ctrl != nil {
		speaker.Lock()
		h.ctrl.Paused = false
		speaker.Unlock()
	}
}

func (h *beepHandle) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopLocked()
}

func (h *beepHandle) SetGain(gain float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.gain = gain
	if h.volume == nil {
		return
	}

	vol, silent := gainToVolume(gain)
	speaker.Lock()
	h.volume.Volume = vol
	h.volume.Silent = silent
	speaker.Unlock()
}

func (h *beepHandle) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.released {
		return
	}
	h.released = true

	h.stopLocked()
	slog.Debug("audio: session released", "id", h.id)
}

// stopLocked ceases playback and closes the decoded stream (must be
// called with h.mu held).
func (h *beepHandle) stopLocked() {
	if h.ctrl != nil {
		speaker.Clear()
		h.ctrl = nil
		h.volume = nil
	}
	if h.streamer != nil {
		h.streamer.Close()
		h.streamer = nil
	}
	if h.file != nil {
		h.file.Close()
		h.file = nil
	}
}

// decode picks a decoder from the file extension. Anything else is an
// ErrUnsupportedFormat; decoders reject files whose content does not
// match their extension.
func decode(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(f.Name())) {
	case ".mp3":
		return mp3.Decode(f)
	case ".wav":
		return wav.Decode(f)
	case ".flac":
		return flac.Decode(f)
	case ".ogg", ".oga":
		return vorbis.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(f.Name()))
	}
}
