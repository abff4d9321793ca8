// Package audio provides the playback engine boundary: an Engine that
// opens exclusive per-track sessions against the output device, and the
// Handle through which a session is controlled and released.
package audio

import (
	"errors"
	"math"
)

// ErrUnsupportedFormat is returned by Handle.Start for files whose
// extension maps to no known decoder.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Engine acquires playback sessions. The caller owns at most one live
// Handle at a time and must Release it before opening another.
type Engine interface {
	Open() (Handle, error)
}

// Handle is one exclusive playback session on the output device.
type Handle interface {
	// Start decodes the file at path and begins playback. Unreadable
	// files and undecodable content fail here; the handle stays usable
	// for Release.
	Start(path string) error
	Pause()
	Resume()
	// Stop ceases playback and discards the queued source.
	Stop()
	// SetGain applies a linear gain in [0, 1]. Callers validate range.
	SetGain(gain float64)
	// Release frees the session's resources. Idempotent.
	Release()
}

// gainToVolume maps a linear gain in [0, 1] to the base-2 exponent used
// by effects.Volume: 1.0 is unity (exponent 0), 0.5 is -1, and 0 cannot
// be expressed as an exponent so it is reported as silent.
func gainToVolume(gain float64) (volume float64, silent bool) {
	if gain <= 0 {
		return 0, true
	}
	return math.Log2(gain), false
}
