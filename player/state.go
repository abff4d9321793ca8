package player

import (
	"time"

	"github.com/Parado-xy/rust-cli-player/catalog"
)

// State is the session's lifecycle phase.
type State string

const (
	StateIdle    State = "idle"
	StatePlaying State = "playing"
	StatePaused  State = "paused"
)

// Status is a point-in-time snapshot of the session, read by the
// status command. Elapsed is zero when no track is current.
type Status struct {
	Track   *catalog.Track
	State   State
	Elapsed time.Duration
	Volume  float64
}
