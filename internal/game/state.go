// Package game implements the Click Dash round logic: a target that jumps to a
// random spot on every hit, a score, and a countdown that ends the round.
//
// Everything here runs on a single event loop supplied by the host. Hosts feed
// clicks in, drive time through a clock.Scheduler, and receive updates through
// the Presenter interface.
package game

// State is the session state machine position.
type State int

const (
	StateIdle    State = iota // Waiting for the start button
	StateRunning              // Round in progress
	StateEnded                // Time is up, waiting for the player's name
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// TimerState is the countdown state machine position.
type TimerState int

const (
	TimerStopped TimerState = iota
	TimerRunning
	TimerExpired
)

// String returns a human-readable name for the timer state.
func (s TimerState) String() string {
	switch s {
	case TimerStopped:
		return "stopped"
	case TimerRunning:
		return "running"
	case TimerExpired:
		return "expired"
	default:
		return "unknown"
	}
}
