// Package game hosts a session in the terminal: it owns the screen, turns
// terminal events into controller input and drives the fixed-rate frame loop.
package game

// State represents the host loop state.
type State int

const (
	// StatePlaying is the normal state: frames are stepped and drawn.
	StatePlaying State = iota
	// StateQuitting means a quit key was pressed; the loop exits after the
	// current event.
	StateQuitting
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}
