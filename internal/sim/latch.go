package sim

import "time"

// LatchState is the phase of the interaction latch.
type LatchState int

const (
	// LatchIdle means no interaction is waiting.
	LatchIdle LatchState = iota
	// LatchQueued means an interaction was requested and waits for the cooldown.
	LatchQueued
)

// String returns a human-readable state name.
func (s LatchState) String() string {
	switch s {
	case LatchIdle:
		return "idle"
	case LatchQueued:
		return "queued"
	default:
		return "unknown"
	}
}

// Latch gates interaction requests: any number of requests collapse into one
// queued flag, and a queued request fires only once the cooldown since the
// previous fire has elapsed. A request that arrives during the cooldown stays
// queued and fires on a later frame.
type Latch struct {
	state    LatchState
	cooldown time.Duration
	lastFire time.Time
	fired    bool
}

// NewLatch creates an idle latch with the given cooldown.
func NewLatch(cooldown time.Duration) *Latch {
	return &Latch{cooldown: cooldown}
}

// Queue records an interaction request.
func (l *Latch) Queue() {
	l.state = LatchQueued
}

// Ready reports whether a queued request may fire at now.
func (l *Latch) Ready(now time.Time) bool {
	if l.state != LatchQueued {
		return false
	}
	return !l.fired || now.Sub(l.lastFire) >= l.cooldown
}

// TryFire clears the queue and stamps the fire time if the latch is ready.
func (l *Latch) TryFire(now time.Time) bool {
	if !l.Ready(now) {
		return false
	}
	l.state = LatchIdle
	l.lastFire = now
	l.fired = true
	return true
}
