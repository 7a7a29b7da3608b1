package input

import "time"

const (
	// DefaultRepeatDelay is how long a key is held before it starts repeating.
	DefaultRepeatDelay = 300 * time.Millisecond
	// DefaultRepeatInterval is the time between repeats once repeating.
	DefaultRepeatInterval = 35 * time.Millisecond
)

type keyRepeatInfo struct {
	firstPressed time.Time
	lastRepeat   time.Time
}

// Repeater decides when a held key fires again. Hosts that only see key
// state (not OS key-repeat events) poll it once per frame per key.
type Repeater struct {
	Delay    time.Duration
	Interval time.Duration

	state map[string]keyRepeatInfo
}

// NewRepeater creates a repeater with the default timings.
func NewRepeater() *Repeater {
	return &Repeater{
		Delay:    DefaultRepeatDelay,
		Interval: DefaultRepeatInterval,
		state:    make(map[string]keyRepeatInfo),
	}
}

// ShouldFire reports whether code should trigger at now: on the initial
// press, and then every Interval once Delay has passed. Releasing the key
// forgets it.
func (r *Repeater) ShouldFire(code string, pressed bool, now time.Time) bool {
	state, exists := r.state[code]
	if !pressed {
		if exists {
			delete(r.state, code)
		}
		return false
	}

	if !exists {
		r.state[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}

	if now.Sub(state.firstPressed) >= r.Delay && now.Sub(state.lastRepeat) >= r.Interval {
		state.lastRepeat = now
		r.state[code] = state
		return true
	}
	return false
}

// Reset forgets every held key.
func (r *Repeater) Reset() {
	clear(r.state)
}
