// Package timer contains the domain logic for item respawn timers: the
// State countdown, its lock-protected Shared wrapper and the Registry that
// owns one Shared per tracked item.
//
// Maintenance notes:
//   - State is not safe for concurrent use. It is touched by the UI
//     callbacks, the hotkey listener and the refresh loop, so it is only
//     ever reached through Shared, which holds its mutex for exactly one
//     logical operation and never across a sleep or a UI push.
//   - State never expires on its own. The refresh loop is the only place
//     that notices TimeLeft() == 0 on a running timer and resets it (see
//     Shared.Observe).
package timer

import (
	"time"
)

// Clock provides the current time. Tests swap it for a manual clock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock backed by time.Now.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// State is a single countdown. It is idle exactly when no start time is
// recorded.
type State struct {
	clock   Clock
	total   uint32
	started time.Time
	running bool
}

// NewState creates an idle countdown with a fixed budget in seconds.
func NewState(total uint32, clock Clock) *State {
	if clock == nil {
		clock = SystemClock
	}
	return &State{clock: clock, total: total}
}

// Start records the current time as the start of the countdown. A running
// countdown is left untouched so a second press never extends it.
func (s *State) Start() {
	if s.running {
		return
	}
	s.started = s.clock.Now()
	s.running = true
}

// Reset returns the countdown to idle.
func (s *State) Reset() {
	if !s.running {
		return
	}
	s.started = time.Time{}
	s.running = false
}

// TimeLeft returns the whole seconds remaining. Sub-second elapsed time is
// truncated, so 24.9s into a 25s countdown there is still 1 second left.
func (s *State) TimeLeft() uint32 {
	if !s.running {
		return s.total
	}

	elapsed := s.clock.Now().Sub(s.started)
	if elapsed < 0 {
		return s.total
	}
	secs := uint64(elapsed / time.Second)
	if secs >= uint64(s.total) {
		return 0
	}
	return s.total - uint32(secs)
}

// IsRunning reports whether a start time is recorded.
func (s *State) IsRunning() bool {
	return s.running
}

// Total returns the fixed budget in seconds.
func (s *State) Total() uint32 {
	return s.total
}

// StartedAt returns the recorded start time, if any.
func (s *State) StartedAt() (time.Time, bool) {
	return s.started, s.running
}
