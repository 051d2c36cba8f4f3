package timer

import (
	"sync"
	"time"
)

// Observation is what a single refresh read sees.
type Observation struct {
	Left    uint32 // seconds left, read before any reset
	Running bool   // running state before any reset
	Expired bool   // the read found a running countdown at zero and reset it
}

// Shared is a State guarded by a mutex. Each method is one logical operation.
type Shared struct {
	mu    sync.Mutex
	state *State
}

// NewShared wraps a fresh idle State.
func NewShared(total uint32, clock Clock) *Shared {
	return &Shared{state: NewState(total, clock)}
}

// Start arms the countdown if it is idle.
func (s *Shared) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Start()
}

// Reset returns the countdown to idle.
func (s *Shared) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Reset()
}

// Observe reads the time left and, when a running countdown has reached
// zero, resets it. The returned values are those read before the reset.
func (s *Shared) Observe() Observation {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := Observation{Left: s.state.TimeLeft(), Running: s.state.IsRunning()}
	if o.Running && o.Left == 0 {
		s.state.Reset()
		o.Expired = true
	}
	return o
}

// Snapshot reads the countdown without side effects.
func (s *Shared) Snapshot() Observation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Observation{Left: s.state.TimeLeft(), Running: s.state.IsRunning()}
}

// StartedAt returns the recorded start time, if any.
func (s *Shared) StartedAt() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.StartedAt()
}
