package app

import (
	"sync/atomic"
	"time"
)

// State is the process-lifetime data shared by every request handler.
// The start time is fixed at construction; the counter only moves forward.
type State struct {
	started time.Time
	counter atomic.Int64
	now     func() time.Time
}

// NewState records the current time as the process start.
func NewState() *State {
	return NewStateWithClock(time.Now)
}

// NewStateWithClock is NewState with an injectable clock, used by tests.
func NewStateWithClock(now func() time.Time) *State {
	return &State{started: now(), now: now}
}

// Started returns when the state was created.
func (s *State) Started() time.Time {
	return s.started
}

// Uptime is the elapsed time since start, never negative.
func (s *State) Uptime() time.Duration {
	d := s.now().Sub(s.started)
	if d < 0 {
		return 0
	}
	return d
}

// Next increments the counter and returns the value this call produced.
// Concurrent callers always observe distinct values.
func (s *State) Next() int64 {
	return s.counter.Add(1)
}

// Counter reads the current counter without changing it.
func (s *State) Counter() int64 {
	return s.counter.Load()
}

// Now returns the current time from the state's clock.
func (s *State) Now() time.Time {
	return s.now()
}
