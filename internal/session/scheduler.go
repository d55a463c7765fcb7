package session

import (
	"sync"
	"time"
)

// Scheduler coalesces bursts of work into a single deferred call. Scheduling
// while a call is pending replaces it, so the function fires only after the
// quiet period elapses with no further Schedule calls.
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
	CancelPending()
}

// TimerScheduler implements Scheduler on time.AfterFunc.
type TimerScheduler struct {
	mu    sync.Mutex
	timer *time.Timer
}

func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

func (s *TimerScheduler) Schedule(delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(delay, fn)
}

func (s *TimerScheduler) CancelPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
