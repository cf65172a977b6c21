package helpers

import (
	"sort"
	"sync"
	"time"

	"myexplorer/interfaces"
)

// FakeScheduler is a virtual-time interfaces.Scheduler for tests. Time stands still until Advance is called;
// AfterFunc callbacks whose deadline falls inside the advanced window run synchronously in the goroutine
// calling Advance, in deadline order. A callback may register new timers; those fire only if their own
// deadline is also reached.
//
// Safe for concurrent use. Do not call Advance from inside a callback.
type FakeScheduler struct {
	mu      sync.Mutex
	current time.Time
	timers  []*fakeTimer
}

type fakeTimer struct {
	scheduler *FakeScheduler
	deadline  time.Time
	callback  func()
	done      bool
}

// NewFakeScheduler returns a FakeScheduler whose clock starts at start.
func NewFakeScheduler(start time.Time) *FakeScheduler {
	return &FakeScheduler{current: start}
}

// Now returns the virtual time.
func (s *FakeScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// AfterFunc registers f to run once the clock has advanced by d. d <= 0 runs on the next Advance, even Advance(0).
func (s *FakeScheduler) AfterFunc(d time.Duration, f func()) interfaces.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{scheduler: s, deadline: s.current.Add(d), callback: f}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by d and runs every due callback.
func (s *FakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.current = s.current.Add(d)
	target := s.current
	s.mu.Unlock()

	for {
		due := s.collectDue(target)
		if len(due) == 0 {
			return
		}
		for _, t := range due {
			t.callback()
		}
	}
}

// Pending returns the number of timers registered and neither fired nor stopped.
func (s *FakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *FakeScheduler) collectDue(target time.Time) []*fakeTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	var due, remaining []*fakeTimer
	for _, t := range s.timers {
		if t.deadline.After(target) {
			remaining = append(remaining, t)
			continue
		}
		t.done = true
		due = append(due, t)
	}
	s.timers = remaining
	sort.SliceStable(due, func(i, j int) bool { return due[i].deadline.Before(due[j].deadline) })
	return due
}

// Stop cancels the timer. Returns false if it already fired or was stopped.
func (t *fakeTimer) Stop() bool {
	s := t.scheduler
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	for i, pending := range s.timers {
		if pending == t {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			break
		}
	}
	return true
}
