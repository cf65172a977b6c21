package service

import (
	"time"

	"myexplorer/helpers"
	"myexplorer/interfaces"
)

// scheduler implements interfaces.Scheduler on top of the time package. The clock is the injected now func;
// timers are real time.AfterFunc timers.
type scheduler struct {
	now func() time.Time
}

// NewScheduler creates a Scheduler whose Now is the given func. Panics on nil now.
//
// Called from cmd/main with time.Now.
func NewScheduler(now func() time.Time) interfaces.Scheduler {
	return &scheduler{now: helpers.NilPanic(now, "service.scheduler.go: now is required")}
}

// Now returns the injected clock's time.
func (s *scheduler) Now() time.Time {
	return s.now()
}

// AfterFunc runs f in its own goroutine after d.
func (s *scheduler) AfterFunc(d time.Duration, f func()) interfaces.Timer {
	return time.AfterFunc(d, f)
}
