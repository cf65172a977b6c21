package interfaces

import "time"

// Scheduler supplies the current time and one-shot timers. Injected so tests can drive the polling and
// refresh loops with virtual time instead of sleeping.
//
// Built in cmd/main as service.NewScheduler(time.Now); tests use helpers.FakeScheduler.
type Scheduler interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc calls f once after d has elapsed and returns a Timer that can cancel the pending call.
	// The real scheduler runs f in its own goroutine; the fake runs it synchronously inside Advance.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending AfterFunc call. *time.Timer satisfies it.
type Timer interface {
	// Stop cancels the pending call. Returns false if the call already ran or was already stopped.
	Stop() bool
}
