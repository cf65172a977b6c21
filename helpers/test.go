package helpers

import "time"

// TestNow returns a fixed time (2026-10-15 12:00:00 UTC) used as the starting point of FakeScheduler in tests.
func TestNow() time.Time {
	return time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
}
