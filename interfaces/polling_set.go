package interfaces

// PollingSet is the watch set of instance ids whose status is being reconciled, plus the single recurring
// timer that drives the reconciliation tick. The timer is armed by the first Add into an empty set and
// disarmed by ClearTimer or by a tick that finds the set empty.
//
// Implemented by service.pollingSet. Owned by one service.instancesParentNode; never shared.
type PollingSet interface {
	// Add watches id. Adding an id already watched is a no-op. Starts the timer when the set was empty.
	Add(id string)

	// Remove stops watching id. Called by the tick once the id's status settled.
	Remove(id string)

	// Contains reports whether id is watched.
	Contains(id string) bool

	// IDs returns a sorted snapshot of the watched ids.
	IDs() []string

	// Size returns the number of watched ids.
	Size() int

	// Clear empties the set without cancelling the timer. The next expiry finds nothing to check and disarms.
	Clear()

	// ClearTimer cancels the timer and the context of a tick in progress. Idempotent; safe mid-tick.
	ClearTimer()
}
