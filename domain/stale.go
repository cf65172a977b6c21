package domain

import "time"

// StaleNode records that the UI must redraw an instance node: its status changed at MarkedAt.
type StaleNode struct {
	InstanceID string
	Name       string
	Status     InstanceStatus
	MarkedAt   time.Time
}
