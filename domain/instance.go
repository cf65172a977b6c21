package domain

// InstanceStatus is the last-seen lifecycle state of a remote compute instance as reported by the instance source.
type InstanceStatus string

const (
	StatusPending      InstanceStatus = "pending"
	StatusRunning      InstanceStatus = "running"
	StatusStopping     InstanceStatus = "stopping"
	StatusStopped      InstanceStatus = "stopped"
	StatusShuttingDown InstanceStatus = "shutting-down"
	StatusTerminated   InstanceStatus = "terminated"
	StatusRebooting    InstanceStatus = "rebooting"
)

// IsStable reports whether the instance has settled: running, stopped or terminated.
func (s InstanceStatus) IsStable() bool {
	switch s {
	case StatusRunning, StatusStopped, StatusTerminated:
		return true
	default:
		return false
	}
}

// IsTransitional reports whether the instance is still moving between states and its status must be polled.
// Any non-empty status that is not stable counts, so unknown provider states are watched until they change.
func (s InstanceStatus) IsTransitional() bool {
	return s != "" && !s.IsStable()
}

// InstanceSummary is one instance record as listed by the instance source.
// Name may be empty and may collide across instances; InstanceID is unique on the provider side.
type InstanceSummary struct {
	InstanceID string
	Name       string
	Status     InstanceStatus
}

// DisplayName returns Name, or InstanceID when the instance has no name.
func (s InstanceSummary) DisplayName() string {
	if s.Name == "" {
		return s.InstanceID
	}
	return s.Name
}

// InstanceFilter narrows ListInstances. Empty States means all states.
type InstanceFilter struct {
	States []InstanceStatus
}

// Matches reports whether status passes the filter.
func (f InstanceFilter) Matches(status InstanceStatus) bool {
	if len(f.States) == 0 {
		return true
	}
	for _, s := range f.States {
		if s == status {
			return true
		}
	}
	return false
}
