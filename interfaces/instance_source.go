package interfaces

import (
	"context"
	"iter"

	"myexplorer/domain"
)

// InstanceSource exposes the compute instances of one account/region. It is shared and read-only from the
// explorer's point of view: nothing here mutates remote state.
//
// ListInstances streams the instances page by page; GetInstanceStatus is a point lookup used by the
// polling set to reconcile in-flux instances.
//
// Implemented by adapters.InstanceSourceHTTP (cloud REST API) and myredis.NewInstanceSource (Redis registry).
// Called from service.instancesParentNode.
//
//go:generate moq -stub -out mock/instance_source.go -pkg mock . InstanceSource
type InstanceSource interface {
	// ListInstances returns a lazy sequence of batches. The sequence may yield zero batches or empty batches.
	// A transport or decoding failure is yielded as (nil, err) and ends the sequence; callers must stop on the first error.
	// Parameters: ctx: bounds every page request; filter: optional state filter (zero value lists everything).
	// Called from service.BuildChildren via instancesParentNode.UpdateChildren.
	ListInstances(ctx context.Context, filter domain.InstanceFilter) iter.Seq2[[]domain.InstanceSummary, error]

	// GetInstanceStatus returns the live status of one instance.
	// Returns: (status, nil) on success; ("", error) on transport failure or unknown id.
	// Called from instancesParentNode.reconcilePending once per watched id and tick.
	GetInstanceStatus(ctx context.Context, instanceID string) (domain.InstanceStatus, error)
}
