package interfaces

import (
	"context"

	"myexplorer/domain"
)

// TreeNode is the parent node of the instances explorer for one region. It fetches instances, builds the
// ordered child list and the id index, and keeps in-flux children under status reconciliation.
//
// Implemented by service.instancesParentNode. Called from handlers.HTTPServer and service.refreshLoop.
//
//go:generate moq -stub -out mock/tree_node.go -pkg mock . TreeNode
type TreeNode interface {
	// Label is the node's display label, e.g. "Instances (eu-west-1)".
	Label() string

	// GetChildren rebuilds the children and returns them. Never fails: a listing failure is returned as a
	// single domain.ErrorNode, an empty region as a single domain.PlaceholderNode.
	GetChildren(ctx context.Context) []domain.Node

	// Children renders the children of the last successful build without contacting the source.
	Children() []domain.Node

	// UpdateChildren rebuilds the child list and index, then watches every child in a transitional status.
	// A listing failure is returned as an internal_server_error wrapping the source error; nothing is mutated then.
	UpdateChildren(ctx context.Context) error

	// GetInstanceNode returns the current child with the given id, or an entity_not_found error.
	GetInstanceNode(id string) (*domain.InstanceNode, error)

	// TrackPendingNode watches id. Returns entity_not_found when id is not a current child.
	TrackPendingNode(id string) error

	// PendingIDs returns a sorted snapshot of the watched ids.
	PendingIDs() []string

	// Close stops reconciliation: the watch set is cleared and its timer cancelled.
	Close()
}
