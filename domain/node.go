package domain

import (
	"context"
	"sync"
)

// NodeKind names the three shapes a child of the instances tree node can take.
type NodeKind string

const (
	NodeKindPlaceholder NodeKind = "placeholder"
	NodeKindError       NodeKind = "error"
	NodeKindInstance    NodeKind = "instance"
)

// Node is a child rendered under the instances tree node. The set of implementations is closed:
// PlaceholderNode, ErrorNode and *InstanceNode. Consumers switch on the concrete type (or Kind).
type Node interface {
	Kind() NodeKind
	Label() string
	node()
}

// PlaceholderNode is the single child shown when the region has no instances.
type PlaceholderNode struct {
	Message string
}

func (PlaceholderNode) Kind() NodeKind { return NodeKindPlaceholder }
func (n PlaceholderNode) Label() string { return n.Message }
func (PlaceholderNode) node() {}

// ErrorNode is the single child shown when listing instances failed. Err is the listing error.
type ErrorNode struct {
	Message string
	Err     error
}

func (ErrorNode) Kind() NodeKind { return NodeKindError }
func (n ErrorNode) Label() string { return n.Message }
func (ErrorNode) node() {}

// RefreshFunc tells the UI layer that node (and its subtree) is stale.
type RefreshFunc func(ctx context.Context, node *InstanceNode) error

// InstanceNode wraps one InstanceSummary. Status is updated in place by the reconciliation tick while
// readers render the node, so all accessors take the node's lock.
type InstanceNode struct {
	onRefresh RefreshFunc

	mu      sync.RWMutex
	summary InstanceSummary
}

// NewInstanceNode creates a node for summary. Name is normalized to the display name. onRefresh may be nil (Refresh is then a no-op).
func NewInstanceNode(summary InstanceSummary, onRefresh RefreshFunc) *InstanceNode {
	summary.Name = summary.DisplayName()
	return &InstanceNode{summary: summary, onRefresh: onRefresh}
}

func (n *InstanceNode) Kind() NodeKind { return NodeKindInstance }
func (n *InstanceNode) node() {}

// Label is the display name.
func (n *InstanceNode) Label() string { return n.Name() }

// InstanceID returns the provider identifier.
func (n *InstanceNode) InstanceID() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.summary.InstanceID
}

// Name returns the display name (never empty for a non-empty id).
func (n *InstanceNode) Name() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.summary.Name
}

// Status returns the last-seen status.
func (n *InstanceNode) Status() InstanceStatus {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.summary.Status
}

// SetStatus records a newly observed status.
func (n *InstanceNode) SetStatus(status InstanceStatus) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.summary.Status = status
}

// Summary returns a copy of the wrapped record.
func (n *InstanceNode) Summary() InstanceSummary {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.summary
}

// Refresh signals the UI layer that this node must be redrawn.
func (n *InstanceNode) Refresh(ctx context.Context) error {
	if n.onRefresh == nil {
		return nil
	}
	return n.onRefresh(ctx, n)
}
