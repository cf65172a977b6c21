package interfaces

import (
	"context"

	"myexplorer/domain"
)

// NodeRefresher is the refresh signal into the UI layer: the node and its subtree are stale and must be redrawn.
// Implemented by service.staleNodeQueue. Called from domain.InstanceNode.Refresh when the reconciliation tick sees a status change.
//
//go:generate moq -stub -out mock/node_refresher.go -pkg mock . NodeRefresher
type NodeRefresher interface {
	// RefreshNode marks node stale. Returns an error only when the UI layer cannot accept the signal; the tick logs it.
	RefreshNode(ctx context.Context, node *domain.InstanceNode) error
}

// StaleNodes is a NodeRefresher the HTTP layer can drain. Drain returns the nodes marked since the previous call, oldest first.
//
//go:generate moq -stub -out mock/stale_nodes.go -pkg mock . StaleNodes
type StaleNodes interface {
	NodeRefresher
	Drain() []domain.StaleNode
}
