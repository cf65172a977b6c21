package service

import (
	"iter"
	"slices"
	"strings"

	"myexplorer/domain"
)

// BuildChildren drains every batch of batches and turns the records into instance nodes.
//
// The returned list holds one node per record, including records that repeat an id or a name, stable-sorted
// by display name in byte order. The returned index maps id to node; when an id repeats, the later record
// wins. The first error yielded by batches aborts the build and is returned as-is with nil list and index.
//
// onRefresh is attached to every node (see domain.NewInstanceNode).
//
// Called from instancesParentNode.UpdateChildren.
func BuildChildren(batches iter.Seq2[[]domain.InstanceSummary, error], onRefresh domain.RefreshFunc) ([]*domain.InstanceNode, map[string]*domain.InstanceNode, error) {
	var nodes []*domain.InstanceNode
	index := make(map[string]*domain.InstanceNode)
	for batch, err := range batches {
		if err != nil {
			return nil, nil, err
		}
		for _, summary := range batch {
			node := domain.NewInstanceNode(summary, onRefresh)
			nodes = append(nodes, node)
			index[summary.InstanceID] = node
		}
	}
	slices.SortStableFunc(nodes, func(a, b *domain.InstanceNode) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return nodes, index, nil
}
