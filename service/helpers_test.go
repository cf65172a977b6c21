package service

import (
	"iter"

	"myexplorer/domain"
)

// batchesOf yields each batch in order.
func batchesOf(batches ...[]domain.InstanceSummary) iter.Seq2[[]domain.InstanceSummary, error] {
	return func(yield func([]domain.InstanceSummary, error) bool) {
		for _, batch := range batches {
			if !yield(batch, nil) {
				return
			}
		}
	}
}

// failingAfter yields the batches, then err.
func failingAfter(err error, batches ...[]domain.InstanceSummary) iter.Seq2[[]domain.InstanceSummary, error] {
	return func(yield func([]domain.InstanceSummary, error) bool) {
		for _, batch := range batches {
			if !yield(batch, nil) {
				return
			}
		}
		yield(nil, err)
	}
}

func instanceNames(nodes []*domain.InstanceNode) []string {
	names := make([]string, 0, len(nodes))
	for _, n := range nodes {
		names = append(names, n.Name())
	}
	return names
}
