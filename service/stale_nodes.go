package service

import (
	"context"
	"sync"

	"myexplorer/domain"
	"myexplorer/helpers"
	"myexplorer/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// DefaultStaleQueueCapacity bounds the stale-node queue when nothing drains it.
const DefaultStaleQueueCapacity = 1024

// staleNodeQueue implements interfaces.StaleNodes: the refresh signal of the HTTP-facing UI layer.
// RefreshNode records the node; Drain hands the records to the client polling GET /v1/stale.
// A node marked twice before a drain keeps one entry (the latest). When capacity is reached the oldest entry is dropped.
type staleNodeQueue struct {
	scheduler interfaces.Scheduler
	capacity  int
	logger    log.Logger

	mu      sync.Mutex
	entries []domain.StaleNode
}

// NewStaleNodeQueue creates an empty queue. capacity <= 0 means DefaultStaleQueueCapacity. Panics on nil scheduler or logger.
//
// Called from cmd/main; the queue is the parent node's refresher and the HTTP server's stale source.
func NewStaleNodeQueue(scheduler interfaces.Scheduler, capacity int, logger log.Logger) interfaces.StaleNodes {
	if capacity <= 0 {
		capacity = DefaultStaleQueueCapacity
	}
	return &staleNodeQueue{
		scheduler: helpers.NilPanic(scheduler, "service.stale_nodes.go: scheduler is required"),
		capacity:  capacity,
		logger:    log.With(helpers.NilPanic(logger, "service.stale_nodes.go: logger is required"), "component", "stale_nodes"),
	}
}

// RefreshNode marks node stale as of now.
func (q *staleNodeQueue) RefreshNode(_ context.Context, node *domain.InstanceNode) error {
	summary := node.Summary()
	entry := domain.StaleNode{
		InstanceID: summary.InstanceID,
		Name:       summary.Name,
		Status:     summary.Status,
		MarkedAt:   q.scheduler.Now(),
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	for i, existing := range q.entries {
		if existing.InstanceID == entry.InstanceID {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			break
		}
	}
	if len(q.entries) >= q.capacity {
		level.Warn(q.logger).Log("msg", "stale queue full, dropping oldest entry", "instance_id", q.entries[0].InstanceID)
		q.entries = q.entries[1:]
	}
	q.entries = append(q.entries, entry)
	return nil
}

// Drain returns and forgets every entry, oldest first. Never nil.
func (q *staleNodeQueue) Drain() []domain.StaleNode {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.entries
	q.entries = nil
	if out == nil {
		out = []domain.StaleNode{}
	}
	return out
}
