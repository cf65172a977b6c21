package service

import (
	"context"
	"sync"
	"time"

	"myexplorer/helpers"
	"myexplorer/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// RefreshLoop rebuilds a tree node's children in the background every interval and reports each outcome.
// It is the background counterpart of a user-triggered GetChildren.
type RefreshLoop struct {
	tree      interfaces.TreeNode
	interval  time.Duration
	scheduler interfaces.Scheduler
	onResult  func(err error)
	logger    log.Logger

	mu      sync.Mutex
	timer   interfaces.Timer
	ctx     context.Context
	cancel  context.CancelFunc
	running bool
}

// NewRefreshLoop creates a stopped loop. onResult receives the UpdateChildren error (nil on success) after every
// run; cmd/main uses it to drive the gRPC health status. Panics on nil tree, scheduler, onResult or logger and on
// non-positive interval.
func NewRefreshLoop(tree interfaces.TreeNode, interval time.Duration, scheduler interfaces.Scheduler, onResult func(err error), logger log.Logger) *RefreshLoop {
	return &RefreshLoop{
		tree:      helpers.NilPanic(tree, "service.refresh_loop.go: tree is required"),
		interval:  helpers.DurationPanic(interval, "service.refresh_loop.go: interval must be positive"),
		scheduler: helpers.NilPanic(scheduler, "service.refresh_loop.go: scheduler is required"),
		onResult:  helpers.NilPanic(onResult, "service.refresh_loop.go: onResult is required"),
		logger:    log.With(helpers.NilPanic(logger, "service.refresh_loop.go: logger is required"), "component", "refresh_loop"),
	}
}

// Start runs one refresh immediately and schedules the next ones. Calling Start on a running loop does nothing.
func (l *RefreshLoop) Start() {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return
	}
	l.running = true
	l.ctx, l.cancel = context.WithCancel(context.Background())
	ctx := l.ctx
	l.mu.Unlock()

	l.run(ctx)
}

// Stop cancels the pending run and the context of a run in progress. Idempotent.
func (l *RefreshLoop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.running {
		return
	}
	l.running = false
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	l.cancel()
}

func (l *RefreshLoop) run(ctx context.Context) {
	err := l.tree.UpdateChildren(ctx)
	if err != nil {
		level.Warn(l.logger).Log("msg", "background refresh failed", "err", err)
	}
	l.onResult(err)

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.running || l.ctx != ctx {
		return
	}
	l.timer = l.scheduler.AfterFunc(l.interval, func() { l.run(ctx) })
}
