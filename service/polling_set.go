package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"myexplorer/helpers"
	"myexplorer/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// DefaultPollInterval is how often watched instances are re-checked when the config does not say otherwise.
const DefaultPollInterval = 5 * time.Second

// pollingSet implements interfaces.PollingSet. It keeps the watched ids and a single recurring timer built
// from one-shot scheduler timers: each expiry runs the tick action, then re-arms while ids remain.
// Fields: interval, scheduler, action (the reconciliation tick, run without mu held), logger; under mu:
// ids, timer (nil when disarmed), cancel (cancels the context of the armed timer's ticks), generation
// (bumped on every arm and disarm so a stale expiry or an in-flight tick cannot re-arm a cancelled timer).
type pollingSet struct {
	interval  time.Duration
	scheduler interfaces.Scheduler
	action    func(ctx context.Context)
	logger    log.Logger

	mu         sync.Mutex
	ids        map[string]struct{}
	timer      interfaces.Timer
	ctx        context.Context
	cancel     context.CancelFunc
	generation uint64
}

// NewPollingSet creates an empty, disarmed polling set. Panics on non-positive interval or nil scheduler, action or logger.
//
// Parameters: interval: delay between ticks (DefaultPollInterval in production); scheduler: timer source
// (helpers.FakeScheduler in tests); action: the tick, called with a context that is cancelled by ClearTimer;
// logger: component logger.
//
// Called from NewInstancesParentNode, which passes its reconcilePending method as action.
func NewPollingSet(interval time.Duration, scheduler interfaces.Scheduler, action func(ctx context.Context), logger log.Logger) interfaces.PollingSet {
	return &pollingSet{
		interval:  helpers.DurationPanic(interval, "service.polling_set.go: interval must be positive"),
		scheduler: helpers.NilPanic(scheduler, "service.polling_set.go: scheduler is required"),
		action:    helpers.NilPanic(action, "service.polling_set.go: action is required"),
		logger:    log.With(helpers.NilPanic(logger, "service.polling_set.go: logger is required"), "component", "polling_set"),
		ids:       make(map[string]struct{}),
	}
}

// Add watches id and arms the timer if it is not armed, which is the case when the set was empty or after ClearTimer.
func (p *pollingSet) Add(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ids[id] = struct{}{}
	if p.timer == nil {
		p.armLocked()
	}
}

// Remove stops watching id. The timer is left alone; the next expiry disarms it if the set is empty.
func (p *pollingSet) Remove(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.ids, id)
}

func (p *pollingSet) Contains(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.ids[id]
	return ok
}

func (p *pollingSet) IDs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	ids := make([]string, 0, len(p.ids))
	for id := range p.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (p *pollingSet) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.ids)
}

// Clear empties the set. The timer stays armed and disarms itself on its next expiry.
func (p *pollingSet) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ids = make(map[string]struct{})
}

// ClearTimer disarms the timer and cancels the context of a tick in progress. Idempotent.
func (p *pollingSet) ClearTimer() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.disarmLocked()
}

// armLocked starts a new timer generation. Caller must hold p.mu.
func (p *pollingSet) armLocked() {
	p.generation++
	p.ctx, p.cancel = context.WithCancel(context.Background())
	p.scheduleLocked(p.generation)
	level.Debug(p.logger).Log("msg", "polling timer started", "interval", p.interval)
}

// scheduleLocked registers the next expiry of generation gen. Caller must hold p.mu.
func (p *pollingSet) scheduleLocked(gen uint64) {
	p.timer = p.scheduler.AfterFunc(p.interval, func() { p.fire(gen) })
}

// disarmLocked stops the timer, if any. Caller must hold p.mu.
func (p *pollingSet) disarmLocked() {
	if p.timer == nil {
		return
	}
	p.timer.Stop()
	p.timer = nil
	p.cancel()
	p.generation++
	level.Debug(p.logger).Log("msg", "polling timer stopped")
}

// fire runs one tick for timer generation gen and re-arms while ids remain.
func (p *pollingSet) fire(gen uint64) {
	p.mu.Lock()
	if p.timer == nil || gen != p.generation {
		p.mu.Unlock()
		return
	}
	if len(p.ids) == 0 {
		p.disarmLocked()
		p.mu.Unlock()
		return
	}
	ctx := p.ctx
	p.mu.Unlock()

	p.action(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.timer == nil || gen != p.generation {
		return
	}
	if len(p.ids) == 0 {
		p.disarmLocked()
		return
	}
	p.scheduleLocked(gen)
}
