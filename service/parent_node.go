package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"myexplorer/domain"
	"myexplorer/helpers"
	"myexplorer/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	msgNoInstances   = "[No instances found]"
	msgListingFailed = "Failed to load instances"
)

// ParentNodeConfig holds the tunables of an instancesParentNode.
// Region labels the node and its logs; Filter is passed to every ListInstances call; PollInterval is the
// reconciliation tick interval (DefaultPollInterval when zero).
type ParentNodeConfig struct {
	Region       string
	Filter       domain.InstanceFilter
	PollInterval time.Duration
}

// instancesParentNode implements interfaces.TreeNode for one region. It rebuilds its children from the
// instance source on every GetChildren/UpdateChildren and keeps transitional children in a polling set
// whose tick (reconcilePending) refreshes a child once its live status differs from the last-seen one.
// Fields: cfg, source, refresher, logger, polling; updateMu serializes rebuilds; under mu: children
// (ordered list, duplicates kept) and index (id → node, last record wins).
type instancesParentNode struct {
	cfg       ParentNodeConfig
	source    interfaces.InstanceSource
	refresher interfaces.NodeRefresher
	logger    log.Logger
	polling   interfaces.PollingSet

	updateMu sync.Mutex

	mu       sync.RWMutex
	children []*domain.InstanceNode
	index    map[string]*domain.InstanceNode
}

// NewInstancesParentNode creates the tree node with an empty child set and a disarmed polling set. Panics on
// empty region or nil source, refresher, scheduler or logger.
//
// Parameters: cfg: region, filter and poll interval; source: instance listing and status lookup;
// refresher: refresh signal into the UI layer; scheduler: timer source for the polling set; logger: component logger.
//
// Called from cmd/main.
func NewInstancesParentNode(
	cfg ParentNodeConfig,
	source interfaces.InstanceSource,
	refresher interfaces.NodeRefresher,
	scheduler interfaces.Scheduler,
	logger log.Logger,
) interfaces.TreeNode {
	cfg.Region = helpers.StrPanic(cfg.Region, "service.parent_node.go: region is required")
	if cfg.PollInterval == 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	logger = log.With(helpers.NilPanic(logger, "service.parent_node.go: logger is required"), "component", "instances_parent_node", "region", cfg.Region)
	p := &instancesParentNode{
		cfg:       cfg,
		source:    helpers.NilPanic(source, "service.parent_node.go: source is required"),
		refresher: helpers.NilPanic(refresher, "service.parent_node.go: refresher is required"),
		logger:    logger,
		index:     make(map[string]*domain.InstanceNode),
	}
	p.polling = NewPollingSet(cfg.PollInterval, helpers.NilPanic(scheduler, "service.parent_node.go: scheduler is required"), p.reconcilePending, logger)
	return p
}

func (p *instancesParentNode) Label() string {
	return fmt.Sprintf("Instances (%s)", p.cfg.Region)
}

// GetChildren runs UpdateChildren and renders the result: one ErrorNode on listing failure, one PlaceholderNode
// when the region is empty, otherwise the ordered instance nodes.
func (p *instancesParentNode) GetChildren(ctx context.Context) []domain.Node {
	if err := p.UpdateChildren(ctx); err != nil {
		return []domain.Node{domain.ErrorNode{Message: msgListingFailed, Err: err}}
	}
	return p.Children()
}

func (p *instancesParentNode) Children() []domain.Node {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if len(p.children) == 0 {
		return []domain.Node{domain.PlaceholderNode{Message: msgNoInstances}}
	}
	out := make([]domain.Node, 0, len(p.children))
	for _, child := range p.children {
		out = append(out, child)
	}
	return out
}

// UpdateChildren drains the instance source, swaps in the new list and index, settles the ids that were already
// watched, then watches every child in a transitional status. Only nodes of the new build are ever added to the
// polling set.
func (p *instancesParentNode) UpdateChildren(ctx context.Context) error {
	p.updateMu.Lock()
	defer p.updateMu.Unlock()

	children, index, err := BuildChildren(p.source.ListInstances(ctx, p.cfg.Filter), p.refreshNode)
	if err != nil {
		level.Error(p.logger).Log("msg", "list instances failed", "err", err)
		return NewListingError(p.cfg.Region, err)
	}

	p.mu.Lock()
	previous := p.index
	p.children = children
	p.index = index
	p.mu.Unlock()

	p.settleWatched(ctx, previous, index)

	tracked := 0
	for _, child := range children {
		if child.Status().IsTransitional() {
			p.polling.Add(child.InstanceID())
			tracked++
		}
	}
	level.Debug(p.logger).Log("msg", "children updated", "children", len(children), "unique_ids", len(index), "transitional", tracked)
	return nil
}

// GetInstanceNode returns the current child with the given id.
func (p *instancesParentNode) GetInstanceNode(id string) (*domain.InstanceNode, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	node, ok := p.index[id]
	if !ok {
		return nil, NewNotAChildError(id, p.Label())
	}
	return node, nil
}

// TrackPendingNode watches a current child.
func (p *instancesParentNode) TrackPendingNode(id string) error {
	if _, err := p.GetInstanceNode(id); err != nil {
		return fmt.Errorf("trackPendingNode: %w", err)
	}
	p.polling.Add(id)
	return nil
}

func (p *instancesParentNode) PendingIDs() []string {
	return p.polling.IDs()
}

// Close releases the polling timer.
func (p *instancesParentNode) Close() {
	p.polling.Clear()
	p.polling.ClearTimer()
}

// settleWatched checks the watched ids against a rebuild. An id whose rebuilt node lists a status other than the one
// its previous node held has changed between ticks: the new node is refreshed and the id is no longer watched (the
// transitional scan that follows watches it again if it is still moving). Ids that were not rebuilt are dropped. An id
// whose status did not change stays watched, whatever that status is, so a manually tracked running node is kept.
func (p *instancesParentNode) settleWatched(ctx context.Context, previous, current map[string]*domain.InstanceNode) {
	for _, id := range p.polling.IDs() {
		node, ok := current[id]
		if !ok {
			level.Info(p.logger).Log("msg", "watched instance is no longer a child", "instance_id", id)
			p.polling.Remove(id)
			continue
		}
		old, ok := previous[id]
		if !ok || old.Status() == node.Status() {
			continue
		}
		if err := node.Refresh(ctx); err != nil {
			level.Warn(p.logger).Log("msg", "node refresh failed", "instance_id", id, "err", err)
		}
		p.polling.Remove(id)
		level.Info(p.logger).Log("msg", "instance status changed", "instance_id", id, "from", old.Status(), "to", node.Status(), "seen_by", "rebuild")
	}
}

// reconcilePending is the polling set's tick. Each watched id is looked up live; a changed status is recorded
// on the node, the node is refreshed and the id stops being watched. A lookup failure keeps the id for the
// next tick. Ids that are no longer children are dropped.
func (p *instancesParentNode) reconcilePending(ctx context.Context) {
	for _, id := range p.polling.IDs() {
		if ctx.Err() != nil {
			return
		}
		node, err := p.GetInstanceNode(id)
		if err != nil {
			level.Info(p.logger).Log("msg", "watched instance is no longer a child", "instance_id", id)
			p.polling.Remove(id)
			continue
		}
		status, err := p.source.GetInstanceStatus(ctx, id)
		if err != nil {
			level.Warn(p.logger).Log("msg", "instance status lookup failed", "instance_id", id, "err", err)
			continue
		}
		previous := node.Status()
		if status == previous {
			continue
		}
		node.SetStatus(status)
		if err := node.Refresh(ctx); err != nil {
			level.Warn(p.logger).Log("msg", "node refresh failed", "instance_id", id, "err", err)
		}
		p.polling.Remove(id)
		level.Info(p.logger).Log("msg", "instance status changed", "instance_id", id, "from", previous, "to", status)
	}
}

// refreshNode is the domain.RefreshFunc attached to every child.
func (p *instancesParentNode) refreshNode(ctx context.Context, node *domain.InstanceNode) error {
	return p.refresher.RefreshNode(ctx, node)
}
