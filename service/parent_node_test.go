package service

import (
	"context"
	"errors"
	"iter"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"myexplorer/domain"
	"myexplorer/helpers"
	"myexplorer/interfaces"
	"myexplorer/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parentNodeFixture struct {
	node      interfaces.TreeNode
	source    *mock.InstanceSourceMock
	refresher *mock.NodeRefresherMock
	scheduler *helpers.FakeScheduler
}

func newParentNodeFixture(t *testing.T, instances ...[]domain.InstanceSummary) *parentNodeFixture {
	t.Helper()
	f := &parentNodeFixture{
		source: &mock.InstanceSourceMock{
			ListInstancesFunc: func(ctx context.Context, filter domain.InstanceFilter) iter.Seq2[[]domain.InstanceSummary, error] {
				return batchesOf(instances...)
			},
		},
		refresher: &mock.NodeRefresherMock{},
		scheduler: helpers.NewFakeScheduler(helpers.TestNow()),
	}
	f.node = NewInstancesParentNode(
		ParentNodeConfig{Region: "eu-west-1", PollInterval: testInterval},
		f.source,
		f.refresher,
		f.scheduler,
		log.NewNopLogger(),
	)
	t.Cleanup(f.node.Close)
	return f
}

// liveStatuses makes GetInstanceStatus answer from the map; ids missing from it fail.
func (f *parentNodeFixture) liveStatuses(statuses map[string]domain.InstanceStatus) {
	f.source.GetInstanceStatusFunc = func(ctx context.Context, instanceID string) (domain.InstanceStatus, error) {
		status, ok := statuses[instanceID]
		if !ok {
			return "", errors.New("describe instance failed")
		}
		return status, nil
	}
}

func TestNewInstancesParentNode_Panics(t *testing.T) {
	source := &mock.InstanceSourceMock{}
	refresher := &mock.NodeRefresherMock{}
	sched := helpers.NewFakeScheduler(helpers.TestNow())
	logger := log.NewNopLogger()
	cfg := ParentNodeConfig{Region: "eu-west-1"}

	t.Run("region_empty", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.parent_node.go: region is required", func() {
			NewInstancesParentNode(ParentNodeConfig{}, source, refresher, sched, logger)
		})
	})
	t.Run("source_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.parent_node.go: source is required", func() {
			NewInstancesParentNode(cfg, nil, refresher, sched, logger)
		})
	})
	t.Run("refresher_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.parent_node.go: refresher is required", func() {
			NewInstancesParentNode(cfg, source, nil, sched, logger)
		})
	})
	t.Run("scheduler_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.parent_node.go: scheduler is required", func() {
			NewInstancesParentNode(cfg, source, refresher, nil, logger)
		})
	})
	t.Run("logger_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.parent_node.go: logger is required", func() {
			NewInstancesParentNode(cfg, source, refresher, sched, nil)
		})
	})
}

func TestInstancesParentNode_Label(t *testing.T) {
	f := newParentNodeFixture(t)
	assert.Equal(t, "Instances (eu-west-1)", f.node.Label())
}

func TestInstancesParentNode_GetChildren(t *testing.T) {
	ctx := context.Background()

	t.Run("no_instances_returns_placeholder", func(t *testing.T) {
		f := newParentNodeFixture(t)
		children := f.node.GetChildren(ctx)
		require.Len(t, children, 1)
		assert.IsType(t, domain.PlaceholderNode{}, children[0])
	})

	t.Run("empty_batches_return_placeholder", func(t *testing.T) {
		f := newParentNodeFixture(t, []domain.InstanceSummary{}, nil)
		children := f.node.GetChildren(ctx)
		require.Len(t, children, 1)
		assert.Equal(t, domain.NodeKindPlaceholder, children[0].Kind())
	})

	t.Run("unique_instances_one_node_each", func(t *testing.T) {
		f := newParentNodeFixture(t, []domain.InstanceSummary{
			{InstanceID: "i-1", Name: "web", Status: domain.StatusRunning},
			{InstanceID: "i-2", Name: "db", Status: domain.StatusStopped},
		})
		children := f.node.GetChildren(ctx)
		require.Len(t, children, 2)
		for _, child := range children {
			assert.IsType(t, &domain.InstanceNode{}, child)
		}
	})

	t.Run("duplicate_names_are_all_rendered", func(t *testing.T) {
		f := newParentNodeFixture(t, []domain.InstanceSummary{
			{InstanceID: "i-1", Name: "worker", Status: domain.StatusRunning},
			{InstanceID: "i-2", Name: "worker", Status: domain.StatusRunning},
			{InstanceID: "i-3", Name: "worker", Status: domain.StatusRunning},
		})
		children := f.node.GetChildren(ctx)
		require.Len(t, children, 3)
		for _, child := range children {
			assert.Equal(t, domain.NodeKindInstance, child.Kind())
			assert.Equal(t, "worker", child.Label())
		}
	})

	t.Run("sorted_by_name", func(t *testing.T) {
		names := []string{"ab", "bb", "bc", "aa", "cc", "cd"}
		batch := make([]domain.InstanceSummary, 0, len(names))
		for i, name := range names {
			batch = append(batch, domain.InstanceSummary{InstanceID: "i-" + string(rune('0'+i)), Name: name, Status: domain.StatusRunning})
		}
		f := newParentNodeFixture(t, batch)
		children := f.node.GetChildren(ctx)
		labels := make([]string, 0, len(children))
		for _, child := range children {
			labels = append(labels, child.Label())
		}
		assert.Equal(t, []string{"aa", "ab", "bb", "bc", "cc", "cd"}, labels)
	})

	t.Run("listing_failure_returns_error_node_and_leaves_polling_untouched", func(t *testing.T) {
		f := newParentNodeFixture(t, []domain.InstanceSummary{{InstanceID: "i-1", Name: "web", Status: domain.StatusPending}})
		require.NoError(t, f.node.UpdateChildren(ctx))
		require.Equal(t, []string{"i-1"}, f.node.PendingIDs())

		boom := errors.New("RequestLimitExceeded")
		f.source.ListInstancesFunc = func(ctx context.Context, filter domain.InstanceFilter) iter.Seq2[[]domain.InstanceSummary, error] {
			return failingAfter(boom, []domain.InstanceSummary{{InstanceID: "i-9", Status: domain.StatusPending}})
		}
		children := f.node.GetChildren(ctx)
		require.Len(t, children, 1)
		errNode, ok := children[0].(domain.ErrorNode)
		require.True(t, ok)
		assert.ErrorIs(t, errNode.Err, boom)
		assert.Equal(t, []string{"i-1"}, f.node.PendingIDs())

		_, err := f.node.GetInstanceNode("i-1")
		assert.NoError(t, err, "the previous child index survives a failed fetch")
	})

	t.Run("passes_filter_to_source", func(t *testing.T) {
		source := &mock.InstanceSourceMock{
			ListInstancesFunc: func(ctx context.Context, filter domain.InstanceFilter) iter.Seq2[[]domain.InstanceSummary, error] {
				return batchesOf()
			},
		}
		filter := domain.InstanceFilter{States: []domain.InstanceStatus{domain.StatusRunning}}
		node := NewInstancesParentNode(ParentNodeConfig{Region: "us-east-1", Filter: filter}, source, &mock.NodeRefresherMock{}, helpers.NewFakeScheduler(helpers.TestNow()), log.NewNopLogger())
		defer node.Close()
		node.GetChildren(ctx)
		require.Len(t, source.ListInstancesCalls(), 1)
		assert.Equal(t, filter, source.ListInstancesCalls()[0].Filter)
	})
}

func TestInstancesParentNode_UpdateChildren(t *testing.T) {
	ctx := context.Background()

	t.Run("tracks_transitional_instances", func(t *testing.T) {
		f := newParentNodeFixture(t, []domain.InstanceSummary{
			{InstanceID: "i-1", Name: "a", Status: domain.StatusPending},
			{InstanceID: "i-2", Name: "b", Status: domain.StatusStopped},
			{InstanceID: "i-3", Name: "c", Status: domain.StatusRunning},
		})
		require.NoError(t, f.node.UpdateChildren(ctx))
		assert.Equal(t, []string{"i-1"}, f.node.PendingIDs())
		assert.Equal(t, 1, f.scheduler.Pending())
	})

	t.Run("tracks_every_transitional_status", func(t *testing.T) {
		f := newParentNodeFixture(t, []domain.InstanceSummary{
			{InstanceID: "i-1", Status: domain.StatusPending},
			{InstanceID: "i-2", Status: domain.StatusStopping},
			{InstanceID: "i-3", Status: domain.StatusShuttingDown},
			{InstanceID: "i-4", Status: domain.StatusTerminated},
		})
		require.NoError(t, f.node.UpdateChildren(ctx))
		assert.Equal(t, []string{"i-1", "i-2", "i-3"}, f.node.PendingIDs())
	})

	t.Run("listing_failure_is_returned", func(t *testing.T) {
		boom := errors.New("unauthorized")
		f := newParentNodeFixture(t)
		f.source.ListInstancesFunc = func(ctx context.Context, filter domain.InstanceFilter) iter.Seq2[[]domain.InstanceSummary, error] {
			return failingAfter(boom)
		}
		err := f.node.UpdateChildren(ctx)
		require.ErrorIs(t, err, boom)
		assert.True(t, HasCode(err, ErrInternalServerError))
		assert.Empty(t, f.node.PendingIDs())
	})

	t.Run("rebuild_discards_vanished_children", func(t *testing.T) {
		f := newParentNodeFixture(t, []domain.InstanceSummary{{InstanceID: "i-1", Status: domain.StatusRunning}})
		require.NoError(t, f.node.UpdateChildren(ctx))
		f.source.ListInstancesFunc = func(ctx context.Context, filter domain.InstanceFilter) iter.Seq2[[]domain.InstanceSummary, error] {
			return batchesOf([]domain.InstanceSummary{{InstanceID: "i-2", Status: domain.StatusRunning}})
		}
		require.NoError(t, f.node.UpdateChildren(ctx))
		_, err := f.node.GetInstanceNode("i-1")
		assert.True(t, HasCode(err, ErrEntityNotFound))
		_, err = f.node.GetInstanceNode("i-2")
		assert.NoError(t, err)
	})

	t.Run("polling_set_persists_across_rebuilds", func(t *testing.T) {
		f := newParentNodeFixture(t, []domain.InstanceSummary{{InstanceID: "i-1", Status: domain.StatusRunning}})
		require.NoError(t, f.node.UpdateChildren(ctx))
		require.NoError(t, f.node.TrackPendingNode("i-1"))
		require.NoError(t, f.node.UpdateChildren(ctx))
		assert.Equal(t, []string{"i-1"}, f.node.PendingIDs())
	})

	t.Run("duplicate_ids_index_keeps_last_record", func(t *testing.T) {
		f := newParentNodeFixture(t, []domain.InstanceSummary{
			{InstanceID: "i-1", Name: "first", Status: domain.StatusRunning},
			{InstanceID: "i-1", Name: "second", Status: domain.StatusRunning},
		})
		children := f.node.GetChildren(ctx)
		assert.Len(t, children, 2)
		node, err := f.node.GetInstanceNode("i-1")
		require.NoError(t, err)
		assert.Equal(t, "second", node.Name())
	})
}

func TestInstancesParentNode_GetInstanceNode(t *testing.T) {
	f := newParentNodeFixture(t, []domain.InstanceSummary{
		{InstanceID: "i-1", Name: "web", Status: domain.StatusRunning},
		{InstanceID: "i-2", Name: "db", Status: domain.StatusRunning},
	})
	require.NoError(t, f.node.UpdateChildren(context.Background()))

	t.Run("known_id", func(t *testing.T) {
		node, err := f.node.GetInstanceNode("i-2")
		require.NoError(t, err)
		assert.Equal(t, "i-2", node.InstanceID())
		assert.Equal(t, "db", node.Name())
	})
	t.Run("unknown_id", func(t *testing.T) {
		node, err := f.node.GetInstanceNode("i-404")
		require.Error(t, err)
		assert.Nil(t, node)
		assert.True(t, HasCode(err, ErrEntityNotFound))
	})
}

func TestInstancesParentNode_TrackPendingNode(t *testing.T) {
	f := newParentNodeFixture(t, []domain.InstanceSummary{
		{InstanceID: "i-1", Name: "web", Status: domain.StatusRunning},
	})
	require.NoError(t, f.node.UpdateChildren(context.Background()))
	require.Empty(t, f.node.PendingIDs())

	t.Run("known_id_is_watched", func(t *testing.T) {
		require.NoError(t, f.node.TrackPendingNode("i-1"))
		assert.Equal(t, []string{"i-1"}, f.node.PendingIDs())
		require.NoError(t, f.node.TrackPendingNode("i-1"))
		assert.Len(t, f.node.PendingIDs(), 1)
	})
	t.Run("unknown_id_is_not_found", func(t *testing.T) {
		err := f.node.TrackPendingNode("i-404")
		require.Error(t, err)
		assert.True(t, HasCode(err, ErrEntityNotFound))
		assert.Equal(t, []string{"i-1"}, f.node.PendingIDs())
	})
}

func TestInstancesParentNode_Reconcile(t *testing.T) {
	ctx := context.Background()
	pending := []domain.InstanceSummary{
		{InstanceID: "i-1", Name: "web", Status: domain.StatusPending},
		{InstanceID: "i-2", Name: "db", Status: domain.StatusRunning},
	}

	t.Run("unchanged_status_keeps_watching_without_refresh", func(t *testing.T) {
		f := newParentNodeFixture(t, pending)
		f.liveStatuses(map[string]domain.InstanceStatus{"i-1": domain.StatusPending})
		require.NoError(t, f.node.UpdateChildren(ctx))

		f.scheduler.Advance(testInterval)
		assert.Len(t, f.source.GetInstanceStatusCalls(), 1)
		assert.Empty(t, f.refresher.RefreshNodeCalls())
		assert.Equal(t, []string{"i-1"}, f.node.PendingIDs())

		f.scheduler.Advance(testInterval)
		assert.Len(t, f.source.GetInstanceStatusCalls(), 2)
		assert.Empty(t, f.refresher.RefreshNodeCalls())
	})

	t.Run("changed_status_refreshes_once_and_stops_watching", func(t *testing.T) {
		f := newParentNodeFixture(t, pending)
		f.liveStatuses(map[string]domain.InstanceStatus{"i-1": domain.StatusRunning})
		require.NoError(t, f.node.UpdateChildren(ctx))

		f.scheduler.Advance(testInterval)
		calls := f.refresher.RefreshNodeCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "i-1", calls[0].Node.InstanceID())
		assert.Equal(t, domain.StatusRunning, calls[0].Node.Status())
		assert.Empty(t, f.node.PendingIDs())
		assert.Equal(t, 0, f.scheduler.Pending(), "timer disarmed once nothing is watched")

		f.scheduler.Advance(10 * testInterval)
		assert.Len(t, f.refresher.RefreshNodeCalls(), 1)
		assert.Len(t, f.source.GetInstanceStatusCalls(), 1)
	})

	t.Run("lookup_failure_does_not_abort_other_ids", func(t *testing.T) {
		f := newParentNodeFixture(t, []domain.InstanceSummary{
			{InstanceID: "i-1", Name: "a", Status: domain.StatusPending},
			{InstanceID: "i-2", Name: "b", Status: domain.StatusStopping},
		})
		f.liveStatuses(map[string]domain.InstanceStatus{"i-2": domain.StatusStopped})
		require.NoError(t, f.node.UpdateChildren(ctx))

		f.scheduler.Advance(testInterval)
		require.Len(t, f.refresher.RefreshNodeCalls(), 1)
		assert.Equal(t, "i-2", f.refresher.RefreshNodeCalls()[0].Node.InstanceID())
		assert.Equal(t, []string{"i-1"}, f.node.PendingIDs())
		assert.Equal(t, 1, f.scheduler.Pending())
	})

	t.Run("refresh_failure_still_stops_watching", func(t *testing.T) {
		f := newParentNodeFixture(t, pending)
		f.liveStatuses(map[string]domain.InstanceStatus{"i-1": domain.StatusRunning})
		f.refresher.RefreshNodeFunc = func(ctx context.Context, node *domain.InstanceNode) error {
			return errors.New("ui detached")
		}
		require.NoError(t, f.node.UpdateChildren(ctx))

		f.scheduler.Advance(testInterval)
		assert.Len(t, f.refresher.RefreshNodeCalls(), 1)
		assert.Empty(t, f.node.PendingIDs())
	})

	t.Run("vanished_child_is_dropped", func(t *testing.T) {
		f := newParentNodeFixture(t, pending)
		f.liveStatuses(map[string]domain.InstanceStatus{})
		require.NoError(t, f.node.UpdateChildren(ctx))
		f.source.ListInstancesFunc = func(ctx context.Context, filter domain.InstanceFilter) iter.Seq2[[]domain.InstanceSummary, error] {
			return batchesOf()
		}
		require.NoError(t, f.node.UpdateChildren(ctx))

		f.scheduler.Advance(testInterval)
		assert.Empty(t, f.source.GetInstanceStatusCalls())
		assert.Empty(t, f.node.PendingIDs())
	})

	t.Run("manually_tracked_node_refreshes_on_change", func(t *testing.T) {
		f := newParentNodeFixture(t, []domain.InstanceSummary{{InstanceID: "i-2", Name: "db", Status: domain.StatusRunning}})
		f.liveStatuses(map[string]domain.InstanceStatus{"i-2": domain.StatusStopping})
		require.NoError(t, f.node.UpdateChildren(ctx))
		require.NoError(t, f.node.TrackPendingNode("i-2"))

		f.scheduler.Advance(testInterval)
		require.Len(t, f.refresher.RefreshNodeCalls(), 1)
		node, err := f.node.GetInstanceNode("i-2")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusStopping, node.Status())
	})

	t.Run("rebuild_listing_settled_status_refreshes_and_stops_watching", func(t *testing.T) {
		f := newParentNodeFixture(t, pending)
		f.liveStatuses(map[string]domain.InstanceStatus{"i-1": domain.StatusRunning})
		require.NoError(t, f.node.UpdateChildren(ctx))
		require.Equal(t, []string{"i-1"}, f.node.PendingIDs())

		f.source.ListInstancesFunc = func(ctx context.Context, filter domain.InstanceFilter) iter.Seq2[[]domain.InstanceSummary, error] {
			return batchesOf([]domain.InstanceSummary{
				{InstanceID: "i-1", Name: "web", Status: domain.StatusRunning},
				{InstanceID: "i-2", Name: "db", Status: domain.StatusRunning},
			})
		}
		require.NoError(t, f.node.UpdateChildren(ctx))

		calls := f.refresher.RefreshNodeCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "i-1", calls[0].Node.InstanceID())
		assert.Equal(t, domain.StatusRunning, calls[0].Node.Status())
		assert.Empty(t, f.node.PendingIDs())

		for range 5 {
			f.scheduler.Advance(testInterval)
		}
		assert.Empty(t, f.source.GetInstanceStatusCalls(), "a settled id must not be polled")
		assert.Len(t, f.refresher.RefreshNodeCalls(), 1)
		assert.Equal(t, 0, f.scheduler.Pending())
	})

	t.Run("rebuild_listing_another_transitional_status_refreshes_and_keeps_watching", func(t *testing.T) {
		f := newParentNodeFixture(t, pending)
		f.liveStatuses(map[string]domain.InstanceStatus{"i-1": domain.StatusStopping})
		require.NoError(t, f.node.UpdateChildren(ctx))

		f.source.ListInstancesFunc = func(ctx context.Context, filter domain.InstanceFilter) iter.Seq2[[]domain.InstanceSummary, error] {
			return batchesOf([]domain.InstanceSummary{{InstanceID: "i-1", Name: "web", Status: domain.StatusStopping}})
		}
		require.NoError(t, f.node.UpdateChildren(ctx))
		require.Len(t, f.refresher.RefreshNodeCalls(), 1)
		assert.Equal(t, []string{"i-1"}, f.node.PendingIDs())

		f.scheduler.Advance(testInterval)
		assert.Len(t, f.source.GetInstanceStatusCalls(), 1)
		assert.Len(t, f.refresher.RefreshNodeCalls(), 1, "stopping is unchanged since the rebuild")
	})

	t.Run("rebuild_keeps_manually_tracked_stable_node", func(t *testing.T) {
		f := newParentNodeFixture(t, pending)
		f.liveStatuses(map[string]domain.InstanceStatus{"i-1": domain.StatusPending, "i-2": domain.StatusRunning})
		require.NoError(t, f.node.UpdateChildren(ctx))
		require.NoError(t, f.node.TrackPendingNode("i-2"))

		require.NoError(t, f.node.UpdateChildren(ctx))
		assert.Empty(t, f.refresher.RefreshNodeCalls())
		assert.Equal(t, []string{"i-1", "i-2"}, f.node.PendingIDs())
	})

	t.Run("no_settled_id_survives_refresh_cycles", func(t *testing.T) {
		f := newParentNodeFixture(t, pending)
		live := map[string]domain.InstanceStatus{"i-1": domain.StatusPending}
		f.liveStatuses(live)
		listed := domain.StatusPending
		f.source.ListInstancesFunc = func(ctx context.Context, filter domain.InstanceFilter) iter.Seq2[[]domain.InstanceSummary, error] {
			return batchesOf([]domain.InstanceSummary{{InstanceID: "i-1", Name: "web", Status: listed}})
		}
		require.NoError(t, f.node.UpdateChildren(ctx))

		for cycle := range 4 {
			f.scheduler.Advance(testInterval)
			if cycle == 1 {
				live["i-1"] = domain.StatusRunning
				listed = domain.StatusRunning
			}
			require.NoError(t, f.node.UpdateChildren(ctx))
		}
		assert.Empty(t, f.node.PendingIDs())
		assert.Len(t, f.refresher.RefreshNodeCalls(), 1)

		f.scheduler.Advance(testInterval)
		assert.Equal(t, 0, f.scheduler.Pending())
	})

	t.Run("close_stops_reconciliation", func(t *testing.T) {
		f := newParentNodeFixture(t, pending)
		f.liveStatuses(map[string]domain.InstanceStatus{"i-1": domain.StatusRunning})
		require.NoError(t, f.node.UpdateChildren(ctx))

		f.node.Close()
		assert.Empty(t, f.node.PendingIDs())
		assert.Equal(t, 0, f.scheduler.Pending())
		f.scheduler.Advance(10 * testInterval)
		assert.Empty(t, f.refresher.RefreshNodeCalls())
		assert.Empty(t, f.source.GetInstanceStatusCalls())
	})
}

func TestInstancesParentNode_Children(t *testing.T) {
	f := newParentNodeFixture(t, []domain.InstanceSummary{{InstanceID: "i-1", Name: "web", Status: domain.StatusRunning}})

	children := f.node.Children()
	require.Len(t, children, 1)
	assert.Equal(t, domain.NodeKindPlaceholder, children[0].Kind(), "nothing built yet")
	assert.Empty(t, f.source.ListInstancesCalls())

	require.NoError(t, f.node.UpdateChildren(context.Background()))
	children = f.node.Children()
	require.Len(t, children, 1)
	assert.Equal(t, "web", children[0].Label())
	assert.Len(t, f.source.ListInstancesCalls(), 1)
}

func TestInstancesParentNode_ConcurrentUse(t *testing.T) {
	ctx := context.Background()
	var lookups atomic.Int64
	source := &mock.InstanceSourceMock{
		ListInstancesFunc: func(ctx context.Context, filter domain.InstanceFilter) iter.Seq2[[]domain.InstanceSummary, error] {
			return batchesOf([]domain.InstanceSummary{
				{InstanceID: "i-1", Name: "web", Status: domain.StatusPending},
				{InstanceID: "i-2", Name: "db", Status: domain.StatusRunning},
			})
		},
		GetInstanceStatusFunc: func(ctx context.Context, instanceID string) (domain.InstanceStatus, error) {
			lookups.Add(1)
			return domain.StatusPending, nil
		},
	}
	node := NewInstancesParentNode(
		ParentNodeConfig{Region: "eu-west-1", PollInterval: time.Millisecond},
		source,
		&mock.NodeRefresherMock{},
		NewScheduler(time.Now),
		log.NewNopLogger(),
	)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				switch i % 3 {
				case 0:
					assert.NoError(t, node.UpdateChildren(ctx))
				case 1:
					_ = node.TrackPendingNode("i-2")
				default:
					node.Close()
				}
			}
		}()
	}
	wg.Wait()

	node.Close()
	assert.Empty(t, node.PendingIDs())
	// a tick that passed its context check before Close may still finish one lookup
	time.Sleep(20 * time.Millisecond)
	settled := lookups.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, lookups.Load(), "no tick may run after Close")
}
