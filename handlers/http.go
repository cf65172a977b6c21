// Package handlers contains the HTTP handlers of the explorer API.
package handlers

import (
	"fmt"
	"net/http"

	"myexplorer/domain"
	"myexplorer/helpers"
	"myexplorer/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// HTTPServer implements ServerInterface over one instances tree node and the stale-node queue its refreshes feed.
type HTTPServer struct {
	tree   interfaces.TreeNode
	stale  interfaces.StaleNodes
	spec   []byte
	logger log.Logger
}

// NewHTTPServer creates a new HTTPServer. spec is served as-is by GET /v1/openapi.yaml.
// Panics on nil tree, stale or logger and on empty spec.
func NewHTTPServer(tree interfaces.TreeNode, stale interfaces.StaleNodes, spec []byte, logger log.Logger) *HTTPServer {
	if len(spec) == 0 {
		panic("handlers.http.go: spec is required")
	}
	return &HTTPServer{
		tree:   helpers.NilPanic(tree, "handlers.http.go: tree is required"),
		stale:  helpers.NilPanic(stale, "handlers.http.go: stale is required"),
		spec:   spec,
		logger: log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer"),
	}
}

// GetChildren (GET /v1/children) renders the children, rebuilding them first unless refresh=false.
// A listing failure is rendered as an error node with status 200, the way the tree shows it.
func (h *HTTPServer) GetChildren(ectx echo.Context, params GetChildrenParams) error {
	var nodes []domain.Node
	if params.Refresh == nil || *params.Refresh {
		nodes = h.tree.GetChildren(ectx.Request().Context())
	} else {
		nodes = h.tree.Children()
	}
	return ectx.JSON(http.StatusOK, toChildrenResponse(h.tree.Label(), nodes, h.pendingSet()))
}

// UpdateChildren (POST /v1/children/update) rebuilds the children. A listing failure is a 500.
func (h *HTTPServer) UpdateChildren(ectx echo.Context) error {
	if err := h.tree.UpdateChildren(ectx.Request().Context()); err != nil {
		return fmt.Errorf("updateChildren failed, err: %w", err)
	}
	return ectx.NoContent(http.StatusNoContent)
}

// GetInstance (GET /v1/instances/{instance_id}) returns the current child or 404.
func (h *HTTPServer) GetInstance(ectx echo.Context, instanceId string) error {
	node, err := h.tree.GetInstanceNode(instanceId)
	if err != nil {
		return fmt.Errorf("getInstance failed, err: %w", err)
	}
	return ectx.JSON(http.StatusOK, toInstanceNode(node, h.pendingSet()))
}

// TrackInstance (POST /v1/instances/{instance_id}/track) watches a current child or returns 404.
func (h *HTTPServer) TrackInstance(ectx echo.Context, instanceId string) error {
	if err := h.tree.TrackPendingNode(instanceId); err != nil {
		return fmt.Errorf("trackInstance failed, err: %w", err)
	}
	level.Debug(h.logger).Log("msg", "instance tracked", "instance_id", instanceId)
	return ectx.JSON(http.StatusOK, toPendingResponse(h.tree.PendingIDs()))
}

// GetPending (GET /v1/pending) lists the watched ids.
func (h *HTTPServer) GetPending(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, toPendingResponse(h.tree.PendingIDs()))
}

// DrainStale (GET /v1/stale) hands out the nodes refreshed since the previous call.
func (h *HTTPServer) DrainStale(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, toStaleResponse(h.stale.Drain()))
}

func (h *HTTPServer) GetOpenAPI(ectx echo.Context) error {
	return ectx.Blob(http.StatusOK, "application/yaml", h.spec)
}

func (h *HTTPServer) pendingSet() map[string]struct{} {
	ids := h.tree.PendingIDs()
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
