package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// NodeKind values of Node.Kind.
const (
	NodeKindPlaceholder = "placeholder"
	NodeKindError       = "error"
	NodeKindInstance    = "instance"
)

// ChildrenResponse is the body of GET /v1/children.
type ChildrenResponse struct {
	Label    string `json:"label"`
	Children []Node `json:"children"`
}

// Node is one rendered child. Instance is set for kind instance; Message for placeholder and error.
type Node struct {
	Kind     string        `json:"kind"`
	Label    string        `json:"label"`
	Message  *string       `json:"message,omitempty"`
	Instance *InstanceNode `json:"instance,omitempty"`
}

// InstanceNode is the body of GET /v1/instances/{instance_id}.
type InstanceNode struct {
	InstanceId string `json:"instance_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	Pending    bool   `json:"pending"`
}

// PendingResponse lists watched instance ids.
type PendingResponse struct {
	InstanceIds []string `json:"instance_ids"`
}

// StaleResponse is the body of GET /v1/stale.
type StaleResponse struct {
	Nodes []StaleNode `json:"nodes"`
}

type StaleNode struct {
	InstanceId string    `json:"instance_id"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	MarkedAt   time.Time `json:"marked_at"`
}

// GetChildrenParams defines parameters for GetChildren.
type GetChildrenParams struct {
	// Refresh rebuilds the children before rendering; nil means true.
	Refresh *bool `form:"refresh,omitempty" json:"refresh,omitempty"`
}

// ServerInterface represents all server handlers of api/explorer.openapi.yaml.
type ServerInterface interface {
	// Render the children of the instances node.
	// (GET /v1/children)
	GetChildren(ctx echo.Context, params GetChildrenParams) error
	// Rebuild the children from the instance source.
	// (POST /v1/children/update)
	UpdateChildren(ctx echo.Context) error
	// Look up a current child by instance id.
	// (GET /v1/instances/{instance_id})
	GetInstance(ctx echo.Context, instanceId string) error
	// Watch a current child until its status changes.
	// (POST /v1/instances/{instance_id}/track)
	TrackInstance(ctx echo.Context, instanceId string) error
	// List the watched instance ids.
	// (GET /v1/pending)
	GetPending(ctx echo.Context) error
	// Return and forget the nodes refreshed since the previous call.
	// (GET /v1/stale)
	DrainStale(ctx echo.Context) error
	// (GET /v1/openapi.yaml)
	GetOpenAPI(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetChildren(ctx echo.Context) error {
	var params GetChildrenParams
	err := runtime.BindQueryParameter("form", true, false, "refresh", ctx.QueryParams(), &params.Refresh)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter refresh: %s", err))
	}
	return w.Handler.GetChildren(ctx, params)
}

func (w *ServerInterfaceWrapper) UpdateChildren(ctx echo.Context) error {
	return w.Handler.UpdateChildren(ctx)
}

func (w *ServerInterfaceWrapper) GetInstance(ctx echo.Context) error {
	instanceId, err := bindInstanceID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetInstance(ctx, instanceId)
}

func (w *ServerInterfaceWrapper) TrackInstance(ctx echo.Context) error {
	instanceId, err := bindInstanceID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.TrackInstance(ctx, instanceId)
}

func (w *ServerInterfaceWrapper) GetPending(ctx echo.Context) error {
	return w.Handler.GetPending(ctx)
}

func (w *ServerInterfaceWrapper) DrainStale(ctx echo.Context) error {
	return w.Handler.DrainStale(ctx)
}

func (w *ServerInterfaceWrapper) GetOpenAPI(ctx echo.Context) error {
	return w.Handler.GetOpenAPI(ctx)
}

func bindInstanceID(ctx echo.Context) (string, error) {
	var instanceId string
	err := runtime.BindStyledParameterWithOptions("simple", "instance_id", ctx.Param("instance_id"), &instanceId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter instance_id: %s", err))
	}
	return instanceId, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group the handlers are registered on.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}
	router.GET("/v1/children", w.GetChildren)
	router.POST("/v1/children/update", w.UpdateChildren)
	router.GET("/v1/instances/:instance_id", w.GetInstance)
	router.POST("/v1/instances/:instance_id/track", w.TrackInstance)
	router.GET("/v1/pending", w.GetPending)
	router.GET("/v1/stale", w.DrainStale)
	router.GET("/v1/openapi.yaml", w.GetOpenAPI)
}
