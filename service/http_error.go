package service

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler installs the explorer error handler on e.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), logger).Handler
}

// NewErrorCodeToStatusCodeMaps maps explorer error codes to HTTP statuses.
func NewErrorCodeToStatusCodeMaps() map[ErrorCode]int {
	return map[ErrorCode]int{
		ErrBadParameter:        http.StatusBadRequest,
		ErrEntityNotFound:      http.StatusNotFound,
		ErrInternalServerError: http.StatusInternalServerError,
	}
}

// HTTPErrorHandler renders errors returned by echo handlers as {"error": {...}} bodies.
type HTTPErrorHandler struct {
	errorCodeToHTTPStatusCodeMap map[ErrorCode]int
	logger                       log.Logger
}

// NewHTTPErrorHandler creates a new HTTPErrorHandler.
func NewHTTPErrorHandler(errorCodeToStatusCodeMaps map[ErrorCode]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		errorCodeToHTTPStatusCodeMap: errorCodeToStatusCodeMaps,
		logger:                       log.With(logger, "component", "http_error_handler"),
	}
}

func (h *HTTPErrorHandler) statusCode(errorCode ErrorCode) int {
	if status, ok := h.errorCodeToHTTPStatusCodeMap[errorCode]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Handler converts err into a status code and an ErrResponse body.
// Explorer errors use the code map. Echo HTTP errors keep their status: 404 is reported as entity_not_found,
// other 4xx and OpenAPI request validation failures as bad_parameter. Anything else is internal_server_error.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		body       *ExplorerError
		statusCode int
		he         *echo.HTTPError
	)
	switch {
	case errors.As(err, &he):
		code := ErrInternalServerError
		switch {
		case he.Code == http.StatusNotFound:
			code = ErrEntityNotFound
		case isRequestValidationError(he.Internal), he.Code >= http.StatusBadRequest && he.Code < http.StatusInternalServerError:
			code = ErrBadParameter
		}
		msg, _ := he.Message.(string)
		body = NewExplorerError(code, msg, err)
		statusCode = he.Code
	case AsExplorerError(err) != nil:
		body = AsExplorerError(err)
		statusCode = h.statusCode(body.Code)
	default:
		body = NewExplorerError(ErrInternalServerError, "an internal error has occurred", err)
		statusCode = http.StatusInternalServerError
	}

	logAt := level.Warn
	if statusCode >= http.StatusInternalServerError {
		logAt = level.Error
	}
	logAt(h.logger).Log(
		"msg", "HTTP request error",
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"status", statusCode,
		"err", err,
	)

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(statusCode)
		return
	}
	_ = c.JSON(statusCode, ErrResponse{Error: body})
}

func isRequestValidationError(err error) bool {
	var requestError *openapi3filter.RequestError
	return err != nil && errors.As(err, &requestError)
}

// ErrResponse is the error body returned by the HTTP API.
type ErrResponse struct {
	Error *ExplorerError `json:"error,omitempty"`
}
