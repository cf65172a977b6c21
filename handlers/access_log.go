package handlers

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// AccessLog wraps next and logs one line per request with the status code, the bytes written and the duration.
// 5xx responses are logged at warn, everything else at debug.
func AccessLog(next http.Handler, logger log.Logger) http.Handler {
	logger = log.WithPrefix(logger, "component", "access_log")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		logAt := level.Debug
		if m.Code >= http.StatusInternalServerError {
			logAt = level.Warn
		}
		logAt(logger).Log(
			"msg", "HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", m.Code,
			"bytes", m.Written,
			"duration", m.Duration,
		)
	})
}
