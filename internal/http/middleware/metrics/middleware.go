package metrics

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	httpCtx "github.com/bornholm/tasks/internal/http/context"
	"github.com/bornholm/tasks/internal/metrics"
)

const (
	RouteTasks   = "/api/tasks"
	RouteTask    = "/api/tasks/{id}"
	RouteWebUI   = "/"
	RouteMetrics = "/metrics/"
	RouteDocs    = "/docs/"
	RouteOther   = "other"

	MethodOther = "OTHER"
)

var knownMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// Middleware records the count and duration of every request.
// Labels only take values from a fixed set.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		basePath := httpCtx.BaseURL(r.Context()).Path

		route := normalizeRoute(basePath, r.URL.Path)
		method := normalizeMethod(r.Method)
		start := time.Now()

		wrapped := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(wrapped.statusCode)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.statusCode = code
		w.wroteHeader = true
	}

	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// normalizeRoute maps the request path, relative to basePath,
// onto one of the served routes.
func normalizeRoute(basePath string, path string) string {
	basePath = strings.TrimSuffix(basePath, "/")

	if basePath != "" {
		trimmed, found := strings.CutPrefix(path, basePath)
		if !found {
			return RouteOther
		}

		path = trimmed
	}

	switch {
	case path == RouteWebUI || path == "":
		return RouteWebUI
	case path == RouteTasks:
		return RouteTasks
	case strings.HasPrefix(path, RouteTasks+"/"):
		id := strings.TrimPrefix(path, RouteTasks+"/")
		if id == "" || strings.Contains(id, "/") {
			return RouteOther
		}
		return RouteTask
	case strings.HasPrefix(path, RouteMetrics):
		return RouteMetrics
	case strings.HasPrefix(path, RouteDocs):
		return RouteDocs
	default:
		return RouteOther
	}
}

func normalizeMethod(method string) string {
	if slices.Contains(knownMethods, method) {
		return method
	}

	return MethodOther
}
