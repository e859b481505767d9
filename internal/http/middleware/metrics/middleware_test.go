package metrics

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	httpCtx "github.com/bornholm/tasks/internal/http/context"
	"github.com/bornholm/tasks/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNormalizeRoute(t *testing.T) {
	type testCase struct {
		BasePath string
		Path     string
		Expected string
	}

	testCases := []testCase{
		{BasePath: "/", Path: "/api/tasks", Expected: RouteTasks},
		{BasePath: "/", Path: "/api/tasks/42", Expected: RouteTask},
		{BasePath: "/", Path: "/api/tasks/not-a-number", Expected: RouteTask},
		{BasePath: "/", Path: "/api/tasks/42/extra", Expected: RouteOther},
		{BasePath: "/", Path: "/api/tasks/", Expected: RouteOther},
		{BasePath: "/", Path: "/", Expected: RouteWebUI},
		{BasePath: "/", Path: "/metrics/", Expected: RouteMetrics},
		{BasePath: "/", Path: "/docs/openapi.json", Expected: RouteDocs},
		{BasePath: "/", Path: "/junk-1/x", Expected: RouteOther},
		{BasePath: "/app/", Path: "/app/api/tasks/1", Expected: RouteTask},
		{BasePath: "/app/", Path: "/app/", Expected: RouteWebUI},
		{BasePath: "/app/", Path: "/api/tasks", Expected: RouteOther},
	}

	for _, tc := range testCases {
		t.Run(tc.BasePath+" "+tc.Path, func(t *testing.T) {
			if e, g := tc.Expected, normalizeRoute(tc.BasePath, tc.Path); e != g {
				t.Errorf("normalizeRoute(%s, %s): expected '%s', got '%s'", tc.BasePath, tc.Path, e, g)
			}
		})
	}
}

func TestNormalizeMethod(t *testing.T) {
	if e, g := http.MethodPatch, normalizeMethod(http.MethodPatch); e != g {
		t.Errorf("normalizeMethod(): expected '%s', got '%s'", e, g)
	}

	if e, g := MethodOther, normalizeMethod("FOOBAR"); e != g {
		t.Errorf("normalizeMethod(): expected '%s', got '%s'", e, g)
	}
}

func TestMiddleware(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	counter := metrics.HTTPRequests.WithLabelValues(http.MethodGet, RouteTask, "404")
	before := testutil.ToFloat64(counter)

	for _, path := range []string{"/api/tasks/1", "/api/tasks/2"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	if e, g := before+2, testutil.ToFloat64(counter); e != g {
		t.Errorf("requests: expected %v, got %v", e, g)
	}
}

func TestMiddlewareBoundedSeries(t *testing.T) {
	handler := Middleware(http.NotFoundHandler())

	// Registers the series used by unknown paths
	req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	unknownMethod := httptest.NewRequest("FOOBAR", "/unknown", nil)
	handler.ServeHTTP(httptest.NewRecorder(), unknownMethod)

	before := testutil.CollectAndCount(metrics.HTTPRequests)

	for i := range 500 {
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/junk-%x/x", i), nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		req = httptest.NewRequest(fmt.Sprintf("M%d", i), fmt.Sprintf("/junk-%x", i), nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	if e, g := before, testutil.CollectAndCount(metrics.HTTPRequests); e != g {
		t.Errorf("series: expected %d, got %d", e, g)
	}
}

func TestMiddlewareBaseURL(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	counter := metrics.HTTPRequests.WithLabelValues(http.MethodGet, RouteTasks, "200")
	before := testutil.ToFloat64(counter)

	ctx := httpCtx.SetBaseURL(context.Background(), &url.URL{Path: "/app/"})
	req := httptest.NewRequest(http.MethodGet, "/app/api/tasks", nil).WithContext(ctx)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if e, g := before+1, testutil.ToFloat64(counter); e != g {
		t.Errorf("requests: expected %v, got %v", e, g)
	}
}
