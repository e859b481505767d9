package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bornholm/tasks/internal/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

func TestHandler(t *testing.T) {
	// Make sure the vector exposes at least one series
	metrics.StoreOperations.With(prometheus.Labels{
		metrics.LabelOperation: "get",
		metrics.LabelResult:    metrics.ResultSuccess,
	}).Add(0)

	server := httptest.NewServer(NewHandler())
	defer server.Close()

	res, err := http.Get(server.URL + "/")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer res.Body.Close()

	if e, g := http.StatusOK, res.StatusCode; e != g {
		t.Fatalf("res.StatusCode: expected %d, got %d", e, g)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !strings.Contains(string(data), "tasks_store_operations_total") {
		t.Errorf("body should expose tasks_store_operations_total")
	}
}
