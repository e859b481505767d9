package instrumented

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bornholm/tasks/internal/adapter/sqlite"
	"github.com/bornholm/tasks/internal/core/model"
	"github.com/bornholm/tasks/internal/core/port"
	"github.com/bornholm/tasks/internal/core/port/testsuite"
	"github.com/bornholm/tasks/internal/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestTaskStore(t *testing.T) {
	testsuite.TestTaskStore(t, func(t *testing.T) (port.TaskStore, error) {
		dsn := filepath.Join(t.TempDir(), "todo.db")
		return NewTaskStore(sqlite.NewStore(dsn)), nil
	})

	notFound := testutil.ToFloat64(metrics.StoreOperations.With(prometheus.Labels{
		metrics.LabelOperation: operationGet,
		metrics.LabelResult:    metrics.ResultNotFound,
	}))

	if notFound < 1 {
		t.Errorf("not found get operations: expected at least 1, got %v", notFound)
	}

	if created := testutil.ToFloat64(metrics.TotalCreatedTasks); created < 1 {
		t.Errorf("created tasks: expected at least 1, got %v", created)
	}
}

func TestUpdateTaskCountsOnlyChanges(t *testing.T) {
	ctx := context.Background()

	store := NewTaskStore(sqlite.NewStore(filepath.Join(t.TempDir(), "todo.db")))

	if err := store.Initialize(ctx); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	id, err := store.CreateTask(ctx, model.NewTask("Task", nil, "", nil))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	before := testutil.ToFloat64(metrics.TotalUpdatedTasks)

	if err := store.UpdateTask(ctx, id, model.TaskChanges{}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := before, testutil.ToFloat64(metrics.TotalUpdatedTasks); e != g {
		t.Errorf("updated tasks after empty changes: expected %v, got %v", e, g)
	}

	status := "Completed"
	if err := store.UpdateTask(ctx, id, model.TaskChanges{Status: &status}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := before+1, testutil.ToFloat64(metrics.TotalUpdatedTasks); e != g {
		t.Errorf("updated tasks: expected %v, got %v", e, g)
	}
}
