package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bornholm/tasks/internal/core/model"
	"github.com/bornholm/tasks/internal/core/port"
	"github.com/bornholm/tasks/internal/core/port/testsuite"
	"github.com/pkg/errors"
)

func TestStore(t *testing.T) {
	testsuite.TestTaskStore(t, func(t *testing.T) (port.TaskStore, error) {
		dsn := filepath.Join(t.TempDir(), "todo.db")
		return NewStore(dsn), nil
	})
}

func TestStorePersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "todo.db")

	first := NewStore(dsn)
	if err := first.Initialize(ctx); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	id, err := first.CreateTask(ctx, model.NewTask("Persisted", nil, "", nil))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := os.Stat(dsn); err != nil {
		t.Fatalf("database file should exist: %+v", errors.WithStack(err))
	}

	second := NewStore(dsn)
	if err := second.Initialize(ctx); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	task, err := second.GetTaskByID(ctx, id)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Persisted", task.Title; e != g {
		t.Errorf("task.Title: expected %s, got %s", e, g)
	}
}

func TestStoreCanceledContext(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "todo.db")
	store := NewStore(dsn)

	if err := store.Initialize(context.Background()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.QueryTasks(ctx); err == nil {
		t.Errorf("err: expected an error with a canceled context")
	}
}

func TestParseTimestamp(t *testing.T) {
	for _, raw := range []string{"2024-03-01 10:20:30", "2024-03-01T10:20:30Z", "2024-03-01T10:20:30.123456789Z"} {
		ts, err := parseTimestamp(raw)
		if err != nil {
			t.Errorf("parseTimestamp(%q): %+v", raw, err)
			continue
		}

		if e, g := 2024, ts.Year(); e != g {
			t.Errorf("parseTimestamp(%q).Year(): expected %d, got %d", raw, e, g)
		}
	}

	if _, err := parseTimestamp("yesterday"); err == nil {
		t.Errorf("parseTimestamp(\"yesterday\"): expected an error")
	}
}
