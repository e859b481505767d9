package testsuite

import (
	"context"
	"testing"

	"github.com/bornholm/tasks/internal/core/model"
	"github.com/bornholm/tasks/internal/core/port"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func TestTaskStore(t *testing.T, factory func(t *testing.T) (port.TaskStore, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store port.TaskStore) error
	}

	var testCases []testCase = []testCase{
		{
			Name: "InitializeIsIdempotent",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				for range 3 {
					if err := store.Initialize(ctx); err != nil {
						return errors.WithStack(err)
					}
				}

				return nil
			},
		},
		{
			Name: "CreateWithTitleOnly",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				id, err := store.CreateTask(ctx, model.NewTask("Title only", nil, "", nil))
				if err != nil {
					return errors.WithStack(err)
				}

				task, err := store.GetTaskByID(ctx, id)
				if err != nil {
					return errors.WithStack(err)
				}

				t.Logf("task: %s", spew.Sdump(task))

				if e, g := id, task.ID; e != g {
					t.Errorf("task.ID: expected %d, got %d", e, g)
				}

				if e, g := "Title only", task.Title; e != g {
					t.Errorf("task.Title: expected %s, got %s", e, g)
				}

				if e, g := model.DefaultTaskStatus, task.Status; e != g {
					t.Errorf("task.Status: expected %s, got %s", e, g)
				}

				if task.Description != nil {
					t.Errorf("task.Description: expected nil, got %s", *task.Description)
				}

				if task.DueDate != nil {
					t.Errorf("task.DueDate: expected nil, got %s", *task.DueDate)
				}

				if task.CreatedAt.IsZero() {
					t.Errorf("task.CreatedAt should not be zero value")
				}

				return nil
			},
		},
		{
			Name: "CreateWithAllFields",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				description := "Testing Description"
				dueDate := "2023-12-31"

				id, err := store.CreateTask(ctx, model.NewTask("Test Task", &description, "In Progress", &dueDate))
				if err != nil {
					return errors.WithStack(err)
				}

				task, err := store.GetTaskByID(ctx, id)
				if err != nil {
					return errors.WithStack(err)
				}

				if task.Description == nil || *task.Description != description {
					t.Errorf("task.Description: expected %s, got %v", description, task.Description)
				}

				if task.DueDate == nil || *task.DueDate != dueDate {
					t.Errorf("task.DueDate: expected %s, got %v", dueDate, task.DueDate)
				}

				if e, g := "In Progress", task.Status; e != g {
					t.Errorf("task.Status: expected %s, got %s", e, g)
				}

				return nil
			},
		},
		{
			Name: "UniqueIdentifiers",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				seen := map[model.TaskID]struct{}{}

				total := 10
				for i := range total {
					id, err := store.CreateTask(ctx, model.NewTask("Task", nil, "", nil))
					if err != nil {
						return errors.WithStack(err)
					}

					if _, exists := seen[id]; exists {
						t.Errorf("task #%d: id %d was already assigned", i, id)
					}

					seen[id] = struct{}{}
				}

				tasks, err := store.QueryTasks(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				if len(tasks) < total {
					t.Fatalf("len(tasks): expected at least %d, got %d", total, len(tasks))
				}

				counts := map[model.TaskID]int{}
				for _, task := range tasks {
					counts[task.ID]++
				}

				for id := range seen {
					if e, g := 1, counts[id]; e != g {
						t.Errorf("counts[%d]: expected %d, got %d", id, e, g)
					}
				}

				return nil
			},
		},
		{
			Name: "QueryNewestFirst",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				first, err := store.CreateTask(ctx, model.NewTask("First", nil, "", nil))
				if err != nil {
					return errors.WithStack(err)
				}

				second, err := store.CreateTask(ctx, model.NewTask("Second", nil, "", nil))
				if err != nil {
					return errors.WithStack(err)
				}

				tasks, err := store.QueryTasks(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				if len(tasks) < 2 {
					t.Fatalf("len(tasks): expected at least 2, got %d", len(tasks))
				}

				if e, g := second, tasks[0].ID; e != g {
					t.Errorf("tasks[0].ID: expected %d, got %d", e, g)
				}

				if e, g := first, tasks[1].ID; e != g {
					t.Errorf("tasks[1].ID: expected %d, got %d", e, g)
				}

				for i := 1; i < len(tasks); i++ {
					if tasks[i-1].ID <= tasks[i].ID {
						t.Errorf("tasks[%d].ID (%d) should be greater than tasks[%d].ID (%d)", i-1, tasks[i-1].ID, i, tasks[i].ID)
					}
				}

				return nil
			},
		},
		{
			Name: "GetUnknownTask",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				_, err := store.GetTaskByID(ctx, model.TaskID(9999))
				if !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "UpdateStatusOnly",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				description := "Keep me"
				dueDate := "2024-01-01"

				id, err := store.CreateTask(ctx, model.NewTask("Task to Update", &description, "", &dueDate))
				if err != nil {
					return errors.WithStack(err)
				}

				status := "Completed"
				if err := store.UpdateTask(ctx, id, model.TaskChanges{Status: &status}); err != nil {
					return errors.WithStack(err)
				}

				task, err := store.GetTaskByID(ctx, id)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := status, task.Status; e != g {
					t.Errorf("task.Status: expected %s, got %s", e, g)
				}

				if e, g := "Task to Update", task.Title; e != g {
					t.Errorf("task.Title: expected %s, got %s", e, g)
				}

				if task.Description == nil || *task.Description != description {
					t.Errorf("task.Description: expected %s, got %v", description, task.Description)
				}

				if task.DueDate == nil || *task.DueDate != dueDate {
					t.Errorf("task.DueDate: expected %s, got %v", dueDate, task.DueDate)
				}

				return nil
			},
		},
		{
			Name: "UpdateAllFields",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				id, err := store.CreateTask(ctx, model.NewTask("Before", nil, "", nil))
				if err != nil {
					return errors.WithStack(err)
				}

				title := "After"
				description := "Now described"
				status := "Completed"
				dueDate := "2025-06-30"

				changes := model.TaskChanges{
					Title:       &title,
					Description: &description,
					Status:      &status,
					DueDate:     &dueDate,
				}

				if err := store.UpdateTask(ctx, id, changes); err != nil {
					return errors.WithStack(err)
				}

				task, err := store.GetTaskByID(ctx, id)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := title, task.Title; e != g {
					t.Errorf("task.Title: expected %s, got %s", e, g)
				}

				if task.Description == nil || *task.Description != description {
					t.Errorf("task.Description: expected %s, got %v", description, task.Description)
				}

				if e, g := status, task.Status; e != g {
					t.Errorf("task.Status: expected %s, got %s", e, g)
				}

				if task.DueDate == nil || *task.DueDate != dueDate {
					t.Errorf("task.DueDate: expected %s, got %v", dueDate, task.DueDate)
				}

				return nil
			},
		},
		{
			Name: "DeleteTask",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				id, err := store.CreateTask(ctx, model.NewTask("Delete Me", nil, "", nil))
				if err != nil {
					return errors.WithStack(err)
				}

				deleted, err := store.DeleteTask(ctx, id)
				if err != nil {
					return errors.WithStack(err)
				}

				if !deleted {
					t.Errorf("deleted: expected true, got false")
				}

				if _, err := store.GetTaskByID(ctx, id); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got %+v", err)
				}

				deleted, err = store.DeleteTask(ctx, id)
				if err != nil {
					return errors.WithStack(err)
				}

				if deleted {
					t.Errorf("deleted: expected false on second delete, got true")
				}

				return nil
			},
		},
		{
			Name: "DeleteUnknownTask",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				deleted, err := store.DeleteTask(ctx, model.TaskID(9999))
				if err != nil {
					return errors.WithStack(err)
				}

				if deleted {
					t.Errorf("deleted: expected false, got true")
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		func(tc testCase) {
			t.Run(tc.Name, func(t *testing.T) {
				store, err := factory(t)
				if err != nil {
					t.Fatalf("%+v", errors.WithStack(err))
				}

				ctx := context.Background()

				if err := store.Initialize(ctx); err != nil {
					t.Fatalf("%+v", errors.WithStack(err))
				}

				if err := tc.Run(t, ctx, store); err != nil {
					t.Errorf("%+v", errors.WithStack(err))
				}
			})
		}(tc)
	}
}
