package port

import (
	"context"

	"github.com/bornholm/tasks/internal/core/model"
)

type TaskStore interface {
	// Initialize creates the task table if it does not exist yet
	Initialize(ctx context.Context) error

	// CreateTask inserts a new task and returns its generated identifier
	CreateTask(ctx context.Context, task model.Task) (model.TaskID, error)

	// QueryTasks returns every task, newest first
	QueryTasks(ctx context.Context) ([]model.PersistedTask, error)

	// GetTaskByID returns the task or port.ErrNotFound
	GetTaskByID(ctx context.Context, id model.TaskID) (model.PersistedTask, error)

	// UpdateTask overwrites the fields set in changes.
	// It does not check that the task exists.
	UpdateTask(ctx context.Context, id model.TaskID, changes model.TaskChanges) error

	// DeleteTask removes the task and reports whether a row was deleted
	DeleteTask(ctx context.Context, id model.TaskID) (bool, error)
}
