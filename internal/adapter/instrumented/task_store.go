package instrumented

import (
	"context"
	"time"

	"github.com/bornholm/tasks/internal/core/model"
	"github.com/bornholm/tasks/internal/core/port"
	"github.com/bornholm/tasks/internal/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	operationInitialize = "initialize"
	operationCreate     = "create"
	operationQuery      = "query"
	operationGet        = "get"
	operationUpdate     = "update"
	operationDelete     = "delete"
)

// TaskStore records prometheus metrics around another port.TaskStore.
type TaskStore struct {
	store port.TaskStore
}

// Initialize implements [port.TaskStore].
func (s *TaskStore) Initialize(ctx context.Context) error {
	defer observe(operationInitialize, time.Now())

	err := s.store.Initialize(ctx)
	record(operationInitialize, err)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// CreateTask implements [port.TaskStore].
func (s *TaskStore) CreateTask(ctx context.Context, task model.Task) (model.TaskID, error) {
	defer observe(operationCreate, time.Now())

	id, err := s.store.CreateTask(ctx, task)
	record(operationCreate, err)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	metrics.TotalCreatedTasks.Inc()

	return id, nil
}

// QueryTasks implements [port.TaskStore].
func (s *TaskStore) QueryTasks(ctx context.Context) ([]model.PersistedTask, error) {
	defer observe(operationQuery, time.Now())

	tasks, err := s.store.QueryTasks(ctx)
	record(operationQuery, err)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return tasks, nil
}

// GetTaskByID implements [port.TaskStore].
func (s *TaskStore) GetTaskByID(ctx context.Context, id model.TaskID) (model.PersistedTask, error) {
	defer observe(operationGet, time.Now())

	task, err := s.store.GetTaskByID(ctx, id)
	record(operationGet, err)
	if err != nil {
		return model.PersistedTask{}, errors.WithStack(err)
	}

	return task, nil
}

// UpdateTask implements [port.TaskStore].
func (s *TaskStore) UpdateTask(ctx context.Context, id model.TaskID, changes model.TaskChanges) error {
	defer observe(operationUpdate, time.Now())

	err := s.store.UpdateTask(ctx, id, changes)
	record(operationUpdate, err)
	if err != nil {
		return errors.WithStack(err)
	}

	if !changes.Empty() {
		metrics.TotalUpdatedTasks.Inc()
	}

	return nil
}

// DeleteTask implements [port.TaskStore].
func (s *TaskStore) DeleteTask(ctx context.Context, id model.TaskID) (bool, error) {
	defer observe(operationDelete, time.Now())

	deleted, err := s.store.DeleteTask(ctx, id)
	if err != nil {
		record(operationDelete, err)
		return false, errors.WithStack(err)
	}

	if !deleted {
		record(operationDelete, port.ErrNotFound)
		return false, nil
	}

	record(operationDelete, nil)
	metrics.TotalDeletedTasks.Inc()

	return true, nil
}

func NewTaskStore(store port.TaskStore) *TaskStore {
	return &TaskStore{store: store}
}

var _ port.TaskStore = &TaskStore{}

func observe(operation string, start time.Time) {
	metrics.StoreOperationDuration.With(prometheus.Labels{
		metrics.LabelOperation: operation,
	}).Observe(time.Since(start).Seconds())
}

func record(operation string, err error) {
	result := metrics.ResultSuccess

	switch {
	case errors.Is(err, port.ErrNotFound):
		result = metrics.ResultNotFound
	case err != nil:
		result = metrics.ResultError
	}

	metrics.StoreOperations.With(prometheus.Labels{
		metrics.LabelOperation: operation,
		metrics.LabelResult:    result,
	}).Inc()
}
