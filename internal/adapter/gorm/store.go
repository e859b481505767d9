package gorm

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/bornholm/tasks/internal/core/model"
	"github.com/bornholm/tasks/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

// Initialize implements port.TaskStore.
func (s *Store) Initialize(ctx context.Context) error {
	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		if err := db.AutoMigrate(&Task{}); err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// CreateTask implements port.TaskStore.
func (s *Store) CreateTask(ctx context.Context, task model.Task) (model.TaskID, error) {
	var id model.TaskID

	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		record := fromTask(task)

		if err := db.Create(record).Error; err != nil {
			return errors.WithStack(err)
		}

		id = model.TaskID(record.ID)

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return id, nil
}

// QueryTasks implements port.TaskStore.
func (s *Store) QueryTasks(ctx context.Context) ([]model.PersistedTask, error) {
	var records []*Task

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Order("id desc").Find(&records).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	tasks := make([]model.PersistedTask, 0, len(records))
	for _, r := range records {
		tasks = append(tasks, toPersistedTask(r))
	}

	return tasks, nil
}

// GetTaskByID implements port.TaskStore.
func (s *Store) GetTaskByID(ctx context.Context, id model.TaskID) (model.PersistedTask, error) {
	var record Task

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&record, "id = ?", int64(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return model.PersistedTask{}, errors.WithStack(err)
	}

	return toPersistedTask(&record), nil
}

// UpdateTask implements port.TaskStore.
func (s *Store) UpdateTask(ctx context.Context, id model.TaskID, changes model.TaskChanges) error {
	if changes.Empty() {
		return nil
	}

	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Model(&Task{}).Where("id = ?", int64(id)).Updates(toUpdates(changes)).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteTask implements port.TaskStore.
func (s *Store) DeleteTask(ctx context.Context, id model.TaskID) (bool, error) {
	var deleted bool

	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		res := db.Delete(&Task{}, "id = ?", int64(id))
		if res.Error != nil {
			return errors.WithStack(res.Error)
		}

		deleted = res.RowsAffected > 0

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return false, errors.WithStack(err)
	}

	return deleted, nil
}

func (s *Store) withRetry(ctx context.Context, transactional bool, fn func(ctx context.Context, db *gorm.DB) error, codes ...sqlite3.ErrorCode) error {
	backoff := 100 * time.Millisecond
	maxRetries := 10
	retries := 0

	for {
		db := s.db.WithContext(ctx)

		var err error
		if transactional {
			err = db.Transaction(func(tx *gorm.DB) error {
				return fn(ctx, tx)
			})
		} else {
			err = fn(ctx, db)
		}
		if err == nil {
			return nil
		}

		if retries >= maxRetries {
			return errors.WithStack(err)
		}

		var sqliteErr *sqlite3.Error
		if !errors.As(err, &sqliteErr) || !slices.Contains(codes, sqliteErr.Code()) {
			return errors.WithStack(err)
		}

		slog.DebugContext(ctx, "transaction failed, will retry", slog.Int("retries", retries), slog.Duration("backoff", backoff), slog.Any("error", errors.WithStack(err)))

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(backoff):
		}

		retries++
		backoff *= 2
	}
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db: db,
	}
}

var _ port.TaskStore = &Store{}
