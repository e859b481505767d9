package sqlite

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/bornholm/tasks/internal/core/model"
	"github.com/bornholm/tasks/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"

	_ "github.com/ncruces/go-sqlite3/embed"
)

const selectTaskColumns = "SELECT id, title, description, status, due_date, created_at FROM tasks"

// Store opens a dedicated connection for each operation
// and closes it before returning.
type Store struct {
	dsn         string
	busyTimeout time.Duration
	maxRetries  int
	baseBackoff time.Duration
}

// Initialize implements port.TaskStore.
func (s *Store) Initialize(ctx context.Context) error {
	err := s.withConn(ctx, false, func(ctx context.Context, conn *sqlite3.Conn) error {
		if err := conn.Exec("PRAGMA journal_mode=wal;"); err != nil {
			return errors.WithStack(err)
		}

		for _, sql := range migrations {
			if err := conn.Exec(sql); err != nil {
				return errors.Wrapf(err, "could not execute migration '%s'", strings.TrimSpace(sql))
			}
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

	err := s.withConn(ctx, true, func(ctx context.Context, conn *sqlite3.Conn) error {
		stmt, _, err := conn.Prepare("INSERT INTO tasks (title, description, status, due_date) VALUES (?, ?, ?, ?);")
		if err != nil {
			return errors.WithStack(err)
		}
		defer stmt.Close()

		if err := stmt.BindText(1, task.Title); err != nil {
			return errors.WithStack(err)
		}

		if err := bindOptionalText(stmt, 2, task.Description); err != nil {
			return errors.WithStack(err)
		}

		status := task.Status
		if status == "" {
			status = model.DefaultTaskStatus
		}

		if err := stmt.BindText(3, status); err != nil {
			return errors.WithStack(err)
		}

		if err := bindOptionalText(stmt, 4, task.DueDate); err != nil {
			return errors.WithStack(err)
		}

		if err := stmt.Exec(); err != nil {
			return errors.WithStack(err)
		}

		id = model.TaskID(conn.LastInsertRowID())

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return id, nil
}

// QueryTasks implements port.TaskStore.
func (s *Store) QueryTasks(ctx context.Context) ([]model.PersistedTask, error) {
	tasks := make([]model.PersistedTask, 0)

	err := s.withConn(ctx, true, func(ctx context.Context, conn *sqlite3.Conn) error {
		stmt, _, err := conn.Prepare(selectTaskColumns + " ORDER BY id DESC;")
		if err != nil {
			return errors.WithStack(err)
		}
		defer stmt.Close()

		// Reset on retry
		tasks = tasks[:0]

		for stmt.Step() {
			task, err := scanTask(stmt)
			if err != nil {
				return errors.WithStack(err)
			}

			tasks = append(tasks, task)
		}

		if err := stmt.Err(); err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return tasks, nil
}

// GetTaskByID implements port.TaskStore.
func (s *Store) GetTaskByID(ctx context.Context, id model.TaskID) (model.PersistedTask, error) {
	var task model.PersistedTask

	err := s.withConn(ctx, true, func(ctx context.Context, conn *sqlite3.Conn) error {
		stmt, _, err := conn.Prepare(selectTaskColumns + " WHERE id = ?;")
		if err != nil {
			return errors.WithStack(err)
		}
		defer stmt.Close()

		if err := stmt.BindInt64(1, int64(id)); err != nil {
			return errors.WithStack(err)
		}

		if !stmt.Step() {
			if err := stmt.Err(); err != nil {
				return errors.WithStack(err)
			}

			return errors.WithStack(port.ErrNotFound)
		}

		task, err = scanTask(stmt)
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return model.PersistedTask{}, errors.WithStack(err)
	}

	return task, nil
}

// UpdateTask implements port.TaskStore.
func (s *Store) UpdateTask(ctx context.Context, id model.TaskID, changes model.TaskChanges) error {
	if changes.Empty() {
		return nil
	}

	var (
		assignments []string
		values      []*string
	)

	addAssignment := func(column string, value *string) {
		if value == nil {
			return
		}

		assignments = append(assignments, column+" = ?")
		values = append(values, value)
	}

	addAssignment("title", changes.Title)
	addAssignment("description", changes.Description)
	addAssignment("status", changes.Status)
	addAssignment("due_date", changes.DueDate)

	sql := "UPDATE tasks SET " + strings.Join(assignments, ", ") + " WHERE id = ?;"

	err := s.withConn(ctx, true, func(ctx context.Context, conn *sqlite3.Conn) error {
		stmt, _, err := conn.Prepare(sql)
		if err != nil {
			return errors.WithStack(err)
		}
		defer stmt.Close()

		for i, v := range values {
			if err := stmt.BindText(i+1, *v); err != nil {
				return errors.WithStack(err)
			}
		}

		if err := stmt.BindInt64(len(values)+1, int64(id)); err != nil {
			return errors.WithStack(err)
		}

		if err := stmt.Exec(); err != nil {
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

	err := s.withConn(ctx, true, func(ctx context.Context, conn *sqlite3.Conn) error {
		stmt, _, err := conn.Prepare("DELETE FROM tasks WHERE id = ?;")
		if err != nil {
			return errors.WithStack(err)
		}
		defer stmt.Close()

		if err := stmt.BindInt64(1, int64(id)); err != nil {
			return errors.WithStack(err)
		}

		if err := stmt.Exec(); err != nil {
			return errors.WithStack(err)
		}

		deleted = conn.Changes() > 0

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return false, errors.WithStack(err)
	}

	return deleted, nil
}

func (s *Store) openConn(ctx context.Context) (*sqlite3.Conn, error) {
	conn, err := sqlite3.Open(s.dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open database '%s'", s.dsn)
	}

	if err := conn.BusyTimeout(s.busyTimeout); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			slog.ErrorContext(ctx, "could not close connection", slog.Any("error", errors.WithStack(closeErr)))
		}

		return nil, errors.WithStack(err)
	}

	return conn, nil
}

// withConn runs fn on a fresh connection, inside a savepoint when transactional is set.
// The connection is closed whatever the outcome.
func (s *Store) withConn(ctx context.Context, transactional bool, fn func(ctx context.Context, conn *sqlite3.Conn) error, codes ...sqlite3.ErrorCode) error {
	backoff := s.baseBackoff
	retries := 0

	execOnce := func() (err error) {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		conn, err := s.openConn(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		defer func() {
			if closeErr := conn.Close(); closeErr != nil && err == nil {
				err = errors.WithStack(closeErr)
			}
		}()

		conn.SetInterrupt(ctx)

		if transactional {
			save := conn.Savepoint()
			defer save.Release(&err)
		}

		if err = fn(ctx, conn); err != nil {
			err = errors.WithStack(err)
			return
		}

		return nil
	}

	for {
		err := execOnce()
		if err == nil {
			return nil
		}

		if retries >= s.maxRetries {
			return errors.WithStack(err)
		}

		var sqliteErr *sqlite3.Error
		if !errors.As(err, &sqliteErr) || !slices.Contains(codes, sqliteErr.Code()) {
			return errors.WithStack(err)
		}

		slog.DebugContext(ctx, "statement failed, will retry", slog.Int("retries", retries), slog.Duration("backoff", backoff), slog.Any("error", errors.WithStack(err)))

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(backoff):
		}

		retries++
		backoff *= 2
	}
}

func NewStore(dsn string, funcs ...OptionFunc) *Store {
	opts := NewOptions(funcs...)

	return &Store{
		dsn:         dsn,
		busyTimeout: opts.BusyTimeout,
		maxRetries:  opts.MaxRetries,
		baseBackoff: opts.BaseBackoff,
	}
}

var _ port.TaskStore = &Store{}
