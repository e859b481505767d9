package sqlite

import (
	"time"

	"github.com/bornholm/tasks/internal/core/model"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
)

// Layouts used by CURRENT_TIMESTAMP and by the database/sql driver
var timestampLayouts = []string{
	time.DateTime,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
}

func scanTask(stmt *sqlite3.Stmt) (model.PersistedTask, error) {
	task := model.PersistedTask{
		ID: model.TaskID(stmt.ColumnInt64(0)),
		Task: model.Task{
			Title:       stmt.ColumnText(1),
			Description: columnOptionalText(stmt, 2),
			Status:      stmt.ColumnText(3),
			DueDate:     columnOptionalText(stmt, 4),
		},
	}

	if stmt.ColumnType(5) != sqlite3.NULL {
		createdAt, err := parseTimestamp(stmt.ColumnText(5))
		if err != nil {
			return model.PersistedTask{}, errors.WithStack(err)
		}

		task.CreatedAt = createdAt
	}

	return task, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, raw, time.UTC)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Errorf("could not parse timestamp '%s'", raw)
}

func columnOptionalText(stmt *sqlite3.Stmt, col int) *string {
	if stmt.ColumnType(col) == sqlite3.NULL {
		return nil
	}

	value := stmt.ColumnText(col)

	return &value
}

func bindOptionalText(stmt *sqlite3.Stmt, param int, value *string) error {
	if value == nil {
		return errors.WithStack(stmt.BindNull(param))
	}

	return errors.WithStack(stmt.BindText(param, *value))
}
