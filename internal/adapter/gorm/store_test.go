package gorm

import (
	"path/filepath"
	"testing"

	"github.com/bornholm/tasks/internal/core/port"
	"github.com/bornholm/tasks/internal/core/port/testsuite"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

func TestStore(t *testing.T) {
	testsuite.TestTaskStore(t, func(t *testing.T) (port.TaskStore, error) {
		dsn := filepath.Join(t.TempDir(), "todo.db")

		db, err := gorm.Open(gormlite.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return nil, errors.WithStack(err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.WithStack(err)
		}

		t.Cleanup(func() {
			if err := sqlDB.Close(); err != nil {
				t.Logf("could not close database: %+v", errors.WithStack(err))
			}
		})

		return NewStore(db), nil
	})
}
