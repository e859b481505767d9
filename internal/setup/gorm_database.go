package setup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bornholm/tasks/internal/config"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var getGormDatabaseFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*gorm.DB, error) {
	return newGormDatabase(conf.Storage.Database, conf.Logger.Level)
})

func newGormDatabase(conf config.Database, level slog.Level) (*gorm.DB, error) {
	dialector := gormlite.Open(gormDSN(conf))

	var logLevel logger.LogLevel
	switch level {
	case slog.LevelError:
		logLevel = logger.Error
	case slog.LevelWarn:
		logLevel = logger.Warn
	case slog.LevelInfo:
		logLevel = logger.Info
	default:
		logLevel = logger.Error
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if level == slog.LevelDebug {
		db = db.Debug()
	}

	internalDB, err := db.DB()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Connections are closed as soon as they are released
	internalDB.SetMaxIdleConns(0)

	return db, nil
}

// gormDSN returns the DSN as a URI filename carrying the pragmas,
// the driver applies them to every new connection.
func gormDSN(conf config.Database) string {
	dsn := conf.DSN
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}

	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}

	return dsn + separator + fmt.Sprintf("_pragma=busy_timeout(%d)&_pragma=journal_mode(wal)", conf.BusyTimeout.Milliseconds())
}
