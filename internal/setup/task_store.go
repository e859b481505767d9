package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/tasks/internal/adapter/gorm"
	"github.com/bornholm/tasks/internal/adapter/instrumented"
	"github.com/bornholm/tasks/internal/adapter/sqlite"
	"github.com/bornholm/tasks/internal/config"
	"github.com/bornholm/tasks/internal/core/port"
	"github.com/pkg/errors"
)

var getTaskStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.TaskStore, error) {
	var store port.TaskStore

	switch conf.Storage.Database.Driver {
	case config.DatabaseDriverSQLite:
		store = sqlite.NewStore(
			conf.Storage.Database.DSN,
			sqlite.WithBusyTimeout(conf.Storage.Database.BusyTimeout),
		)

	case config.DatabaseDriverGorm:
		db, err := getGormDatabaseFromConfig(ctx, conf)
		if err != nil {
			return nil, errors.Wrap(err, "could not create gorm database from config")
		}

		store = gorm.NewStore(db)

	default:
		return nil, errors.Errorf("unknown database driver '%s'", conf.Storage.Database.Driver)
	}

	store = instrumented.NewTaskStore(store)

	slog.DebugContext(ctx, "initializing task store", slog.String("driver", string(conf.Storage.Database.Driver)), slog.String("dsn", conf.Storage.Database.DSN))

	if err := store.Initialize(ctx); err != nil {
		return nil, errors.Wrap(err, "could not initialize task store")
	}

	return store, nil
})
