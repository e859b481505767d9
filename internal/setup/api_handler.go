package setup

import (
	"context"

	"github.com/bornholm/tasks/internal/config"
	"github.com/bornholm/tasks/internal/http/handler/api"
	"github.com/pkg/errors"
)

func getAPIHandlerFromConfig(ctx context.Context, conf *config.Config) (*api.Handler, error) {
	store, err := getTaskStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create task store from config")
	}

	return api.NewHandler(store), nil
}
