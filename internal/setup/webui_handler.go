package setup

import (
	"context"

	"github.com/bornholm/tasks/internal/config"
	"github.com/bornholm/tasks/internal/http/handler/webui"
	"github.com/pkg/errors"
)

func getWebUIHandlerFromConfig(ctx context.Context, conf *config.Config) (*webui.Handler, error) {
	store, err := getTaskStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create task store from config")
	}

	return webui.NewHandler(store), nil
}
