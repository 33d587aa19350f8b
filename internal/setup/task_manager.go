package setup

import (
	"context"

	"github.com/bornholm/taskboard/internal/config"
	"github.com/bornholm/taskboard/internal/core/service"
	"github.com/pkg/errors"
)

var getTaskManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.TaskManager, error) {
	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create store from config")
	}

	return service.NewTaskManager(store), nil
})
