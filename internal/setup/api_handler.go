package setup

import (
	"context"

	"github.com/bornholm/taskboard/internal/config"
	"github.com/bornholm/taskboard/internal/http/handler/api"
	"github.com/pkg/errors"
)

var getAPIHandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*api.Handler, error) {
	taskManager, err := getTaskManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create task manager from config")
	}

	return api.NewHandler(taskManager), nil
})

var getAuthHandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*api.AuthHandler, error) {
	auth, err := getAuthFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create auth service from config")
	}

	return api.NewAuthHandler(auth), nil
})
