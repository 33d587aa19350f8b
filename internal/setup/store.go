package setup

import (
	"context"

	gormAdapter "github.com/bornholm/taskboard/internal/adapter/gorm"
	"github.com/bornholm/taskboard/internal/config"
	"github.com/pkg/errors"
)

var getStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*gormAdapter.Store, error) {
	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create database from config")
	}

	return gormAdapter.NewStore(db), nil
})
