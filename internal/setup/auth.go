package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/taskboard/internal/config"
	"github.com/bornholm/taskboard/internal/core/service"
	"github.com/bornholm/taskboard/internal/crypto"
	"github.com/pkg/errors"
)

var getAuthFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.Auth, error) {
	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create store from config")
	}

	secret := conf.Auth.Secret
	if secret == "" {
		secret, err = crypto.GenerateSecureToken()
		if err != nil {
			return nil, errors.Wrap(err, "could not generate auth secret")
		}

		slog.WarnContext(ctx, "no auth secret configured, using an ephemeral one, tokens will not survive a restart")
	}

	auth := service.NewAuth(
		store,
		[]byte(secret),
		service.WithAuthTokenTTL(conf.Auth.TokenTTL),
	)

	return auth, nil
})
