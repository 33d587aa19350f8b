package setup

import (
	"context"
	"net/http"

	"github.com/bornholm/taskboard/internal/config"
	"github.com/bornholm/taskboard/internal/http/middleware/authn"
	"github.com/bornholm/taskboard/internal/http/middleware/authn/jwt"
	"github.com/pkg/errors"
)

var getAuthnMiddlewareFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (func(http.Handler) http.Handler, error) {
	auth, err := getAuthFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create auth service from config")
	}

	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create store from config")
	}

	authenticator := jwt.NewAuthenticator(auth, store)

	return authn.Middleware(nil, authenticator), nil
})
