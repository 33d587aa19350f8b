package setup

import (
	"context"

	"github.com/bornholm/taskboard/internal/config"
	"github.com/bornholm/taskboard/internal/http"
	"github.com/bornholm/taskboard/internal/http/handler/metrics"
	"github.com/bornholm/taskboard/internal/http/middleware/authz"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	api, err := getAPIHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure api handler from config")
	}

	authHandler, err := getAuthHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure auth handler from config")
	}

	authnMiddleware, err := getAuthnMiddlewareFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure authn middleware from config")
	}

	authzMiddleware := authz.Middleware(nil, authz.IsAuthenticated)

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithAllowedOrigins(conf.HTTP.CORS.AllowedOrigins...),
		http.WithMount("/auth/", authHandler),
		http.WithMount("/api/v1/", authnMiddleware(authzMiddleware(api))),
		http.WithMount("/metrics", metrics.NewHandler()),
	}

	return http.NewServer(options...), nil
}
