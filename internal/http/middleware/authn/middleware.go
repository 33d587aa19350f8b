package authn

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/taskboard/internal/core/model"
	httpCtx "github.com/bornholm/taskboard/internal/http/context"
	"github.com/pkg/errors"
)

type Authenticator interface {
	// Authenticate resolves the request identity, returning a nil user
	// when the request carries no usable credentials
	Authenticate(w http.ResponseWriter, r *http.Request) (model.User, error)
}

func Middleware(onUnauthorized http.Handler, authenticators ...Authenticator) func(http.Handler) http.Handler {
	if onUnauthorized == nil {
		onUnauthorized = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		})
	}

	return func(next http.Handler) http.Handler {
		var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			for _, authenticator := range authenticators {
				user, err := authenticator.Authenticate(w, r)
				if err != nil {
					slog.ErrorContext(r.Context(), "could not authenticate user", slogx.Error(errors.WithStack(err)))
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}

				if user == nil {
					continue
				}

				ctx := httpCtx.SetUser(r.Context(), user)

				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			onUnauthorized.ServeHTTP(w, r)
		}

		return fn
	}
}
