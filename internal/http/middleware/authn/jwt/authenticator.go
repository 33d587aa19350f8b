package jwt

import (
	"context"
	"net/http"
	"strings"

	"github.com/bornholm/taskboard/internal/core/model"
	"github.com/bornholm/taskboard/internal/core/port"
	"github.com/bornholm/taskboard/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (model.UserID, error)
}

// Authenticator resolves Bearer tokens to their owning user.
type Authenticator struct {
	verifier TokenVerifier
	users    port.UserStore
}

func NewAuthenticator(verifier TokenVerifier, users port.UserStore) *Authenticator {
	return &Authenticator{
		verifier: verifier,
		users:    users,
	}
}

// Authenticate implements [authn.Authenticator].
func (a *Authenticator) Authenticate(w http.ResponseWriter, r *http.Request) (model.User, error) {
	authorization := r.Header.Get("Authorization")
	token := strings.TrimPrefix(authorization, "Bearer ")

	if token == "" || token == authorization {
		return nil, nil
	}

	ctx := r.Context()

	userID, err := a.verifier.Verify(ctx, token)
	if err != nil {
		// An expired or tampered token is an anonymous request, not a
		// server failure
		return nil, nil
	}

	user, err := a.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, nil
		}

		return nil, errors.WithStack(err)
	}

	return user, nil
}

var _ authn.Authenticator = &Authenticator{}
