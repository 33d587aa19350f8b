package service

import (
	"context"
	"time"

	"github.com/bornholm/taskboard/internal/core/model"
	"github.com/bornholm/taskboard/internal/core/port"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthOptions struct {
	TokenTTL time.Duration
}

type AuthOptionFunc func(opts *AuthOptions)

func WithAuthTokenTTL(ttl time.Duration) AuthOptionFunc {
	return func(opts *AuthOptions) {
		opts.TokenTTL = ttl
	}
}

func NewAuthOptions(funcs ...AuthOptionFunc) *AuthOptions {
	opts := &AuthOptions{
		TokenTTL: 24 * time.Hour,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// Auth registers users and exchanges credentials for signed Bearer
// tokens carrying the owner identity consumed by the task engine.
type Auth struct {
	users    port.UserStore
	key      []byte
	tokenTTL time.Duration
}

func NewAuth(users port.UserStore, key []byte, funcs ...AuthOptionFunc) *Auth {
	opts := NewAuthOptions(funcs...)
	return &Auth{
		users:    users,
		key:      key,
		tokenTTL: opts.TokenTTL,
	}
}

// Signup registers a new user and returns it with a fresh token.
func (a *Auth) Signup(ctx context.Context, name, email, password string) (model.User, string, error) {
	if err := model.ValidateUserName(name); err != nil {
		return nil, "", errors.WithStack(err)
	}

	if err := model.ValidateUserEmail(email); err != nil {
		return nil, "", errors.WithStack(err)
	}

	if err := model.ValidateUserPassword(password); err != nil {
		return nil, "", errors.WithStack(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	user, err := a.users.CreateUser(ctx, model.NewUser(name, email, string(hash)))
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	token, err := a.issueToken(user)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	return user, token, nil
}

// Login exchanges an email/password pair for a token. A wrong password
// and an unknown email are indistinguishable from the caller's view.
func (a *Auth) Login(ctx context.Context, email, password string) (model.User, string, error) {
	user, err := a.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, "", errors.WithStack(ErrInvalidCredentials)
		}

		return nil, "", errors.WithStack(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash()), []byte(password)); err != nil {
		return nil, "", errors.WithStack(ErrInvalidCredentials)
	}

	token, err := a.issueToken(user)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	return user, token, nil
}

// Verify parses and validates a token, returning the owner identity it
// carries.
func (a *Auth) Verify(ctx context.Context, rawToken string) (model.UserID, error) {
	token, err := jwt.Parse(rawToken, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %q", t.Method.Alg())
		}

		return a.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", errors.WithStack(err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", errors.WithStack(err)
	}

	if subject == "" {
		return "", errors.New("token has no subject")
	}

	return model.UserID(subject), nil
}

func (a *Auth) issueToken(user model.User) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   string(user.ID()),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.key)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return token, nil
}
