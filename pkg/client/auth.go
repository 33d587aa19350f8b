package client

import (
	"context"
	"net/http"

	"github.com/bornholm/taskboard/internal/http/handler/api"
	"github.com/pkg/errors"
)

// Signup registers a new account and remembers the returned token.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*api.AuthResponse, error) {
	req := api.SignupRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}

	var res api.AuthResponse
	if err := c.jsonRequest(ctx, http.MethodPost, "/auth/signup", req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	c.token = res.Token

	return &res, nil
}

// Login exchanges credentials for a token and remembers it.
func (c *Client) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	req := api.LoginRequest{
		Email:    email,
		Password: password,
	}

	var res api.AuthResponse
	if err := c.jsonRequest(ctx, http.MethodPost, "/auth/login", req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	c.token = res.Token

	return &res, nil
}
