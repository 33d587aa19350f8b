package client

import (
	"net/http"
	"net/url"
)

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	token      string
}

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		token:      opts.Token,
	}
}

// SetToken replaces the Bearer token used by subsequent requests, for
// example after a login.
func (c *Client) SetToken(token string) {
	c.token = token
}
