package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/bornholm/taskboard/internal/http/handler/api"
	"github.com/pkg/errors"
)

func (c *Client) request(ctx context.Context, method string, path string, body io.Reader, result io.Writer) error {
	url, err := url.Parse(path)
	if err != nil {
		return errors.WithStack(err)
	}

	url.Scheme = c.baseURL.Scheme
	url.Host = c.baseURL.Host
	url.Path = c.baseURL.JoinPath(url.Path).Path

	slog.DebugContext(ctx, "new client request", slog.String("method", method), slog.String("path", url.Path), slog.String("host", url.Host))

	req, err := http.NewRequestWithContext(ctx, method, url.String(), body)
	if err != nil {
		return errors.WithStack(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusBadRequest {
		data, err := io.ReadAll(res.Body)
		if err != nil {
			return errors.WithStack(err)
		}

		var errRes api.ErrorResponse
		if err := json.Unmarshal(data, &errRes); err == nil && errRes.Error.Kind != "" {
			return errors.WithStack(&APIError{
				StatusCode: res.StatusCode,
				Kind:       errRes.Error.Kind,
				Message:    errRes.Error.Message,
			})
		}

		return errors.Errorf("unexpected response code %d (%s)", res.StatusCode, res.Status)
	}

	if _, err := io.Copy(result, res.Body); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (c *Client) jsonRequest(ctx context.Context, method string, path string, body any, result any) error {
	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}

		reader = bytes.NewReader(data)
	}

	var buff bytes.Buffer

	if err := c.request(ctx, method, path, reader, &buff); err != nil {
		return errors.WithStack(err)
	}

	if result == nil {
		return nil
	}

	if err := json.Unmarshal(buff.Bytes(), result); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
