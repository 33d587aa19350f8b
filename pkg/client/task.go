package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bornholm/taskboard/internal/core/port"
	"github.com/bornholm/taskboard/internal/http/handler/api"
	"github.com/pkg/errors"
)

func (c *Client) CreateTask(ctx context.Context, title, description string) (*api.Task, error) {
	req := api.CreateTaskRequest{
		Title:       title,
		Description: description,
	}

	var res api.TaskResponse
	if err := c.jsonRequest(ctx, http.MethodPost, "/api/v1/tasks", req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Task, nil
}

func (c *Client) ListTasks(ctx context.Context, search string, sort port.SortOrder) ([]api.Task, error) {
	query := url.Values{}

	if search != "" {
		query.Set("search", search)
	}

	if sort != "" {
		query.Set("sort", string(sort))
	}

	endpoint := "/api/v1/tasks"
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var res api.ListTasksResponse
	if err := c.jsonRequest(ctx, http.MethodGet, endpoint, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Tasks, nil
}

func (c *Client) EditTask(ctx context.Context, taskID, title, description string) (*api.Task, error) {
	req := api.EditTaskRequest{
		Title:       title,
		Description: description,
	}

	var res api.TaskResponse
	if err := c.jsonRequest(ctx, http.MethodPut, fmt.Sprintf("/api/v1/tasks/%s", taskID), req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Task, nil
}

func (c *Client) UpdateTaskStatus(ctx context.Context, taskID string, status string) (*api.Task, error) {
	req := api.UpdateTaskStatusRequest{
		Status: status,
	}

	var res api.TaskResponse
	if err := c.jsonRequest(ctx, http.MethodPut, fmt.Sprintf("/api/v1/tasks/%s/status", taskID), req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Task, nil
}

func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	if err := c.jsonRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/tasks/%s", taskID), nil, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
