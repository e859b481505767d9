package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bornholm/tasks/internal/core/model"
	"github.com/bornholm/tasks/internal/http/handler/api"
	"github.com/pkg/errors"
)

type (
	Task              = api.Task
	CreateTaskRequest = api.CreateTaskRequest
	UpdateTaskRequest = api.UpdateTaskRequest
)

func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	var task Task
	if err := c.jsonRequest(ctx, http.MethodPost, "/tasks", req, &task); err != nil {
		return nil, errors.WithStack(err)
	}

	return &task, nil
}

func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	tasks := make([]Task, 0)
	if err := c.jsonRequest(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, errors.WithStack(err)
	}

	return tasks, nil
}

func (c *Client) GetTask(ctx context.Context, taskID model.TaskID) (*Task, error) {
	var task Task
	if err := c.jsonRequest(ctx, http.MethodGet, taskPath(taskID), nil, &task); err != nil {
		return nil, errors.WithStack(err)
	}

	return &task, nil
}

func (c *Client) UpdateTask(ctx context.Context, taskID model.TaskID, req UpdateTaskRequest) (*Task, error) {
	var task Task
	if err := c.jsonRequest(ctx, http.MethodPatch, taskPath(taskID), req, &task); err != nil {
		return nil, errors.WithStack(err)
	}

	return &task, nil
}

func (c *Client) DeleteTask(ctx context.Context, taskID model.TaskID) error {
	if err := c.jsonRequest(ctx, http.MethodDelete, taskPath(taskID), nil, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func taskPath(taskID model.TaskID) string {
	return fmt.Sprintf("/tasks/%d", taskID)
}
