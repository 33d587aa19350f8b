package service

import (
	"context"
	"strings"

	"github.com/bornholm/taskboard/internal/core/model"
	"github.com/bornholm/taskboard/internal/core/port"
	"github.com/bornholm/taskboard/internal/metrics"
	"github.com/pkg/errors"
)

// TaskManager is the task lifecycle engine: the single place deciding
// whether a task mutation is legal. Every operation is scoped to the
// owner identity resolved upstream; a task belonging to someone else is
// indistinguishable from a missing one.
type TaskManager struct {
	store port.TaskStore
}

func NewTaskManager(store port.TaskStore) *TaskManager {
	return &TaskManager{
		store: store,
	}
}

// CreateTask validates the given title and description, checks title
// uniqueness among the owner's tasks and persists a new task in the
// CREATED status.
func (m *TaskManager) CreateTask(ctx context.Context, ownerID model.UserID, title, description string) (model.Task, error) {
	task, err := model.NewTask(ownerID, title, description)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	total, err := m.store.CountTasksByTitle(ctx, ownerID, task.Title())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if total > 0 {
		return nil, errors.WithStack(port.ErrAlreadyExists)
	}

	created, err := m.store.CreateTask(ctx, task)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.TasksCreated.Inc()

	return created, nil
}

// EditTask updates the title and description of the owner's task.
// Unlike CreateTask it does not re-check title uniqueness against the
// owner's other tasks; the unique index remains as a backstop.
func (m *TaskManager) EditTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID, title, description string) (model.Task, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if err := model.ValidateTaskTitle(title); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := model.ValidateTaskDescription(description); err != nil {
		return nil, errors.WithStack(err)
	}

	updates := port.TaskUpdates{
		Title:       &title,
		Description: &description,
	}

	task, err := m.store.UpdateTask(ctx, ownerID, taskID, updates)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return task, nil
}

// UpdateTaskStatus moves the owner's task to the given status, enforcing
// the lifecycle state machine. Moving a task between CREATED and
// COMPLETED without passing through INPROGRESS fails with a
// model.PolicyError. A self transition succeeds without a write.
func (m *TaskManager) UpdateTaskStatus(ctx context.Context, ownerID model.UserID, taskID model.TaskID, status model.TaskStatus) (model.Task, error) {
	task, err := m.store.GetTask(ctx, ownerID, taskID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if task.Status() == status {
		return task, nil
	}

	if !model.CanTransition(task.Status(), status) {
		metrics.TaskPolicyRejections.Inc()

		return nil, errors.WithStack(&model.PolicyError{From: task.Status(), To: status})
	}

	updates := port.TaskUpdates{
		Status: &status,
	}

	updated, err := m.store.UpdateTask(ctx, ownerID, taskID, updates)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.TaskTransitions.WithLabelValues(string(task.Status()), string(status)).Inc()

	return updated, nil
}

// DeleteTask deletes the owner's task, or returns port.ErrNotFound if
// there is nothing to delete.
func (m *TaskManager) DeleteTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID) error {
	if err := m.store.DeleteTask(ctx, ownerID, taskID); err != nil {
		return errors.WithStack(err)
	}

	metrics.TasksDeleted.Inc()

	return nil
}

// QueryTasks returns the owner's tasks, optionally restricted to the
// ones containing the given search text, ordered by creation time. An
// empty result is not an error.
func (m *TaskManager) QueryTasks(ctx context.Context, ownerID model.UserID, opts port.QueryTasksOptions) ([]model.Task, error) {
	tasks, err := m.store.QueryTasks(ctx, ownerID, opts)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return tasks, nil
}
