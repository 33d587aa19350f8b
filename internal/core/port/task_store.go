package port

import (
	"context"

	"github.com/bornholm/taskboard/internal/core/model"
)

type SortOrder string

const (
	// SortOrderLatest orders tasks by descending creation time.
	SortOrderLatest SortOrder = "latest"
	// SortOrderOldest orders tasks by ascending creation time.
	SortOrderOldest SortOrder = "oldest"
)

// ParseSortOrder validates a raw sort value coming from a client,
// defaulting to SortOrderLatest when empty.
func ParseSortOrder(raw string) (SortOrder, error) {
	if raw == "" {
		return SortOrderLatest, nil
	}

	order := SortOrder(raw)
	switch order {
	case SortOrderLatest, SortOrderOldest:
		return order, nil
	}

	return "", &model.ValidationError{Field: "sort", Message: "sort must be either latest or oldest"}
}

type QueryTasksOptions struct {
	// Search restricts results to tasks whose title or description
	// contains the given text, matched case-insensitively and literally.
	Search *string
	Sort   *SortOrder
}

type TaskUpdates struct {
	Title       *string
	Description *string
	Status      *model.TaskStatus
}

// TaskStore is the owner-scoped task repository. Every operation takes
// the owner identifier, so a query that is not filtered by owner can not
// be expressed. A task belonging to another owner behaves exactly like a
// missing one and surfaces as ErrNotFound.
type TaskStore interface {
	// CreateTask persists a new task, or returns ErrAlreadyExists if the
	// owner already has a task with the same title
	CreateTask(ctx context.Context, task model.Task) (model.Task, error)

	// GetTask returns the owner's task with the given id, or ErrNotFound
	GetTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID) (model.Task, error)

	// QueryTasks returns the owner's tasks matching the given options
	QueryTasks(ctx context.Context, ownerID model.UserID, opts QueryTasksOptions) ([]model.Task, error)

	// UpdateTask applies the given updates to the owner's task and
	// returns the updated task, or ErrNotFound
	UpdateTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID, updates TaskUpdates) (model.Task, error)

	// DeleteTask deletes the owner's task, or returns ErrNotFound if no
	// task was deleted
	DeleteTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID) error

	// CountTasksByTitle counts the owner's tasks with the exact given title
	CountTasksByTitle(ctx context.Context, ownerID model.UserID, title string) (int64, error)
}
