package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bornholm/taskboard/internal/core/model"
	"github.com/bornholm/taskboard/internal/core/port"
	"github.com/pkg/errors"
)

type taskRecord struct {
	id          model.TaskID
	ownerID     model.UserID
	title       string
	description string
	status      model.TaskStatus
	createdAt   time.Time
	updatedAt   time.Time
}

// ID implements model.Task.
func (r *taskRecord) ID() model.TaskID {
	return r.id
}

// OwnerID implements model.Task.
func (r *taskRecord) OwnerID() model.UserID {
	return r.ownerID
}

// Title implements model.Task.
func (r *taskRecord) Title() string {
	return r.title
}

// Description implements model.Task.
func (r *taskRecord) Description() string {
	return r.description
}

// Status implements model.Task.
func (r *taskRecord) Status() model.TaskStatus {
	return r.status
}

// CreatedAt implements model.Task.
func (r *taskRecord) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt implements model.Task.
func (r *taskRecord) UpdatedAt() time.Time {
	return r.updatedAt
}

var _ model.Task = &taskRecord{}

// TaskStore is an in-memory port.TaskStore used by tests and by the
// ephemeral storage mode.
type TaskStore struct {
	mutex sync.RWMutex
	tasks map[model.TaskID]*taskRecord
	now   func() time.Time
}

func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks: map[model.TaskID]*taskRecord{},
		now:   time.Now,
	}
}

// CreateTask implements port.TaskStore.
func (s *TaskStore) CreateTask(ctx context.Context, task model.Task) (model.Task, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, r := range s.tasks {
		if r.ownerID == task.OwnerID() && r.title == task.Title() {
			return nil, errors.WithStack(port.ErrAlreadyExists)
		}
	}

	now := s.now()

	record := &taskRecord{
		id:          task.ID(),
		ownerID:     task.OwnerID(),
		title:       task.Title(),
		description: task.Description(),
		status:      task.Status(),
		createdAt:   now,
		updatedAt:   now,
	}

	s.tasks[record.id] = record

	copied := *record

	return &copied, nil
}

// GetTask implements port.TaskStore.
func (s *TaskStore) GetTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID) (model.Task, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	record, exists := s.tasks[taskID]
	if !exists || record.ownerID != ownerID {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	copied := *record

	return &copied, nil
}

// QueryTasks implements port.TaskStore.
func (s *TaskStore) QueryTasks(ctx context.Context, ownerID model.UserID, opts port.QueryTasksOptions) ([]model.Task, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	search := ""
	if opts.Search != nil {
		search = strings.ToLower(strings.TrimSpace(*opts.Search))
	}

	tasks := make([]model.Task, 0)

	for _, record := range s.tasks {
		if record.ownerID != ownerID {
			continue
		}

		if search != "" {
			title := strings.ToLower(record.title)
			description := strings.ToLower(record.description)

			if !strings.Contains(title, search) && !strings.Contains(description, search) {
				continue
			}
		}

		copied := *record
		tasks = append(tasks, &copied)
	}

	oldest := opts.Sort != nil && *opts.Sort == port.SortOrderOldest

	sort.SliceStable(tasks, func(i, j int) bool {
		if oldest {
			return tasks[i].CreatedAt().Before(tasks[j].CreatedAt())
		}

		return tasks[i].CreatedAt().After(tasks[j].CreatedAt())
	})

	return tasks, nil
}

// UpdateTask implements port.TaskStore.
func (s *TaskStore) UpdateTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID, updates port.TaskUpdates) (model.Task, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, exists := s.tasks[taskID]
	if !exists || record.ownerID != ownerID {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	if updates.Title != nil {
		record.title = *updates.Title
	}

	if updates.Description != nil {
		record.description = *updates.Description
	}

	if updates.Status != nil {
		record.status = *updates.Status
	}

	record.updatedAt = s.now()

	copied := *record

	return &copied, nil
}

// DeleteTask implements port.TaskStore.
func (s *TaskStore) DeleteTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, exists := s.tasks[taskID]
	if !exists || record.ownerID != ownerID {
		return errors.WithStack(port.ErrNotFound)
	}

	delete(s.tasks, record.id)

	return nil
}

// CountTasksByTitle implements port.TaskStore.
func (s *TaskStore) CountTasksByTitle(ctx context.Context, ownerID model.UserID, title string) (int64, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var total int64

	for _, record := range s.tasks {
		if record.ownerID == ownerID && record.title == title {
			total++
		}
	}

	return total, nil
}

var _ port.TaskStore = &TaskStore{}
