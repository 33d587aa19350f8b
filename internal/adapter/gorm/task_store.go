package gorm

import (
	"context"
	"strings"

	"github.com/bornholm/taskboard/internal/core/model"
	"github.com/bornholm/taskboard/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateTask implements port.TaskStore.
func (s *Store) CreateTask(ctx context.Context, task model.Task) (model.Task, error) {
	row := fromTask(task)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Create(row).Error; err != nil {
			if isConstraintViolation(err) {
				return errors.WithStack(port.ErrAlreadyExists)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedTask{row}, nil
}

// GetTask implements port.TaskStore.
func (s *Store) GetTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID) (model.Task, error) {
	var task Task

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		err := db.First(&task, "id = ? AND owner_id = ?", string(taskID), string(ownerID)).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedTask{&task}, nil
}

// QueryTasks implements port.TaskStore.
func (s *Store) QueryTasks(ctx context.Context, ownerID model.UserID, opts port.QueryTasksOptions) ([]model.Task, error) {
	var rows []*Task

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		query := db.Where("owner_id = ?", string(ownerID))

		if opts.Search != nil && strings.TrimSpace(*opts.Search) != "" {
			pattern := likePattern(*opts.Search)
			query = query.Where("LOWER(title) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\'", pattern, pattern)
		}

		order := "created_at DESC"
		if opts.Sort != nil && *opts.Sort == port.SortOrderOldest {
			order = "created_at ASC"
		}

		if err := query.Order(order).Find(&rows).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, &wrappedTask{row})
	}

	return tasks, nil
}

// UpdateTask implements port.TaskStore.
func (s *Store) UpdateTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID, updates port.TaskUpdates) (model.Task, error) {
	var task Task

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		err := db.First(&task, "id = ? AND owner_id = ?", string(taskID), string(ownerID)).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		if updates.Title != nil {
			task.Title = *updates.Title
		}

		if updates.Description != nil {
			task.Description = *updates.Description
		}

		if updates.Status != nil {
			task.Status = string(*updates.Status)
		}

		if err := db.Save(&task).Error; err != nil {
			if isConstraintViolation(err) {
				return errors.WithStack(port.ErrAlreadyExists)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedTask{&task}, nil
}

// DeleteTask implements port.TaskStore.
func (s *Store) DeleteTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		result := db.Delete(&Task{}, "id = ? AND owner_id = ?", string(taskID), string(ownerID))
		if result.Error != nil {
			return errors.WithStack(result.Error)
		}

		if result.RowsAffected == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// CountTasksByTitle implements port.TaskStore.
func (s *Store) CountTasksByTitle(ctx context.Context, ownerID model.UserID, title string) (int64, error) {
	var total int64

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		err := db.Model(&Task{}).
			Where("owner_id = ? AND title = ?", string(ownerID), title).
			Count(&total).Error
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return total, nil
}

var _ port.TaskStore = &Store{}

// likePattern turns raw user input into a lowercased LIKE pattern where
// every LIKE metacharacter matches itself.
func likePattern(search string) string {
	escaped := strings.ToLower(strings.TrimSpace(search))
	escaped = strings.ReplaceAll(escaped, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `%`, `\%`)
	escaped = strings.ReplaceAll(escaped, `_`, `\_`)

	return "%" + escaped + "%"
}
