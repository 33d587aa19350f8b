package gorm

import (
	"time"

	"github.com/bornholm/taskboard/internal/core/model"
)

type Task struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	OwnerID string `gorm:"index;index:task_owner_title,unique"`

	Title       string `gorm:"index:task_owner_title,unique"`
	Description string

	Status string `gorm:"index"`
}

type wrappedTask struct {
	t *Task
}

// ID implements model.Task.
func (w *wrappedTask) ID() model.TaskID {
	return model.TaskID(w.t.ID)
}

// OwnerID implements model.Task.
func (w *wrappedTask) OwnerID() model.UserID {
	return model.UserID(w.t.OwnerID)
}

// Title implements model.Task.
func (w *wrappedTask) Title() string {
	return w.t.Title
}

// Description implements model.Task.
func (w *wrappedTask) Description() string {
	return w.t.Description
}

// Status implements model.Task.
func (w *wrappedTask) Status() model.TaskStatus {
	return model.TaskStatus(w.t.Status)
}

// CreatedAt implements model.Task.
func (w *wrappedTask) CreatedAt() time.Time {
	return w.t.CreatedAt
}

// UpdatedAt implements model.Task.
func (w *wrappedTask) UpdatedAt() time.Time {
	return w.t.UpdatedAt
}

var _ model.Task = &wrappedTask{}

func fromTask(t model.Task) *Task {
	return &Task{
		ID:          string(t.ID()),
		OwnerID:     string(t.OwnerID()),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      string(t.Status()),
	}
}
