package model

import (
	"strings"
	"time"

	"github.com/rs/xid"
)

type TaskID string

func NewTaskID() TaskID {
	return TaskID(xid.New().String())
}

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusInProgress TaskStatus = "INPROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// ParseTaskStatus validates a raw status value coming from a client.
func ParseTaskStatus(raw string) (TaskStatus, error) {
	status := TaskStatus(raw)
	switch status {
	case TaskStatusCreated, TaskStatusInProgress, TaskStatusCompleted:
		return status, nil
	}

	return "", &ValidationError{Field: "status", Message: "status must be one of CREATED, INPROGRESS or COMPLETED"}
}

// CanTransition reports whether a task may move directly from one status
// to another. A task never moves between CREATED and COMPLETED without
// passing through INPROGRESS. A self transition is always allowed.
func CanTransition(from, to TaskStatus) bool {
	if from == to {
		return true
	}

	switch from {
	case TaskStatusCreated:
		return to == TaskStatusInProgress
	case TaskStatusInProgress:
		return to == TaskStatusCreated || to == TaskStatusCompleted
	case TaskStatusCompleted:
		return to == TaskStatusInProgress
	}

	return false
}

const (
	TaskTitleMinLength       = 5
	TaskTitleMaxLength       = 100
	TaskDescriptionMinLength = 10
	TaskDescriptionMaxLength = 700
)

func ValidateTaskTitle(title string) error {
	if length := len([]rune(title)); length < TaskTitleMinLength || length > TaskTitleMaxLength {
		return &ValidationError{Field: "title", Message: "title must be between 5 and 100 characters"}
	}

	return nil
}

func ValidateTaskDescription(description string) error {
	if length := len([]rune(description)); length < TaskDescriptionMinLength || length > TaskDescriptionMaxLength {
		return &ValidationError{Field: "description", Message: "description must be between 10 and 700 characters"}
	}

	return nil
}

type Task interface {
	WithID[TaskID]
	WithLifecycle

	OwnerID() UserID
	Title() string
	Description() string
	Status() TaskStatus
}

type BaseTask struct {
	id          TaskID
	ownerID     UserID
	title       string
	description string
	status      TaskStatus
	createdAt   time.Time
	updatedAt   time.Time
}

// ID implements Task.
func (t *BaseTask) ID() TaskID {
	return t.id
}

// OwnerID implements Task.
func (t *BaseTask) OwnerID() UserID {
	return t.ownerID
}

// Title implements Task.
func (t *BaseTask) Title() string {
	return t.title
}

// Description implements Task.
func (t *BaseTask) Description() string {
	return t.description
}

// Status implements Task.
func (t *BaseTask) Status() TaskStatus {
	return t.status
}

// CreatedAt implements Task.
func (t *BaseTask) CreatedAt() time.Time {
	return t.createdAt
}

// UpdatedAt implements Task.
func (t *BaseTask) UpdatedAt() time.Time {
	return t.updatedAt
}

var _ Task = &BaseTask{}

// NewTask creates a new task in the CREATED status, trimming and
// validating the given title and description. Timestamps are assigned
// by the store on first save.
func NewTask(ownerID UserID, title, description string) (*BaseTask, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if err := ValidateTaskTitle(title); err != nil {
		return nil, err
	}

	if err := ValidateTaskDescription(description); err != nil {
		return nil, err
	}

	return &BaseTask{
		id:          NewTaskID(),
		ownerID:     ownerID,
		title:       title,
		description: description,
		status:      TaskStatusCreated,
	}, nil
}
