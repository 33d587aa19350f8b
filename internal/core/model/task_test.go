package model

import (
	"strings"
	"testing"
)

func TestCanTransition(t *testing.T) {
	type testCase struct {
		From    TaskStatus
		To      TaskStatus
		Allowed bool
	}

	testCases := []testCase{
		{TaskStatusCreated, TaskStatusInProgress, true},
		{TaskStatusInProgress, TaskStatusCreated, true},
		{TaskStatusInProgress, TaskStatusCompleted, true},
		{TaskStatusCompleted, TaskStatusInProgress, true},
		{TaskStatusCreated, TaskStatusCompleted, false},
		{TaskStatusCompleted, TaskStatusCreated, false},
		{TaskStatusCreated, TaskStatusCreated, true},
		{TaskStatusInProgress, TaskStatusInProgress, true},
		{TaskStatusCompleted, TaskStatusCompleted, true},
	}

	for _, tc := range testCases {
		if e, g := tc.Allowed, CanTransition(tc.From, tc.To); e != g {
			t.Errorf("CanTransition(%s, %s): expected %v, got %v", tc.From, tc.To, e, g)
		}
	}
}

func TestNewTask(t *testing.T) {
	ownerID := NewUserID()

	task, err := NewTask(ownerID, "  Buy groceries  ", "Buy milk and bread")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := "Buy groceries", task.Title(); e != g {
		t.Errorf("task.Title(): expected %q, got %q", e, g)
	}

	if e, g := TaskStatusCreated, task.Status(); e != g {
		t.Errorf("task.Status(): expected %s, got %s", e, g)
	}

	if e, g := ownerID, task.OwnerID(); e != g {
		t.Errorf("task.OwnerID(): expected %s, got %s", e, g)
	}

	if task.ID() == "" {
		t.Errorf("task.ID() should not be empty")
	}
}

func TestNewTaskValidation(t *testing.T) {
	type testCase struct {
		Name        string
		Title       string
		Description string
		Field       string
	}

	testCases := []testCase{
		{
			Name:        "TitleTooShort",
			Title:       "Oops",
			Description: "A long enough description",
			Field:       "title",
		},
		{
			Name:        "TitleTooLong",
			Title:       strings.Repeat("a", 101),
			Description: "A long enough description",
			Field:       "title",
		},
		{
			Name:        "TitleOnlyWhitespace",
			Title:       "        ",
			Description: "A long enough description",
			Field:       "title",
		},
		{
			Name:        "DescriptionTooShort",
			Title:       "Buy groceries",
			Description: "Short",
			Field:       "description",
		},
		{
			Name:        "DescriptionTooLong",
			Title:       "Buy groceries",
			Description: strings.Repeat("a", 701),
			Field:       "description",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := NewTask(NewUserID(), tc.Title, tc.Description)
			if err == nil {
				t.Fatalf("expected a validation error, got nil")
			}

			validationErr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}

			if e, g := tc.Field, validationErr.Field; e != g {
				t.Errorf("validationErr.Field: expected %q, got %q", e, g)
			}
		})
	}
}

func TestParseTaskStatus(t *testing.T) {
	for _, raw := range []string{"CREATED", "INPROGRESS", "COMPLETED"} {
		if _, err := ParseTaskStatus(raw); err != nil {
			t.Errorf("ParseTaskStatus(%q): unexpected error: %+v", raw, err)
		}
	}

	if _, err := ParseTaskStatus("DONE"); err == nil {
		t.Errorf("ParseTaskStatus(\"DONE\"): expected an error, got nil")
	}
}
