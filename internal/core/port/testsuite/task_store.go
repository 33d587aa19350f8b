package testsuite

import (
	"context"
	"testing"
	"time"

	"github.com/bornholm/taskboard/internal/core/model"
	"github.com/bornholm/taskboard/internal/core/port"
	"github.com/pkg/errors"
)

// TestTaskStore runs the conformance suite shared by every TaskStore
// adapter.
func TestTaskStore(t *testing.T, factory func(t *testing.T) (port.TaskStore, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store port.TaskStore) error
	}

	testCases := []testCase{
		{
			Name: "CreateThenGet",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				task := mustNewTask(t, "Buy groceries", "Buy milk and bread")

				created, err := store.CreateTask(ctx, task)
				if err != nil {
					return errors.WithStack(err)
				}

				if created.CreatedAt().IsZero() {
					t.Errorf("created.CreatedAt() should not be zero value")
				}

				found, err := store.GetTask(ctx, task.OwnerID(), task.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := task.ID(), found.ID(); e != g {
					t.Errorf("found.ID(): expected %s, got %s", e, g)
				}

				if e, g := "Buy groceries", found.Title(); e != g {
					t.Errorf("found.Title(): expected %q, got %q", e, g)
				}

				if e, g := model.TaskStatusCreated, found.Status(); e != g {
					t.Errorf("found.Status(): expected %s, got %s", e, g)
				}

				return nil
			},
		},
		{
			Name: "OwnerScoping",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				task := mustNewTask(t, "Plan the trip", "Book flights and hotels")

				if _, err := store.CreateTask(ctx, task); err != nil {
					return errors.WithStack(err)
				}

				otherOwner := model.NewUserID()

				if _, err := store.GetTask(ctx, otherOwner, task.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("GetTask() with another owner: expected port.ErrNotFound, got %v", err)
				}

				if _, err := store.UpdateTask(ctx, otherOwner, task.ID(), port.TaskUpdates{}); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("UpdateTask() with another owner: expected port.ErrNotFound, got %v", err)
				}

				if err := store.DeleteTask(ctx, otherOwner, task.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("DeleteTask() with another owner: expected port.ErrNotFound, got %v", err)
				}

				return nil
			},
		},
		{
			Name: "DuplicateTitle",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				first := mustNewTask(t, "Water the plants", "All of them, even the cactus")

				if _, err := store.CreateTask(ctx, first); err != nil {
					return errors.WithStack(err)
				}

				second, err := model.NewTask(first.OwnerID(), "Water the plants", "Completely different description")
				if err != nil {
					return errors.WithStack(err)
				}

				if _, err := store.CreateTask(ctx, second); !errors.Is(err, port.ErrAlreadyExists) {
					t.Errorf("CreateTask() with duplicate title: expected port.ErrAlreadyExists, got %v", err)
				}

				// The same title under another owner is not a conflict
				other := mustNewTask(t, "Water the plants", "Completely different description")

				if _, err := store.CreateTask(ctx, other); err != nil {
					t.Errorf("CreateTask() with same title but another owner: unexpected error: %+v", err)
				}

				return nil
			},
		},
		{
			Name: "QuerySearchIsLiteral",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				ownerID := model.NewUserID()

				titles := map[string]string{
					"Release v1.2 today": "Contains the literal a.b marker",
					"Release package":    "Contains axb which a regex dot would match",
				}

				for title, description := range titles {
					task, err := model.NewTask(ownerID, title, description)
					if err != nil {
						return errors.WithStack(err)
					}

					if _, err := store.CreateTask(ctx, task); err != nil {
						return errors.WithStack(err)
					}
				}

				search := "a.b"

				tasks, err := store.QueryTasks(ctx, ownerID, port.QueryTasksOptions{Search: &search})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(tasks); e != g {
					t.Fatalf("len(tasks): expected %d, got %d", e, g)
				}

				if e, g := "Release v1.2 today", tasks[0].Title(); e != g {
					t.Errorf("tasks[0].Title(): expected %q, got %q", e, g)
				}

				// Case-insensitive match on title
				search = "release V1.2"

				tasks, err = store.QueryTasks(ctx, ownerID, port.QueryTasksOptions{Search: &search})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(tasks); e != g {
					t.Errorf("len(tasks): expected %d, got %d", e, g)
				}

				// No match returns an empty result, not an error
				search = "nothing like this"

				tasks, err = store.QueryTasks(ctx, ownerID, port.QueryTasksOptions{Search: &search})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 0, len(tasks); e != g {
					t.Errorf("len(tasks): expected %d, got %d", e, g)
				}

				return nil
			},
		},
		{
			Name: "QuerySortOrder",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				ownerID := model.NewUserID()

				for _, title := range []string{"First task", "Second task", "Third task"} {
					task, err := model.NewTask(ownerID, title, "A long enough description")
					if err != nil {
						return errors.WithStack(err)
					}

					if _, err := store.CreateTask(ctx, task); err != nil {
						return errors.WithStack(err)
					}

					// Keep creation timestamps strictly ordered
					time.Sleep(5 * time.Millisecond)
				}

				latest := port.SortOrderLatest

				tasks, err := store.QueryTasks(ctx, ownerID, port.QueryTasksOptions{Sort: &latest})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 3, len(tasks); e != g {
					t.Fatalf("len(tasks): expected %d, got %d", e, g)
				}

				if e, g := "Third task", tasks[0].Title(); e != g {
					t.Errorf("tasks[0].Title(): expected %q, got %q", e, g)
				}

				oldest := port.SortOrderOldest

				tasks, err = store.QueryTasks(ctx, ownerID, port.QueryTasksOptions{Sort: &oldest})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := "First task", tasks[0].Title(); e != g {
					t.Errorf("tasks[0].Title(): expected %q, got %q", e, g)
				}

				return nil
			},
		},
		{
			Name: "UpdateRefreshesTask",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				task := mustNewTask(t, "Write the report", "Quarterly numbers for the board")

				created, err := store.CreateTask(ctx, task)
				if err != nil {
					return errors.WithStack(err)
				}

				status := model.TaskStatusInProgress

				updated, err := store.UpdateTask(ctx, task.OwnerID(), task.ID(), port.TaskUpdates{Status: &status})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := model.TaskStatusInProgress, updated.Status(); e != g {
					t.Errorf("updated.Status(): expected %s, got %s", e, g)
				}

				if e, g := created.Title(), updated.Title(); e != g {
					t.Errorf("updated.Title(): expected %q, got %q", e, g)
				}

				if updated.UpdatedAt().Before(created.UpdatedAt()) {
					t.Errorf("updated.UpdatedAt() should not be before created.UpdatedAt()")
				}

				title := "Write the yearly report"

				updated, err = store.UpdateTask(ctx, task.OwnerID(), task.ID(), port.TaskUpdates{Title: &title})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := title, updated.Title(); e != g {
					t.Errorf("updated.Title(): expected %q, got %q", e, g)
				}

				if e, g := model.TaskStatusInProgress, updated.Status(); e != g {
					t.Errorf("updated.Status(): expected %s, got %s", e, g)
				}

				return nil
			},
		},
		{
			Name: "DeleteTwice",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				task := mustNewTask(t, "Clean the garage", "Sort the boxes and throw away the rest")

				if _, err := store.CreateTask(ctx, task); err != nil {
					return errors.WithStack(err)
				}

				if err := store.DeleteTask(ctx, task.OwnerID(), task.ID()); err != nil {
					return errors.WithStack(err)
				}

				if err := store.DeleteTask(ctx, task.OwnerID(), task.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("second DeleteTask(): expected port.ErrNotFound, got %v", err)
				}

				return nil
			},
		},
		{
			Name: "CountTasksByTitle",
			Run: func(t *testing.T, ctx context.Context, store port.TaskStore) error {
				task := mustNewTask(t, "Call the plumber", "The kitchen sink is leaking again")

				if _, err := store.CreateTask(ctx, task); err != nil {
					return errors.WithStack(err)
				}

				total, err := store.CountTasksByTitle(ctx, task.OwnerID(), "Call the plumber")
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := int64(1), total; e != g {
					t.Errorf("total: expected %d, got %d", e, g)
				}

				// Title matching is case-sensitive
				total, err = store.CountTasksByTitle(ctx, task.OwnerID(), "call the plumber")
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := int64(0), total; e != g {
					t.Errorf("total: expected %d, got %d", e, g)
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			store, err := factory(t)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			ctx := context.Background()

			if err := tc.Run(t, ctx, store); err != nil {
				t.Errorf("%+v", errors.WithStack(err))
			}
		})
	}
}

func mustNewTask(t *testing.T, title, description string) model.Task {
	t.Helper()

	task, err := model.NewTask(model.NewUserID(), title, description)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return task
}
