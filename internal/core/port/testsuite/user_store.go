package testsuite

import (
	"context"
	"testing"

	"github.com/bornholm/taskboard/internal/core/model"
	"github.com/bornholm/taskboard/internal/core/port"
	"github.com/pkg/errors"
)

// TestUserStore runs the conformance suite shared by every UserStore
// adapter.
func TestUserStore(t *testing.T, factory func(t *testing.T) (port.UserStore, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store port.UserStore) error
	}

	testCases := []testCase{
		{
			Name: "CreateThenFind",
			Run: func(t *testing.T, ctx context.Context, store port.UserStore) error {
				user := model.NewUser("Ada", "ada@example.net", "not-a-real-hash")

				created, err := store.CreateUser(ctx, user)
				if err != nil {
					return errors.WithStack(err)
				}

				if created.CreatedAt().IsZero() {
					t.Errorf("created.CreatedAt() should not be zero value")
				}

				byEmail, err := store.GetUserByEmail(ctx, "ada@example.net")
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := user.ID(), byEmail.ID(); e != g {
					t.Errorf("byEmail.ID(): expected %s, got %s", e, g)
				}

				byID, err := store.GetUserByID(ctx, user.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := "Ada", byID.Name(); e != g {
					t.Errorf("byID.Name(): expected %q, got %q", e, g)
				}

				return nil
			},
		},
		{
			Name: "DuplicateEmail",
			Run: func(t *testing.T, ctx context.Context, store port.UserStore) error {
				user := model.NewUser("Grace", "grace@example.net", "not-a-real-hash")

				if _, err := store.CreateUser(ctx, user); err != nil {
					return errors.WithStack(err)
				}

				duplicate := model.NewUser("Grace 2", "grace@example.net", "another-hash")

				if _, err := store.CreateUser(ctx, duplicate); !errors.Is(err, port.ErrAlreadyExists) {
					t.Errorf("CreateUser() with duplicate email: expected port.ErrAlreadyExists, got %v", err)
				}

				return nil
			},
		},
		{
			Name: "UnknownUser",
			Run: func(t *testing.T, ctx context.Context, store port.UserStore) error {
				if _, err := store.GetUserByEmail(ctx, "nobody@example.net"); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("GetUserByEmail(): expected port.ErrNotFound, got %v", err)
				}

				if _, err := store.GetUserByID(ctx, model.NewUserID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("GetUserByID(): expected port.ErrNotFound, got %v", err)
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
