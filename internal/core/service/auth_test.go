package service

import (
	"context"
	"testing"

	"github.com/bornholm/taskboard/internal/adapter/memory"
	"github.com/bornholm/taskboard/internal/core/model"
	"github.com/bornholm/taskboard/internal/core/port"
	"github.com/pkg/errors"
)

func TestAuthSignupThenLogin(t *testing.T) {
	auth := NewAuth(memory.NewUserStore(), []byte("test-signing-key"))

	ctx := context.Background()

	user, token, err := auth.Signup(ctx, "Ada", "ada@example.net", "correct horse battery staple")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "ada@example.net", user.Email(); e != g {
		t.Errorf("user.Email(): expected %q, got %q", e, g)
	}

	if token == "" {
		t.Errorf("token should not be empty")
	}

	userID, err := auth.Verify(ctx, token)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := user.ID(), userID; e != g {
		t.Errorf("userID: expected %s, got %s", e, g)
	}

	_, token, err = auth.Login(ctx, "ada@example.net", "correct horse battery staple")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := auth.Verify(ctx, token); err != nil {
		t.Errorf("Verify(): unexpected error: %+v", err)
	}
}

func TestAuthInvalidCredentials(t *testing.T) {
	auth := NewAuth(memory.NewUserStore(), []byte("test-signing-key"))

	ctx := context.Background()

	if _, _, err := auth.Signup(ctx, "Grace", "grace@example.net", "a strong password"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	// Wrong password and unknown email must be indistinguishable
	if _, _, err := auth.Login(ctx, "grace@example.net", "wrong password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() with wrong password: expected ErrInvalidCredentials, got %v", err)
	}

	if _, _, err := auth.Login(ctx, "nobody@example.net", "a strong password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() with unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthDuplicateEmail(t *testing.T) {
	auth := NewAuth(memory.NewUserStore(), []byte("test-signing-key"))

	ctx := context.Background()

	if _, _, err := auth.Signup(ctx, "Grace", "grace@example.net", "a strong password"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, _, err := auth.Signup(ctx, "Grace 2", "grace@example.net", "another password"); !errors.Is(err, port.ErrAlreadyExists) {
		t.Errorf("second Signup(): expected port.ErrAlreadyExists, got %v", err)
	}
}

func TestAuthSignupValidation(t *testing.T) {
	auth := NewAuth(memory.NewUserStore(), []byte("test-signing-key"))

	ctx := context.Background()

	type testCase struct {
		Name     string
		UserName string
		Email    string
		Password string
	}

	testCases := []testCase{
		{Name: "EmptyName", UserName: "  ", Email: "ada@example.net", Password: "a strong password"},
		{Name: "BadEmail", UserName: "Ada", Email: "not-an-email", Password: "a strong password"},
		{Name: "ShortPassword", UserName: "Ada", Email: "ada@example.net", Password: "nope"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			_, _, err := auth.Signup(ctx, tc.UserName, tc.Email, tc.Password)

			var validationErr *model.ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("expected *model.ValidationError, got %v", err)
			}
		})
	}
}

func TestAuthVerifyRejectsGarbage(t *testing.T) {
	auth := NewAuth(memory.NewUserStore(), []byte("test-signing-key"))

	ctx := context.Background()

	if _, err := auth.Verify(ctx, "not-a-token"); err == nil {
		t.Errorf("Verify(): expected an error, got nil")
	}

	// A token signed with another key is rejected
	other := NewAuth(memory.NewUserStore(), []byte("another-signing-key"))

	_, token, err := other.Signup(ctx, "Eve", "eve@example.net", "a strong password")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := auth.Verify(ctx, token); err == nil {
		t.Errorf("Verify() with foreign token: expected an error, got nil")
	}
}
