package port

import (
	"context"

	"github.com/bornholm/taskboard/internal/core/model"
)

type UserStore interface {
	// CreateUser persists a new user, or returns ErrAlreadyExists if the
	// email address is already registered
	CreateUser(ctx context.Context, user model.User) (model.User, error)

	// GetUserByEmail finds a user by its email address, or returns ErrNotFound
	GetUserByEmail(ctx context.Context, email string) (model.User, error)

	// GetUserByID finds a user by its ID, or returns ErrNotFound
	GetUserByID(ctx context.Context, userID model.UserID) (model.User, error)
}
