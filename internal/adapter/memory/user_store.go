package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bornholm/taskboard/internal/core/model"
	"github.com/bornholm/taskboard/internal/core/port"
	"github.com/pkg/errors"
)

type userRecord struct {
	id           model.UserID
	name         string
	email        string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// ID implements model.User.
func (r *userRecord) ID() model.UserID {
	return r.id
}

// Name implements model.User.
func (r *userRecord) Name() string {
	return r.name
}

// Email implements model.User.
func (r *userRecord) Email() string {
	return r.email
}

// PasswordHash implements model.User.
func (r *userRecord) PasswordHash() string {
	return r.passwordHash
}

// CreatedAt implements model.User.
func (r *userRecord) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt implements model.User.
func (r *userRecord) UpdatedAt() time.Time {
	return r.updatedAt
}

var _ model.User = &userRecord{}

// UserStore is an in-memory port.UserStore used by tests and by the
// ephemeral storage mode.
type UserStore struct {
	mutex sync.RWMutex
	users map[model.UserID]*userRecord
	now   func() time.Time
}

func NewUserStore() *UserStore {
	return &UserStore{
		users: map[model.UserID]*userRecord{},
		now:   time.Now,
	}
}

// CreateUser implements port.UserStore.
func (s *UserStore) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, r := range s.users {
		if r.email == user.Email() {
			return nil, errors.WithStack(port.ErrAlreadyExists)
		}
	}

	now := s.now()

	record := &userRecord{
		id:           user.ID(),
		name:         user.Name(),
		email:        user.Email(),
		passwordHash: user.PasswordHash(),
		createdAt:    now,
		updatedAt:    now,
	}

	s.users[record.id] = record

	copied := *record

	return &copied, nil
}

// GetUserByEmail implements port.UserStore.
func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, record := range s.users {
		if record.email == email {
			copied := *record
			return &copied, nil
		}
	}

	return nil, errors.WithStack(port.ErrNotFound)
}

// GetUserByID implements port.UserStore.
func (s *UserStore) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	record, exists := s.users[userID]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	copied := *record

	return &copied, nil
}

var _ port.UserStore = &UserStore{}
