package gorm

import (
	"time"

	"github.com/bornholm/taskboard/internal/core/model"
)

type User struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Name  string
	Email string `gorm:"unique"`

	PasswordHash string

	Tasks []*Task `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE;"`
}

type wrappedUser struct {
	u *User
}

// ID implements model.User.
func (w *wrappedUser) ID() model.UserID {
	return model.UserID(w.u.ID)
}

// Name implements model.User.
func (w *wrappedUser) Name() string {
	return w.u.Name
}

// Email implements model.User.
func (w *wrappedUser) Email() string {
	return w.u.Email
}

// PasswordHash implements model.User.
func (w *wrappedUser) PasswordHash() string {
	return w.u.PasswordHash
}

// CreatedAt implements model.User.
func (w *wrappedUser) CreatedAt() time.Time {
	return w.u.CreatedAt
}

// UpdatedAt implements model.User.
func (w *wrappedUser) UpdatedAt() time.Time {
	return w.u.UpdatedAt
}

var _ model.User = &wrappedUser{}

func fromUser(u model.User) *User {
	return &User{
		ID:           string(u.ID()),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
	}
}
