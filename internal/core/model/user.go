package model

import (
	"net/mail"
	"strings"
	"time"

	"github.com/rs/xid"
)

type UserID string

func NewUserID() UserID {
	return UserID(xid.New().String())
}

type User interface {
	WithID[UserID]
	WithLifecycle

	Name() string
	Email() string
	PasswordHash() string
}

const UserPasswordMinLength = 6

func ValidateUserName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: "name must not be empty"}
	}

	return nil
}

func ValidateUserEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return &ValidationError{Field: "email", Message: "email must be a valid address"}
	}

	return nil
}

func ValidateUserPassword(password string) error {
	if len(password) < UserPasswordMinLength {
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}

	return nil
}

type BaseUser struct {
	id           UserID
	name         string
	email        string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// ID implements User.
func (u *BaseUser) ID() UserID {
	return u.id
}

// Name implements User.
func (u *BaseUser) Name() string {
	return u.name
}

// Email implements User.
func (u *BaseUser) Email() string {
	return u.email
}

// PasswordHash implements User.
func (u *BaseUser) PasswordHash() string {
	return u.passwordHash
}

// CreatedAt implements User.
func (u *BaseUser) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt implements User.
func (u *BaseUser) UpdatedAt() time.Time {
	return u.updatedAt
}

var _ User = &BaseUser{}

func NewUser(name, email, passwordHash string) *BaseUser {
	return &BaseUser{
		id:           NewUserID(),
		name:         strings.TrimSpace(name),
		email:        strings.TrimSpace(email),
		passwordHash: passwordHash,
	}
}
