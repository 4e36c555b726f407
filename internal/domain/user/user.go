package user

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/compiler-aditya/PropTech/internal/domain/user/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/biztime"
)

// User is an account that acts on tickets. Role is its only authorization dimension.
type User struct {
	id           uint
	name         string
	email        *vo.Email
	passwordHash string
	role         authorization.UserRole
	avatarURL    string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name string, email *vo.Email, passwordHash string, role authorization.UserRole) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	name string,
	email *vo.Email,
	passwordHash string,
	role authorization.UserRole,
	avatarURL string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		avatarURL:    avatarURL,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() *vo.Email {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

// AvatarURL is the storage handle of the profile photo, empty when unset.
func (u *User) AvatarURL() string {
	return u.avatarURL
}

func (u *User) HasAvatar() bool {
	return u.avatarURL != ""
}

// ReplaceAvatar points the user at a new photo and returns the handle it
// replaced, which the caller owns deleting.
func (u *User) ReplaceAvatar(storageURL string) (string, error) {
	if storageURL == "" {
		return "", fmt.Errorf("avatar storage url is required")
	}
	previous := u.avatarURL
	u.avatarURL = storageURL
	u.updatedAt = biztime.NowUTC()
	return previous, nil
}

// ClearAvatar removes the photo and returns the handle it held.
func (u *User) ClearAvatar() string {
	previous := u.avatarURL
	u.avatarURL = ""
	u.updatedAt = biztime.NowUTC()
	return previous
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// Actor returns the identity this user acts with.
func (u *User) Actor() authorization.Actor {
	return authorization.Actor{ID: u.id, Role: u.role}
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
