package user

import (
	"context"

	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
)

// Repository defines the interface for user data operations. Single-row lookups
// return (nil, nil) when nothing matches.
type Repository interface {
	Create(ctx context.Context, user *User) error

	// Update persists the mutable profile fields.
	Update(ctx context.Context, user *User) error

	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByIDs skips IDs that do not exist.
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)

	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByIDAndRole returns the user only if it holds role.
	GetByIDAndRole(ctx context.Context, id uint, role authorization.UserRole) (*User, error)

	// ListByRole returns users ordered by name.
	ListByRole(ctx context.Context, role authorization.UserRole) ([]*User, error)

	// ListAvatarURLs returns every storage handle a profile photo points at.
	ListAvatarURLs(ctx context.Context) ([]string, error)
}
