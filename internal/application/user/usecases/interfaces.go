package usecases

import (
	"context"
	"io"
	"time"

	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
)

type TokenIssuer interface {
	Generate(actor authorization.Actor) (string, time.Time, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type PasswordVerifier interface {
	Verify(password, hash string) error
	VerifyNothing(password string) error
}

// ReferenceCache holds read-mostly lists. A miss reports false.
type ReferenceCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context, keys ...string) error
}

type ActiveTicketCounter interface {
	CountActiveByAssignees(ctx context.Context, assigneeIDs []uint) (map[uint]int64, error)
}

// AvatarStore is the blob store profile photos live in.
type AvatarStore interface {
	Put(ctx context.Context, path string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
	Open(ctx context.Context, url string) (io.ReadCloser, error)
}
