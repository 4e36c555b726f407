package usecases

import (
	"context"
	"io"
)

type BlobStore interface {
	Put(ctx context.Context, path string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
	Open(ctx context.Context, url string) (io.ReadCloser, error)
}

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
