// Package storage holds the blob store backends for ticket attachments. Every
// backend returns an opaque handle from Put that the other calls accept.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/compiler-aditya/PropTech/internal/shared/config"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

// ErrBlobNotFound is returned by Open and Delete for an unknown handle.
var ErrBlobNotFound = errors.New("blob not found")

type BlobStore interface {
	Put(ctx context.Context, path string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
	Open(ctx context.Context, url string) (io.ReadCloser, error)
}

// Lister is implemented by stores that can enumerate their blobs, which the
// orphan sweep needs.
type Lister interface {
	ListBefore(ctx context.Context, cutoff time.Time) ([]string, error)
}

func New(cfg config.StorageConfig, log logger.Interface) (BlobStore, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocalStore(cfg.LocalDir)
	case "cloudinary":
		return NewCloudinaryStore(cfg.Cloudinary, log)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

func splitHandle(url, scheme string) (string, error) {
	prefix := scheme + ":"
	if !strings.HasPrefix(url, prefix) {
		return "", fmt.Errorf("%w: %q is not a %s handle", ErrBlobNotFound, url, scheme)
	}
	rest := strings.TrimPrefix(url, prefix)
	if rest == "" {
		return "", fmt.Errorf("%w: empty %s handle", ErrBlobNotFound, scheme)
	}
	return rest, nil
}
