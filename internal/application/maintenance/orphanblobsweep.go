// Package maintenance holds the batch jobs the scheduler runs.
package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/compiler-aditya/PropTech/internal/shared/biztime"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

const defaultOrphanGrace = time.Hour

// BlobLister enumerates stored blobs written before cutoff.
type BlobLister interface {
	ListBefore(ctx context.Context, cutoff time.Time) ([]string, error)
}

type BlobDeleter interface {
	Delete(ctx context.Context, url string) error
}

type StorageURLSource interface {
	ListStorageURLs(ctx context.Context) ([]string, error)
}

// StorageURLFunc adapts a listing function to StorageURLSource.
type StorageURLFunc func(ctx context.Context) ([]string, error)

func (f StorageURLFunc) ListStorageURLs(ctx context.Context) ([]string, error) {
	return f(ctx)
}

// StorageURLSources unions the references held by several tables.
type StorageURLSources []StorageURLSource

func (s StorageURLSources) ListStorageURLs(ctx context.Context) ([]string, error) {
	var all []string
	for _, src := range s {
		urls, err := src.ListStorageURLs(ctx)
		if err != nil {
			return nil, err
		}
		all = append(all, urls...)
	}
	return all, nil
}

// OrphanBlobSweep deletes blobs older than the grace period that no attachment
// or avatar references. The grace period keeps in-flight uploads safe, since their
// rows commit after the blobs are written.
type OrphanBlobSweep struct {
	lister  BlobLister
	deleter BlobDeleter
	refs    StorageURLSource
	grace   time.Duration
	logger  logger.Interface
}

func NewOrphanBlobSweep(
	lister BlobLister,
	deleter BlobDeleter,
	refs StorageURLSource,
	grace time.Duration,
	logger logger.Interface,
) *OrphanBlobSweep {
	if grace <= 0 {
		grace = defaultOrphanGrace
	}
	return &OrphanBlobSweep{
		lister:  lister,
		deleter: deleter,
		refs:    refs,
		grace:   grace,
		logger:  logger,
	}
}

func (j *OrphanBlobSweep) Execute(ctx context.Context) (int, error) {
	candidates, err := j.lister.ListBefore(ctx, biztime.NowUTC().Add(-j.grace))
	if err != nil {
		return 0, fmt.Errorf("failed to list blobs: %w", err)
	}
	if len(candidates) == 0 {
		return 0, nil
	}

	urls, err := j.refs.ListStorageURLs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list referenced blobs: %w", err)
	}
	referenced := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		referenced[u] = struct{}{}
	}

	removed := 0
	for _, url := range candidates {
		if _, ok := referenced[url]; ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if err := j.deleter.Delete(ctx, url); err != nil {
			j.logger.Warnw("failed to delete orphaned blob", "error", err, "storage_url", url)
			continue
		}
		removed++
	}
	return removed, nil
}
