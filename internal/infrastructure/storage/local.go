package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const localScheme = "local"

// LocalStore keeps blobs under a base directory. Handles look like
// "local:uploads/<name>".
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	if baseDir == "" {
		baseDir = "data"
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &LocalStore{baseDir: abs}, nil
}

// resolve maps a relative blob path to a file inside baseDir, refusing
// anything that would escape it.
func (s *LocalStore) resolve(rel string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == "." || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid blob path: %q", rel)
	}
	return filepath.Join(s.baseDir, clean), nil
}

func (s *LocalStore) Put(ctx context.Context, path string, data []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	full, err := s.resolve(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		return "", fmt.Errorf("failed to create blob dir: %w", err)
	}

	// O_EXCL: stored names are unique, an existing file means a collision.
	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", fmt.Errorf("failed to create blob: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(full)
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(full)
		return "", fmt.Errorf("failed to close blob: %w", err)
	}

	return localScheme + ":" + filepath.ToSlash(filepath.Clean(filepath.FromSlash(path))), nil
}

func (s *LocalStore) Delete(_ context.Context, url string) error {
	full, err := s.fileFor(url)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrBlobNotFound, url)
		}
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}

func (s *LocalStore) Open(_ context.Context, url string) (io.ReadCloser, error) {
	full, err := s.fileFor(url)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, url)
		}
		return nil, fmt.Errorf("failed to open blob: %w", err)
	}
	return f, nil
}

// ListBefore returns handles of blobs last modified before cutoff.
func (s *LocalStore) ListBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	var handles []string
	err := filepath.WalkDir(s.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if !info.ModTime().Before(cutoff) {
			return nil
		}
		rel, err := filepath.Rel(s.baseDir, path)
		if err != nil {
			return err
		}
		handles = append(handles, localScheme+":"+filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list blobs: %w", err)
	}
	return handles, nil
}

func (s *LocalStore) fileFor(url string) (string, error) {
	rel, err := splitHandle(url, localScheme)
	if err != nil {
		return "", err
	}
	return s.resolve(rel)
}
