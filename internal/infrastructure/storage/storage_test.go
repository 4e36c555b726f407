package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compiler-aditya/PropTech/internal/shared/config"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

func TestLocalStore_PutOpenDelete(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	url, err := store.Put(ctx, "uploads/abc.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "local:uploads/abc.png", url)

	rc, err := store.Open(ctx, url)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	_, err = store.Put(ctx, "uploads/abc.png", []byte("again"), "image/png")
	assert.Error(t, err, "stored names never overwrite")

	require.NoError(t, store.Delete(ctx, url))
	assert.ErrorIs(t, store.Delete(ctx, url), ErrBlobNotFound)

	_, err = store.Open(ctx, url)
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestLocalStore_RejectsEscapes(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"put outside base", func() error { _, err := store.Put(ctx, "../evil.png", nil, ""); return err }},
		{"put absolute", func() error { _, err := store.Put(ctx, "/etc/evil.png", nil, ""); return err }},
		{"open outside base", func() error { _, err := store.Open(ctx, "local:../../etc/passwd"); return err }},
		{"foreign handle", func() error { return store.Delete(ctx, "cloudinary:abc") }},
		{"empty handle", func() error { return store.Delete(ctx, "local:") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.call())
		})
	}
}

func TestLocalStore_ListBefore(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	oldURL, err := store.Put(ctx, "uploads/old.png", []byte("x"), "image/png")
	require.NoError(t, err)
	_, err = store.Put(ctx, "uploads/new.png", []byte("y"), "image/png")
	require.NoError(t, err)

	past := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "uploads", "old.png"), past, past))

	handles, err := store.ListBefore(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []string{oldURL}, handles)
}

func TestNew_SelectsDriver(t *testing.T) {
	log := logger.NewLogger()

	store, err := New(config.StorageConfig{Driver: "local", LocalDir: t.TempDir()}, log)
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, store)

	_, err = New(config.StorageConfig{Driver: "s3"}, log)
	assert.Error(t, err)
}

func TestCloudinaryStore_PublicID(t *testing.T) {
	s := &CloudinaryStore{folder: "proptech"}
	assert.Equal(t, "proptech/uploads/abc", s.publicID("uploads/abc.png"))

	s.folder = ""
	assert.Equal(t, "uploads/abc", s.publicID("uploads/abc.webp"))
}
