package usecases

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attachmentusecases "github.com/compiler-aditya/PropTech/internal/application/attachment/usecases"
	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	"github.com/compiler-aditya/PropTech/internal/domain/user"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	apperrors "github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

var pngPhoto = append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 32)...)

type memoryAvatarStore struct {
	blobs   map[string][]byte
	deleted []string
	putErr  error
}

func newMemoryAvatarStore(existing ...string) *memoryAvatarStore {
	s := &memoryAvatarStore{blobs: make(map[string][]byte)}
	for _, url := range existing {
		s.blobs[url] = pngPhoto
	}
	return s
}

func (s *memoryAvatarStore) Put(_ context.Context, path string, data []byte, _ string) (string, error) {
	if s.putErr != nil {
		return "", s.putErr
	}
	url := "local:" + path
	s.blobs[url] = data
	return url, nil
}

func (s *memoryAvatarStore) Delete(_ context.Context, url string) error {
	delete(s.blobs, url)
	s.deleted = append(s.deleted, url)
	return nil
}

func (s *memoryAvatarStore) Open(_ context.Context, url string) (io.ReadCloser, error) {
	data, ok := s.blobs[url]
	if !ok {
		return nil, errors.New("no such blob")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func tenantWithAvatar(t *testing.T, storageURL string) *user.User {
	t.Helper()
	u := newUser(t, 7, "Sarah Johnson", "sarah@demo.com", authorization.RoleTenant)
	if storageURL != "" {
		_, err := u.ReplaceAvatar(storageURL)
		require.NoError(t, err)
	}
	return u
}

func TestUpdateAvatarUseCase(t *testing.T) {
	tests := []struct {
		name        string
		existing    string
		file        *attachmentusecases.UploadFile
		putErr      error
		updateErr   error
		wantType    apperrors.ErrorType
		wantMsg     string
		wantStored  int
		wantDeleted []string
	}{
		{
			name:       "first photo",
			file:       &attachmentusecases.UploadFile{Filename: "me.png", MimeType: "image/png", Data: pngPhoto},
			wantStored: 1,
		},
		{
			name:        "replaces previous photo",
			existing:    "local:avatars/old.png",
			file:        &attachmentusecases.UploadFile{Filename: "me.png", MimeType: "image/png", Data: pngPhoto},
			wantStored:  1,
			wantDeleted: []string{"local:avatars/old.png"},
		},
		{
			name:     "no file",
			wantType: apperrors.ErrorTypeValidation,
			wantMsg:  MsgNoFileProvided,
		},
		{
			name:     "empty file",
			file:     &attachmentusecases.UploadFile{Filename: "me.png", MimeType: "image/png"},
			wantType: apperrors.ErrorTypeValidation,
			wantMsg:  MsgNoFileProvided,
		},
		{
			name:     "wrong type",
			file:     &attachmentusecases.UploadFile{Filename: "me.pdf", MimeType: "application/pdf", Data: []byte("%PDF-1.7")},
			wantType: apperrors.ErrorTypeValidation,
			wantMsg:  ticket.MsgInvalidFileType,
		},
		{
			name:     "spoofed content",
			existing: "local:avatars/old.png",
			file:     &attachmentusecases.UploadFile{Filename: "me.png", MimeType: "image/png", Data: []byte("GIF89a-not-a-png")},
			wantType: apperrors.ErrorTypeIntegrity,
			wantMsg:  ticket.MsgFileContentMismatch,
		},
		{
			name:     "store fails",
			file:     &attachmentusecases.UploadFile{Filename: "me.png", MimeType: "image/png", Data: pngPhoto},
			putErr:   errors.New("bucket unreachable"),
			wantType: apperrors.ErrorTypeInternal,
			wantMsg:  MsgAvatarUploadFail,
		},
		{
			name:        "save fails drops new blob",
			existing:    "local:avatars/old.png",
			file:        &attachmentusecases.UploadFile{Filename: "me.png", MimeType: "image/png", Data: pngPhoto},
			updateErr:   errors.New("connection reset"),
			wantType:    apperrors.ErrorTypeInternal,
			wantMsg:     MsgAvatarUploadFail,
			wantDeleted: []string{"local:avatars/new-photo.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := tenantWithAvatar(t, tt.existing)
			repo := &stubUserRepository{byEmail: map[string]*user.User{"sarah@demo.com": u}, updateErr: tt.updateErr}
			var existing []string
			if tt.existing != "" {
				existing = append(existing, tt.existing)
			}
			blobs := newMemoryAvatarStore(existing...)
			blobs.putErr = tt.putErr

			uc := NewUpdateAvatarUseCase(repo, blobs, logger.NewLogger())
			uc.newName = func() string { return "new-photo" }

			got, err := uc.Execute(context.Background(), UpdateAvatarCommand{UserID: 7, File: tt.file})

			assert.Equal(t, tt.wantDeleted, blobs.deleted)
			if tt.wantType != "" {
				appErr := apperrors.GetAppError(err)
				require.NotNil(t, appErr)
				assert.Equal(t, tt.wantType, appErr.Type)
				assert.Equal(t, tt.wantMsg, appErr.Message)
				assert.Len(t, blobs.blobs, len(existing))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1, repo.updates)
			assert.Equal(t, "local:avatars/new-photo.png", u.AvatarURL())
			assert.Equal(t, "/api/users/7/avatar", got.AvatarURL)
			assert.Len(t, blobs.blobs, tt.wantStored)
		})
	}
}

func TestRemoveAvatarUseCase(t *testing.T) {
	t.Run("clears and deletes", func(t *testing.T) {
		u := tenantWithAvatar(t, "local:avatars/old.png")
		repo := &stubUserRepository{byEmail: map[string]*user.User{"sarah@demo.com": u}}
		blobs := newMemoryAvatarStore("local:avatars/old.png")

		got, err := NewRemoveAvatarUseCase(repo, blobs, logger.NewLogger()).Execute(context.Background(), 7)
		require.NoError(t, err)
		assert.Empty(t, got.AvatarURL)
		assert.False(t, u.HasAvatar())
		assert.Equal(t, 1, repo.updates)
		assert.Equal(t, []string{"local:avatars/old.png"}, blobs.deleted)
	})

	t.Run("nothing to remove", func(t *testing.T) {
		repo := &stubUserRepository{byEmail: map[string]*user.User{"sarah@demo.com": tenantWithAvatar(t, "")}}
		blobs := newMemoryAvatarStore()

		_, err := NewRemoveAvatarUseCase(repo, blobs, logger.NewLogger()).Execute(context.Background(), 7)
		require.NoError(t, err)
		assert.Zero(t, repo.updates)
		assert.Empty(t, blobs.deleted)
	})

	t.Run("save fails keeps blob", func(t *testing.T) {
		repo := &stubUserRepository{
			byEmail:   map[string]*user.User{"sarah@demo.com": tenantWithAvatar(t, "local:avatars/old.png")},
			updateErr: errors.New("connection reset"),
		}
		blobs := newMemoryAvatarStore("local:avatars/old.png")

		_, err := NewRemoveAvatarUseCase(repo, blobs, logger.NewLogger()).Execute(context.Background(), 7)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, MsgAvatarRemoveFail, appErr.Message)
		assert.Empty(t, blobs.deleted)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := &stubUserRepository{byEmail: map[string]*user.User{}}
		_, err := NewRemoveAvatarUseCase(repo, newMemoryAvatarStore(), logger.NewLogger()).Execute(context.Background(), 99)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	})
}

func TestGetAvatarUseCase(t *testing.T) {
	repo := &stubUserRepository{byEmail: map[string]*user.User{
		"sarah@demo.com": tenantWithAvatar(t, "local:avatars/sarah.png"),
		"john@demo.com":  newUser(t, 5, "John Smith", "john@demo.com", authorization.RoleTechnician),
		"mike@demo.com": func() *user.User {
			u := newUser(t, 6, "Mike Chen", "mike@demo.com", authorization.RoleTechnician)
			_, err := u.ReplaceAvatar("local:avatars/gone.jpg")
			require.NoError(t, err)
			return u
		}(),
	}}
	uc := NewGetAvatarUseCase(repo, newMemoryAvatarStore("local:avatars/sarah.png"), logger.NewLogger())

	t.Run("streams photo", func(t *testing.T) {
		file, err := uc.Execute(context.Background(), 7)
		require.NoError(t, err)
		defer file.Body.Close()
		assert.Equal(t, "image/png", file.MimeType)
		data, err := io.ReadAll(file.Body)
		require.NoError(t, err)
		assert.Equal(t, pngPhoto, data)
	})

	t.Run("no photo", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), 5)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), 99)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("blob gone", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), 6)
		assert.ErrorIs(t, err, ErrAvatarUnavailable)
	})
}
