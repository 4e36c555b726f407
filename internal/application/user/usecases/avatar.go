package usecases

import (
	"context"
	"io"
	"path"

	"github.com/google/uuid"

	attachmentusecases "github.com/compiler-aditya/PropTech/internal/application/attachment/usecases"
	"github.com/compiler-aditya/PropTech/internal/application/user/dto"
	"github.com/compiler-aditya/PropTech/internal/domain/user"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

const (
	MsgNoFileProvided   = "No file provided"
	MsgAvatarNotFound   = "Photo not found"
	MsgAvatarUploadFail = "Failed to upload photo"
	MsgAvatarRemoveFail = "Failed to remove photo"

	avatarPrefix = "avatars/"
)

// ErrAvatarUnavailable marks a user whose photo blob could not be opened.
var ErrAvatarUnavailable = errors.NewInternalError("Photo not available")

var avatarContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

type UpdateAvatarCommand struct {
	UserID uint
	File   *attachmentusecases.UploadFile
}

// UpdateAvatarUseCase stores a new profile photo and deletes the one it replaces.
type UpdateAvatarUseCase struct {
	userRepo user.Repository
	blobs    AvatarStore
	logger   logger.Interface
	newName  func() string
}

func NewUpdateAvatarUseCase(userRepo user.Repository, blobs AvatarStore, logger logger.Interface) *UpdateAvatarUseCase {
	return &UpdateAvatarUseCase{
		userRepo: userRepo,
		blobs:    blobs,
		logger:   logger,
		newName:  uuid.NewString,
	}
}

func (uc *UpdateAvatarUseCase) Execute(ctx context.Context, cmd UpdateAvatarCommand) (*dto.UserDTO, error) {
	if cmd.File == nil || len(cmd.File.Data) == 0 {
		return nil, errors.NewValidationError(MsgNoFileProvided)
	}

	u, err := loadSelf(ctx, uc.userRepo, cmd.UserID, uc.logger)
	if err != nil {
		return nil, err
	}

	ext, err := attachmentusecases.CheckFile(*cmd.File)
	if err != nil {
		return nil, err
	}

	url, err := uc.blobs.Put(ctx, avatarPrefix+uc.newName()+"."+ext, cmd.File.Data, cmd.File.MimeType)
	if err != nil {
		uc.logger.Errorw("failed to store avatar", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError(MsgAvatarUploadFail)
	}

	previous, err := u.ReplaceAvatar(url)
	if err == nil {
		err = uc.userRepo.Update(ctx, u)
	}
	if err != nil {
		uc.logger.Errorw("failed to save avatar", "error", err, "user_id", u.ID())
		if delErr := uc.blobs.Delete(ctx, url); delErr != nil {
			uc.logger.Warnw("failed to delete unsaved avatar", "error", delErr, "storage_url", url)
		}
		return nil, errors.NewInternalError(MsgAvatarUploadFail)
	}

	if previous != "" {
		if err := uc.blobs.Delete(ctx, previous); err != nil {
			uc.logger.Warnw("failed to delete replaced avatar", "error", err, "storage_url", previous)
		}
	}

	uc.logger.Infow("avatar updated", "user_id", u.ID())
	return dto.ToUserDTO(u), nil
}

type RemoveAvatarUseCase struct {
	userRepo user.Repository
	blobs    AvatarStore
	logger   logger.Interface
}

func NewRemoveAvatarUseCase(userRepo user.Repository, blobs AvatarStore, logger logger.Interface) *RemoveAvatarUseCase {
	return &RemoveAvatarUseCase{userRepo: userRepo, blobs: blobs, logger: logger}
}

// Execute clears the photo, then deletes its blob. Removing an absent photo
// succeeds.
func (uc *RemoveAvatarUseCase) Execute(ctx context.Context, userID uint) (*dto.UserDTO, error) {
	u, err := loadSelf(ctx, uc.userRepo, userID, uc.logger)
	if err != nil {
		return nil, err
	}
	if !u.HasAvatar() {
		return dto.ToUserDTO(u), nil
	}

	previous := u.ClearAvatar()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to clear avatar", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError(MsgAvatarRemoveFail)
	}

	// A blob left behind here is collected by the orphan sweep.
	if err := uc.blobs.Delete(ctx, previous); err != nil {
		uc.logger.Warnw("failed to delete removed avatar", "error", err, "storage_url", previous)
	}

	uc.logger.Infow("avatar removed", "user_id", u.ID())
	return dto.ToUserDTO(u), nil
}

// AvatarFile is an open profile photo. The caller must close Body.
type AvatarFile struct {
	Body     io.ReadCloser
	MimeType string
}

// GetAvatarUseCase streams any user's photo to any signed-in user.
type GetAvatarUseCase struct {
	userRepo user.Repository
	blobs    AvatarStore
	logger   logger.Interface
}

func NewGetAvatarUseCase(userRepo user.Repository, blobs AvatarStore, logger logger.Interface) *GetAvatarUseCase {
	return &GetAvatarUseCase{userRepo: userRepo, blobs: blobs, logger: logger}
}

func (uc *GetAvatarUseCase) Execute(ctx context.Context, userID uint) (*AvatarFile, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", userID)
		return nil, errors.NewInternalError("failed to load photo")
	}
	if u == nil || !u.HasAvatar() {
		return nil, errors.NewNotFoundError(MsgAvatarNotFound)
	}

	body, err := uc.blobs.Open(ctx, u.AvatarURL())
	if err != nil {
		uc.logger.Warnw("failed to open avatar", "error", err, "user_id", userID, "storage_url", u.AvatarURL())
		return nil, ErrAvatarUnavailable
	}

	mimeType, ok := avatarContentTypes[path.Ext(u.AvatarURL())]
	if !ok {
		mimeType = "application/octet-stream"
	}
	return &AvatarFile{Body: body, MimeType: mimeType}, nil
}

func loadSelf(ctx context.Context, repo user.Repository, userID uint, log logger.Interface) (*user.User, error) {
	u, err := repo.GetByID(ctx, userID)
	if err != nil {
		log.Errorw("failed to get user", "error", err, "user_id", userID)
		return nil, errors.NewInternalError("failed to load user")
	}
	if u == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	return u, nil
}
