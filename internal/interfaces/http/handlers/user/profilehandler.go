package user

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	attachmentusecases "github.com/compiler-aditya/PropTech/internal/application/attachment/usecases"
	"github.com/compiler-aditya/PropTech/internal/application/user/dto"
	"github.com/compiler-aditya/PropTech/internal/application/user/usecases"
	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/constants"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
	"github.com/compiler-aditya/PropTech/internal/shared/utils"
)

// avatarField is the multipart field that carries the profile photo.
const avatarField = "avatar"

type updateAvatarExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateAvatarCommand) (*dto.UserDTO, error)
}

type removeAvatarExecutor interface {
	Execute(ctx context.Context, userID uint) (*dto.UserDTO, error)
}

type getAvatarExecutor interface {
	Execute(ctx context.Context, userID uint) (*usecases.AvatarFile, error)
}

// ProfileHandler serves the signed-in user's profile photo.
type ProfileHandler struct {
	updateUC updateAvatarExecutor
	removeUC removeAvatarExecutor
	getUC    getAvatarExecutor
	logger   logger.Interface
	maxBody  int64
}

func NewProfileHandler(
	updateUC updateAvatarExecutor,
	removeUC removeAvatarExecutor,
	getUC getAvatarExecutor,
	logger logger.Interface,
) *ProfileHandler {
	return &ProfileHandler{
		updateUC: updateUC,
		removeUC: removeUC,
		getUC:    getUC,
		logger:   logger,
		maxBody:  constants.MaxAvatarRequestBytes,
	}
}

// UpdateAvatar handles PUT /api/profile/avatar
func (h *ProfileHandler) UpdateAvatar(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	if c.Request.Body != nil {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody)
	}

	var file *attachmentusecases.UploadFile
	fh, err := c.FormFile(avatarField)
	var tooLarge *http.MaxBytesError
	switch {
	case stderrors.As(err, &tooLarge):
		h.logger.Warnw("avatar body over limit", "user_id", actor.ID, "limit", tooLarge.Limit)
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, ticket.MsgFileTooLarge)
		return
	case err == nil:
		f, err := fh.Open()
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid file upload"))
			return
		}
		data, err := io.ReadAll(io.LimitReader(f, constants.MaxAttachmentBytes+1))
		f.Close()
		if err != nil {
			h.logger.Warnw("failed to read avatar", "error", err, "user_id", actor.ID)
			utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid file upload"))
			return
		}
		file = &attachmentusecases.UploadFile{
			Filename: fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
			Data:     data,
		}
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateAvatarCommand{
		UserID: actor.ID,
		File:   file,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Photo updated", result)
}

// RemoveAvatar handles DELETE /api/profile/avatar
func (h *ProfileHandler) RemoveAvatar(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	result, err := h.removeUC.Execute(c.Request.Context(), actor.ID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Photo removed", result)
}

// ServeAvatar handles GET /api/users/:id/avatar
func (h *ProfileHandler) ServeAvatar(c *gin.Context) {
	userID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError(usecases.MsgAvatarNotFound))
		return
	}

	file, err := h.getUC.Execute(c.Request.Context(), userID)
	if stderrors.Is(err, usecases.ErrAvatarUnavailable) {
		utils.ErrorResponse(c, http.StatusBadGateway, usecases.ErrAvatarUnavailable.Message)
		return
	}
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer file.Body.Close()

	c.Header("Content-Type", file.MimeType)
	c.Header("Cache-Control", "private, max-age=300")
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, file.Body); err != nil {
		h.logger.Warnw("avatar stream interrupted", "error", err, "user_id", userID)
	}
}
