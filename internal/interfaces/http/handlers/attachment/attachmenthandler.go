// Package attachment serves ticket image uploads, removals and the file proxy.
package attachment

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/compiler-aditya/PropTech/internal/application/attachment/dto"
	"github.com/compiler-aditya/PropTech/internal/application/attachment/usecases"
	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/constants"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
	"github.com/compiler-aditya/PropTech/internal/shared/utils"
)

// formField is the multipart field that carries uploaded files.
const formField = "files"

type uploadExecutor interface {
	Execute(ctx context.Context, cmd usecases.UploadAttachmentsCommand) (*dto.UploadResultDTO, error)
}

type removeExecutor interface {
	Execute(ctx context.Context, cmd usecases.RemoveAttachmentCommand) error
}

type getFileExecutor interface {
	Execute(ctx context.Context, query usecases.GetFileQuery) (*dto.FileDTO, error)
}

type AttachmentHandler struct {
	uploadUC  uploadExecutor
	removeUC  removeExecutor
	getFileUC getFileExecutor
	logger    logger.Interface
	maxBody   int64
}

func NewAttachmentHandler(
	uploadUC uploadExecutor,
	removeUC removeExecutor,
	getFileUC getFileExecutor,
	logger logger.Interface,
) *AttachmentHandler {
	return &AttachmentHandler{
		uploadUC:  uploadUC,
		removeUC:  removeUC,
		getFileUC: getFileUC,
		logger:    logger,
		maxBody:   constants.MaxUploadRequestBytes,
	}
}

// Upload handles POST /api/tickets/:id/attachments
func (h *AttachmentHandler) Upload(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}
	ticketID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid ticket ID"))
		return
	}

	if c.Request.Body != nil {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody)
	}

	var headers []*multipart.FileHeader
	form, err := c.MultipartForm()
	var tooLarge *http.MaxBytesError
	switch {
	case stderrors.As(err, &tooLarge):
		h.logger.Warnw("upload body over limit", "ticket_id", ticketID, "limit", tooLarge.Limit)
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, ticket.MsgUploadTooLarge)
		return
	case err == nil:
		headers = form.File[formField]
	}

	files := make([]usecases.UploadFile, 0, len(headers))
	for _, fh := range headers {
		data, err := readPart(fh)
		if err != nil {
			h.logger.Warnw("failed to read uploaded file", "error", err, "filename", fh.Filename)
			utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid file upload"))
			return
		}
		files = append(files, usecases.UploadFile{
			Filename: fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
			Data:     data,
		})
	}

	result, err := h.uploadUC.Execute(c.Request.Context(), usecases.UploadAttachmentsCommand{
		Actor:    actor,
		TicketID: ticketID,
		Files:    files,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, fmt.Sprintf("%d file(s) uploaded", result.Count))
}

// Remove handles DELETE /api/attachments/:id
func (h *AttachmentHandler) Remove(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}
	attachmentID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid attachment ID"))
		return
	}

	if err := h.removeUC.Execute(c.Request.Context(), usecases.RemoveAttachmentCommand{
		Actor:        actor,
		AttachmentID: attachmentID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Attachment removed", nil)
}

// ServeFile handles GET /api/files/:id
func (h *AttachmentHandler) ServeFile(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}
	attachmentID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("File not found"))
		return
	}

	file, err := h.getFileUC.Execute(c.Request.Context(), usecases.GetFileQuery{
		Actor:        actor,
		AttachmentID: attachmentID,
	})
	if stderrors.Is(err, usecases.ErrFileUnavailable) {
		utils.ErrorResponse(c, http.StatusBadGateway, ticket.MsgFileUnavailable)
		return
	}
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer file.Body.Close()

	c.Header("Content-Type", file.MimeType)
	c.Header("Content-Length", strconv.FormatInt(file.Size, 10))
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, url.PathEscape(file.Filename)))
	c.Header("Cache-Control", "private, max-age=3600")
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, file.Body); err != nil {
		h.logger.Warnw("file stream interrupted", "error", err, "attachment_id", attachmentID)
	}
}

// readPart reads at most one byte past the size ceiling so oversize files are
// still rejected by the size check without buffering them whole.
func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, constants.MaxAttachmentBytes+1))
}
