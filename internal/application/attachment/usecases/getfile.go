package usecases

import (
	"context"

	"github.com/compiler-aditya/PropTech/internal/application/attachment/dto"
	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

// ErrFileUnavailable marks a row whose blob could not be opened.
var ErrFileUnavailable = errors.NewInternalError(ticket.MsgFileUnavailable)

type GetFileQuery struct {
	Actor        authorization.Actor
	AttachmentID uint
}

type GetFileUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	blobs          BlobStore
	logger         logger.Interface
}

func NewGetFileUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	blobs BlobStore,
	logger logger.Interface,
) *GetFileUseCase {
	return &GetFileUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		blobs:          blobs,
		logger:         logger,
	}
}

func (uc *GetFileUseCase) Execute(ctx context.Context, query GetFileQuery) (*dto.FileDTO, error) {
	a, err := uc.attachmentRepo.GetByID(ctx, query.AttachmentID)
	if err != nil {
		uc.logger.Errorw("failed to get attachment", "error", err, "attachment_id", query.AttachmentID)
		return nil, errors.NewInternalError("failed to load file")
	}
	if a == nil {
		return nil, errors.NewNotFoundError(ticket.MsgAttachmentNotFound)
	}

	t, err := uc.ticketRepo.GetByID(ctx, a.TicketID())
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", a.TicketID())
		return nil, errors.NewInternalError("failed to load file")
	}
	if t == nil {
		return nil, errors.NewNotFoundError(ticket.MsgAttachmentNotFound)
	}
	if !t.CanBeAccessedBy(query.Actor) {
		return nil, errors.NewForbiddenError(ticket.MsgAccessDenied)
	}

	body, err := uc.blobs.Open(ctx, a.StorageURL())
	if err != nil {
		uc.logger.Errorw("failed to open attachment blob",
			"error", err,
			"attachment_id", a.ID(),
			"storage_url", a.StorageURL())
		return nil, ErrFileUnavailable
	}

	return &dto.FileDTO{
		Filename: a.Filename(),
		MimeType: a.MimeType(),
		Size:     a.Size(),
		Body:     body,
	}, nil
}
