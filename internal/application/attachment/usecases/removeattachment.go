package usecases

import (
	"context"

	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

type RemoveAttachmentCommand struct {
	Actor        authorization.Actor
	AttachmentID uint
}

type RemoveAttachmentUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	blobs          BlobStore
	logger         logger.Interface
}

func NewRemoveAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	blobs BlobStore,
	logger logger.Interface,
) *RemoveAttachmentUseCase {
	return &RemoveAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		blobs:          blobs,
		logger:         logger,
	}
}

// Execute deletes the row before the blob. A blob that cannot be deleted is left
// for the orphan sweep.
func (uc *RemoveAttachmentUseCase) Execute(ctx context.Context, cmd RemoveAttachmentCommand) error {
	uc.logger.Infow("executing remove attachment use case", "attachment_id", cmd.AttachmentID, "actor_id", cmd.Actor.ID)

	a, err := uc.attachmentRepo.GetByID(ctx, cmd.AttachmentID)
	if err != nil {
		uc.logger.Errorw("failed to get attachment", "error", err, "attachment_id", cmd.AttachmentID)
		return errors.NewInternalError("failed to remove file")
	}
	if a == nil {
		return errors.NewNotFoundError(ticket.MsgAttachmentNotFound)
	}

	t, err := uc.ticketRepo.GetByID(ctx, a.TicketID())
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", a.TicketID())
		return errors.NewInternalError("failed to remove file")
	}
	if t == nil {
		return errors.NewNotFoundError(ticket.MsgAttachmentNotFound)
	}

	if a.UploadedBy() != cmd.Actor.ID && !t.CanBeAccessedBy(cmd.Actor) {
		return errors.NewForbiddenError(ticket.MsgAccessDenied)
	}
	if t.IsCompleted() {
		return errors.NewWorkflowError(ticket.MsgAttachmentsCompleted)
	}

	if err := uc.attachmentRepo.Delete(ctx, a.ID()); err != nil {
		uc.logger.Errorw("failed to delete attachment", "error", err, "attachment_id", a.ID())
		return errors.NewInternalError("failed to remove file")
	}

	if err := uc.blobs.Delete(ctx, a.StorageURL()); err != nil {
		uc.logger.Warnw("orphaned attachment blob",
			"error", err,
			"attachment_id", a.ID(),
			"storage_url", a.StorageURL())
	}

	uc.logger.Infow("attachment removed", "attachment_id", a.ID(), "ticket_id", t.ID())
	return nil
}
