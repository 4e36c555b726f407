package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/compiler-aditya/PropTech/internal/application/attachment/dto"
	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	vo "github.com/compiler-aditya/PropTech/internal/domain/ticket/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/constants"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

const uploadPrefix = "uploads/"

type UploadAttachmentsCommand struct {
	Actor    authorization.Actor
	TicketID uint
	Files    []UploadFile
}

// UploadAttachmentsUseCase stores a batch of images in two phases: blobs first,
// then every row and one activity entry in a single transaction. Blobs already
// written are deleted if either phase fails.
type UploadAttachmentsUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	activityRepo   ticket.ActivityRepository
	blobs          BlobStore
	txManager      TransactionManager
	logger         logger.Interface
	newName        func() string
}

func NewUploadAttachmentsUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	activityRepo ticket.ActivityRepository,
	blobs BlobStore,
	txManager TransactionManager,
	logger logger.Interface,
) *UploadAttachmentsUseCase {
	return &UploadAttachmentsUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		activityRepo:   activityRepo,
		blobs:          blobs,
		txManager:      txManager,
		logger:         logger,
		newName:        uuid.NewString,
	}
}

func (uc *UploadAttachmentsUseCase) Execute(ctx context.Context, cmd UploadAttachmentsCommand) (result *dto.UploadResultDTO, err error) {
	uc.logger.Infow("executing upload attachments use case",
		"ticket_id", cmd.TicketID,
		"files", len(cmd.Files),
		"actor_id", cmd.Actor.ID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to upload files")
	}
	if t == nil {
		return nil, errors.NewNotFoundError(ticket.MsgTicketNotFound)
	}
	if !t.CanBeAccessedBy(cmd.Actor) {
		return nil, errors.NewForbiddenError(ticket.MsgAccessDenied)
	}
	if t.IsCompleted() {
		return nil, errors.NewWorkflowError(ticket.MsgAttachmentsCompleted)
	}
	if len(cmd.Files) == 0 {
		return nil, errors.NewValidationError(ticket.MsgNoFilesSelected)
	}

	existing, err := uc.attachmentRepo.CountByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to count attachments", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError("failed to upload files")
	}
	if existing+int64(len(cmd.Files)) > constants.MaxAttachmentsPerTicket {
		return nil, errors.NewWorkflowError(fmt.Sprintf(
			"Maximum %d files per ticket. You have %d already.", constants.MaxAttachmentsPerTicket, existing))
	}

	exts := make([]string, len(cmd.Files))
	for i, f := range cmd.Files {
		ext, err := CheckFile(f)
		if err != nil {
			uc.logger.Warnw("rejected attachment",
				"ticket_id", t.ID(),
				"filename", f.Filename,
				"declared_mime", f.MimeType,
				"size", len(f.Data),
				"error", err)
			return nil, err
		}
		exts[i] = ext
	}

	var written []string
	defer func() {
		if err == nil {
			return
		}
		for _, url := range written {
			if delErr := uc.blobs.Delete(context.WithoutCancel(ctx), url); delErr != nil {
				uc.logger.Warnw("orphaned attachment blob", "error", delErr, "storage_url", url)
			}
		}
	}()

	attachments := make([]*ticket.Attachment, 0, len(cmd.Files))
	filenames := make([]string, 0, len(cmd.Files))
	for i, f := range cmd.Files {
		storedName := uc.newName() + "." + exts[i]
		url, putErr := uc.blobs.Put(ctx, uploadPrefix+storedName, f.Data, f.MimeType)
		if putErr != nil {
			uc.logger.Errorw("failed to store attachment blob", "error", putErr, "ticket_id", t.ID())
			return nil, errors.NewInternalError("failed to upload files")
		}
		written = append(written, url)

		a, newErr := ticket.NewAttachment(t.ID(), cmd.Actor.ID, f.Filename, storedName, url, f.MimeType, int64(len(f.Data)))
		if newErr != nil {
			return nil, newErr
		}
		attachments = append(attachments, a)
		filenames = append(filenames, a.Filename())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.attachmentRepo.CreateBatch(txCtx, attachments); err != nil {
			return err
		}
		entry, err := ticket.NewActivityEntry(t.ID(), cmd.Actor.ID, vo.ActionAttachmentAdded,
			ticket.AttachmentAddedDetails(filenames))
		if err != nil {
			return err
		}
		return uc.activityRepo.Append(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to save attachments", "error", err, "ticket_id", t.ID())
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to upload files")
	}

	uc.logger.Infow("attachments uploaded", "ticket_id", t.ID(), "count", len(attachments))

	return &dto.UploadResultDTO{Count: len(attachments)}, nil
}
