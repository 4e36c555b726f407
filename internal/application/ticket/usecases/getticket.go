package usecases

import (
	"context"

	"github.com/compiler-aditya/PropTech/internal/application/ticket/dto"
	"github.com/compiler-aditya/PropTech/internal/domain/property"
	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	"github.com/compiler-aditya/PropTech/internal/domain/user"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

type GetTicketQuery struct {
	Actor    authorization.Actor
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	activityRepo   ticket.ActivityRepository
	attachmentRepo ticket.AttachmentRepository
	loader         readModelLoader
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	activityRepo ticket.ActivityRepository,
	attachmentRepo ticket.AttachmentRepository,
	propertyRepo property.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		activityRepo:   activityRepo,
		attachmentRepo: attachmentRepo,
		loader:         readModelLoader{propertyRepo: propertyRepo, userRepo: userRepo},
		logger:         logger,
	}
}

// Execute returns the ticket with its relations. A ticket the actor may not see
// is reported exactly like a missing one.
func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", query.TicketID)
		return nil, errors.NewInternalError("failed to get ticket")
	}
	if t == nil || !t.CanBeAccessedBy(query.Actor) {
		return nil, errors.NewNotFoundError(ticket.MsgTicketNotFound)
	}

	activity, err := uc.activityRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list ticket activity", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError("failed to get ticket")
	}
	comments, err := uc.commentRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list ticket comments", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError("failed to get ticket")
	}
	attachments, err := uc.attachmentRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list ticket attachments", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError("failed to get ticket")
	}

	extra := make([]uint, 0, len(activity)+len(comments))
	for _, a := range activity {
		extra = append(extra, a.PerformedBy())
	}
	for _, c := range comments {
		extra = append(extra, c.AuthorID())
	}

	refs, err := uc.loader.load(ctx, []*ticket.Ticket{t}, extra...)
	if err != nil {
		uc.logger.Errorw("failed to load ticket references", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError("failed to get ticket")
	}

	detail := &dto.TicketDetailDTO{
		TicketDTO:   *dto.ToTicketDTO(t, refs.properties, refs.users),
		Activity:    make([]*dto.ActivityDTO, 0, len(activity)),
		Comments:    make([]*dto.CommentDTO, 0, len(comments)),
		Attachments: make([]*dto.AttachmentDTO, 0, len(attachments)),
	}
	for _, a := range activity {
		detail.Activity = append(detail.Activity, dto.ToActivityDTO(a, refs.users))
	}
	for _, c := range comments {
		detail.Comments = append(detail.Comments, dto.ToCommentDTO(c, refs.users))
	}
	for _, a := range attachments {
		detail.Attachments = append(detail.Attachments, dto.ToAttachmentDTO(a))
	}

	return detail, nil
}
