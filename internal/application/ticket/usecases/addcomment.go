package usecases

import (
	"context"
	"strings"

	appnotification "github.com/compiler-aditya/PropTech/internal/application/notification"
	"github.com/compiler-aditya/PropTech/internal/application/ticket/dto"
	notificationvo "github.com/compiler-aditya/PropTech/internal/domain/notification/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	vo "github.com/compiler-aditya/PropTech/internal/domain/ticket/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/domain/user"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

type AddCommentCommand struct {
	Actor    authorization.Actor
	TicketID uint
	Content  string
}

type AddCommentUseCase struct {
	ticketRepo   ticket.TicketRepository
	commentRepo  ticket.CommentRepository
	activityRepo ticket.ActivityRepository
	userRepo     user.Repository
	txManager    TransactionManager
	notifier     Notifier
	logger       logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	activityRepo ticket.ActivityRepository,
	userRepo user.Repository,
	txManager TransactionManager,
	notifier Notifier,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:   ticketRepo,
		commentRepo:  commentRepo,
		activityRepo: activityRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		notifier:     notifier,
		logger:       logger,
	}
}

// Execute validates the content before looking the ticket up, so an empty
// comment is rejected even on a ticket the actor cannot see. The trimmed text is
// stored as typed; escaping is left to whoever renders it.
func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)

	content := strings.TrimSpace(cmd.Content)
	if err := ticket.ValidateCommentContent(content); err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to add comment")
	}
	if t == nil {
		return nil, errors.NewNotFoundError(ticket.MsgTicketNotFound)
	}
	if !t.CanBeAccessedBy(cmd.Actor) {
		uc.logger.Warnw("comment denied", "ticket_id", t.ID(), "actor_id", cmd.Actor.ID)
		return nil, errors.NewForbiddenError(ticket.MsgAccessDenied)
	}

	comment, err := ticket.NewComment(t.ID(), cmd.Actor.ID, content)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.Create(txCtx, comment); err != nil {
			return err
		}
		return appendActivity(txCtx, uc.activityRepo, t.ID(), cmd.Actor.ID, vo.ActionCommented,
			ticket.CommentedDetails(comment.Preview()))
	})
	if err != nil {
		uc.logger.Errorw("failed to save comment", "error", err, "ticket_id", t.ID())
		return nil, internalOr(err, "failed to add comment")
	}

	author, err := uc.userRepo.GetByID(ctx, cmd.Actor.ID)
	if err != nil {
		uc.logger.Warnw("failed to load comment author", "error", err, "user_id", cmd.Actor.ID)
	}
	users := map[uint]*user.User{}
	authorName := "Someone"
	if author != nil {
		users[author.ID()] = author
		authorName = author.Name()
	}

	participants := []uint{t.SubmitterID()}
	if t.AssigneeID() != nil {
		participants = append(participants, *t.AssigneeID())
	}
	var inputs []appnotification.NotifyInput
	for _, id := range appnotification.Recipients(cmd.Actor.ID, participants...) {
		inputs = append(inputs, appnotification.NotifyInput{
			RecipientID: id,
			Type:        notificationvo.TypeCommentAdded,
			Title:       "New Comment",
			Message:     authorName + " commented on: " + t.Title(),
			LinkURL:     dto.TicketLink(t.ID()),
		})
	}
	notifyAll(ctx, uc.notifier, uc.logger, inputs...)

	uc.logger.Infow("comment added successfully", "ticket_id", t.ID(), "comment_id", comment.ID())

	return dto.ToCommentDTO(comment, users), nil
}
