package usecases

import (
	"context"

	appnotification "github.com/compiler-aditya/PropTech/internal/application/notification"
	"github.com/compiler-aditya/PropTech/internal/application/ticket/dto"
	notificationvo "github.com/compiler-aditya/PropTech/internal/domain/notification/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	vo "github.com/compiler-aditya/PropTech/internal/domain/ticket/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

type ChangeStatusCommand struct {
	Actor    authorization.Actor
	TicketID uint
	Status   string
}

type ChangeStatusUseCase struct {
	ticketRepo   ticket.TicketRepository
	activityRepo ticket.ActivityRepository
	txManager    TransactionManager
	notifier     Notifier
	logger       logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	activityRepo ticket.ActivityRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:   ticketRepo,
		activityRepo: activityRepo,
		txManager:    txManager,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing change status use case",
		"ticket_id", cmd.TicketID,
		"status", cmd.Status,
		"actor_id", cmd.Actor.ID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to update ticket status")
	}
	if t == nil {
		return nil, errors.NewNotFoundError(ticket.MsgTicketNotFound)
	}

	expectedVersion := t.Version()
	change, err := t.ChangeStatus(cmd.Actor, vo.TicketStatus(cmd.Status))
	if err != nil {
		uc.logger.Warnw("status change rejected",
			"ticket_id", t.ID(),
			"from", t.Status(),
			"to", cmd.Status,
			"role", cmd.Actor.Role,
			"error", err)
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t, expectedVersion); err != nil {
			return err
		}
		return appendActivity(txCtx, uc.activityRepo, t.ID(), cmd.Actor.ID, vo.ActionStatusChanged, change.Details())
	})
	if err != nil {
		if errors.IsConflictError(err) {
			uc.logger.Warnw("concurrent status change", "ticket_id", t.ID())
		} else {
			uc.logger.Errorw("failed to save status change", "error", err, "ticket_id", t.ID())
		}
		return nil, internalOr(err, "failed to update ticket status")
	}

	if cmd.Actor.ID != t.SubmitterID() {
		notifyAll(ctx, uc.notifier, uc.logger, appnotification.NotifyInput{
			RecipientID: t.SubmitterID(),
			Type:        notificationvo.TypeStatusChanged,
			Title:       "Ticket Updated",
			Message:     `Your ticket "` + t.Title() + `" is now ` + change.To.Label(),
			LinkURL:     dto.TicketLink(t.ID()),
		})
	}

	uc.logger.Infow("ticket status changed", "ticket_id", t.ID(), "from", change.From, "to", change.To)

	return dto.ToTicketDTO(t, nil, nil), nil
}
