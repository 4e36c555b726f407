package usecases

import (
	"context"

	"github.com/compiler-aditya/PropTech/internal/application/ticket/dto"
	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	vo "github.com/compiler-aditya/PropTech/internal/domain/ticket/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

type ChangePriorityCommand struct {
	Actor    authorization.Actor
	TicketID uint
	Priority string
}

type ChangePriorityUseCase struct {
	ticketRepo   ticket.TicketRepository
	activityRepo ticket.ActivityRepository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewChangePriorityUseCase(
	ticketRepo ticket.TicketRepository,
	activityRepo ticket.ActivityRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *ChangePriorityUseCase {
	return &ChangePriorityUseCase{
		ticketRepo:   ticketRepo,
		activityRepo: activityRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *ChangePriorityUseCase) Execute(ctx context.Context, cmd ChangePriorityCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing change priority use case",
		"ticket_id", cmd.TicketID,
		"priority", cmd.Priority,
		"actor_id", cmd.Actor.ID)

	if !cmd.Actor.Role.IsManager() {
		return nil, errors.NewForbiddenError(ticket.MsgManagersOnly)
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to update ticket priority")
	}
	if t == nil {
		return nil, errors.NewNotFoundError(ticket.MsgTicketNotFound)
	}

	expectedVersion := t.Version()
	previous, err := t.ChangePriority(vo.Priority(cmd.Priority))
	if err != nil {
		uc.logger.Warnw("priority change rejected", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t, expectedVersion); err != nil {
			return err
		}
		return appendActivity(txCtx, uc.activityRepo, t.ID(), cmd.Actor.ID, vo.ActionPriorityChanged,
			ticket.PriorityChangedDetails(previous, t.Priority()))
	})
	if err != nil {
		uc.logger.Errorw("failed to save priority change", "error", err, "ticket_id", t.ID())
		return nil, internalOr(err, "failed to update ticket priority")
	}

	uc.logger.Infow("ticket priority changed", "ticket_id", t.ID(), "from", previous, "to", t.Priority())

	return dto.ToTicketDTO(t, nil, nil), nil
}
