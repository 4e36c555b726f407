package usecases

import (
	"context"

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

type AssignTicketCommand struct {
	Actor        authorization.Actor
	TicketID     uint
	TechnicianID uint
}

// AssignTicketUseCase binds a technician to a ticket. It forces ASSIGNED from any
// non-completed status without going through the transition guard.
type AssignTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	activityRepo ticket.ActivityRepository
	userRepo     user.Repository
	txManager    TransactionManager
	notifier     Notifier
	logger       logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	activityRepo ticket.ActivityRepository,
	userRepo user.Repository,
	txManager TransactionManager,
	notifier Notifier,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo:   ticketRepo,
		activityRepo: activityRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing assign ticket use case",
		"ticket_id", cmd.TicketID,
		"technician_id", cmd.TechnicianID,
		"actor_id", cmd.Actor.ID)

	if !cmd.Actor.Role.IsManager() {
		return nil, errors.NewForbiddenError(ticket.MsgManagersOnly)
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to assign ticket")
	}
	if t == nil {
		return nil, errors.NewNotFoundError(ticket.MsgTicketNotFound)
	}
	if t.IsCompleted() {
		return nil, errors.NewWorkflowError(ticket.MsgAssignCompleted)
	}

	technician, err := uc.userRepo.GetByIDAndRole(ctx, cmd.TechnicianID, authorization.RoleTechnician)
	if err != nil {
		uc.logger.Errorw("failed to get technician", "error", err, "technician_id", cmd.TechnicianID)
		return nil, errors.NewInternalError("failed to assign ticket")
	}
	if technician == nil {
		return nil, errors.NewNotFoundError(ticket.MsgTechnicianNotFound)
	}

	expectedVersion := t.Version()
	previous, err := t.AssignTo(technician.ID())
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t, expectedVersion); err != nil {
			return err
		}
		return appendActivity(txCtx, uc.activityRepo, t.ID(), cmd.Actor.ID, vo.ActionAssigned,
			ticket.AssignedDetails(technician.Name(), technician.ID(), previous))
	})
	if err != nil {
		uc.logger.Errorw("failed to save assignment", "error", err, "ticket_id", t.ID())
		return nil, internalOr(err, "failed to assign ticket")
	}

	var inputs []appnotification.NotifyInput
	if previous != nil && *previous != technician.ID() && *previous != cmd.Actor.ID {
		inputs = append(inputs, appnotification.NotifyInput{
			RecipientID: *previous,
			Type:        notificationvo.TypeTicketAssigned,
			Title:       "Ticket Reassigned",
			Message:     "You've been unassigned from: " + t.Title(),
			LinkURL:     dto.TicketLink(t.ID()),
		})
	}
	if technician.ID() != cmd.Actor.ID {
		inputs = append(inputs, appnotification.NotifyInput{
			RecipientID: technician.ID(),
			Type:        notificationvo.TypeTicketAssigned,
			Title:       "Ticket Assigned",
			Message:     "You've been assigned: " + t.Title(),
			LinkURL:     dto.TicketLink(t.ID()),
		})
	}
	notifyAll(ctx, uc.notifier, uc.logger, inputs...)

	uc.logger.Infow("ticket assigned successfully", "ticket_id", t.ID(), "technician_id", technician.ID())

	return dto.ToTicketDTO(t, nil, map[uint]*user.User{technician.ID(): technician}), nil
}
