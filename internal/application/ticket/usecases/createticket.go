package usecases

import (
	"context"

	appnotification "github.com/compiler-aditya/PropTech/internal/application/notification"
	"github.com/compiler-aditya/PropTech/internal/application/ticket/dto"
	notificationvo "github.com/compiler-aditya/PropTech/internal/domain/notification/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/domain/property"
	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	vo "github.com/compiler-aditya/PropTech/internal/domain/ticket/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/domain/user"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

type CreateTicketCommand struct {
	Actor       authorization.Actor
	Title       string
	Description string
	Category    string
	Priority    string
	PropertyID  uint
	UnitNumber  string
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	activityRepo ticket.ActivityRepository
	propertyRepo property.Repository
	userRepo     user.Repository
	txManager    TransactionManager
	notifier     Notifier
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	activityRepo ticket.ActivityRepository,
	propertyRepo property.Repository,
	userRepo user.Repository,
	txManager TransactionManager,
	notifier Notifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		activityRepo: activityRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "submitter_id", cmd.Actor.ID)

	if !cmd.Actor.Role.IsTenant() {
		return nil, errors.NewForbiddenError(ticket.MsgTenantsOnly)
	}

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		vo.Category(cmd.Category),
		vo.Priority(cmd.Priority),
		cmd.PropertyID,
		cmd.Actor.ID,
		cmd.UnitNumber,
	)
	if err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, err
	}

	prop, err := uc.propertyRepo.GetByID(ctx, cmd.PropertyID)
	if err != nil {
		uc.logger.Errorw("failed to load property", "error", err, "property_id", cmd.PropertyID)
		return nil, errors.NewInternalError("failed to create ticket")
	}
	if prop == nil {
		return nil, errors.NewValidationError(ticket.MsgPropertyRequired)
	}

	submitter, err := uc.userRepo.GetByID(ctx, cmd.Actor.ID)
	if err != nil {
		uc.logger.Errorw("failed to load submitter", "error", err, "user_id", cmd.Actor.ID)
		return nil, errors.NewInternalError("failed to create ticket")
	}
	if submitter == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Create(txCtx, newTicket); err != nil {
			return err
		}
		return appendActivity(txCtx, uc.activityRepo, newTicket.ID(), cmd.Actor.ID,
			vo.ActionCreated, ticket.CreatedDetails(newTicket.Title()))
	})
	if err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, internalOr(err, "failed to create ticket")
	}

	uc.notifyManagers(ctx, newTicket, submitter)

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "property_id", prop.ID())

	return dto.ToTicketDTO(newTicket,
		map[uint]*property.Property{prop.ID(): prop},
		map[uint]*user.User{submitter.ID(): submitter},
	), nil
}

func (uc *CreateTicketUseCase) notifyManagers(ctx context.Context, t *ticket.Ticket, submitter *user.User) {
	managers, err := uc.userRepo.ListByRole(ctx, authorization.RoleManager)
	if err != nil {
		uc.logger.Errorw("failed to list managers for notification", "error", err, "ticket_id", t.ID())
		return
	}

	ids := make([]uint, len(managers))
	for i, m := range managers {
		ids[i] = m.ID()
	}

	var inputs []appnotification.NotifyInput
	for _, id := range appnotification.Recipients(submitter.ID(), ids...) {
		inputs = append(inputs, appnotification.NotifyInput{
			RecipientID: id,
			Type:        notificationvo.TypeTicketCreated,
			Title:       "New Ticket Created",
			Message:     submitter.Name() + " submitted: " + t.Title(),
			LinkURL:     dto.TicketLink(t.ID()),
		})
	}
	notifyAll(ctx, uc.notifier, uc.logger, inputs...)
}
