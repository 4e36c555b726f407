package usecases

import (
	"context"

	"github.com/compiler-aditya/PropTech/internal/application/property/dto"
	ticketdto "github.com/compiler-aditya/PropTech/internal/application/ticket/dto"
	"github.com/compiler-aditya/PropTech/internal/domain/property"
	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	"github.com/compiler-aditya/PropTech/internal/domain/user"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

type GetPropertyQuery struct {
	Actor      authorization.Actor
	PropertyID uint
}

// GetPropertyUseCase returns a property with its manager and its tickets. Any
// manager may open any property.
type GetPropertyUseCase struct {
	propertyRepo   property.Repository
	userRepo       user.Repository
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	attachmentRepo ticket.AttachmentRepository
	logger         logger.Interface
}

func NewGetPropertyUseCase(
	propertyRepo property.Repository,
	userRepo user.Repository,
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	attachmentRepo ticket.AttachmentRepository,
	logger logger.Interface,
) *GetPropertyUseCase {
	return &GetPropertyUseCase{
		propertyRepo:   propertyRepo,
		userRepo:       userRepo,
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *GetPropertyUseCase) Execute(ctx context.Context, query GetPropertyQuery) (*dto.PropertyDetailDTO, error) {
	if !query.Actor.Role.IsManager() {
		return nil, errors.NewForbiddenError("Only managers can perform this action")
	}

	p, err := uc.propertyRepo.GetByID(ctx, query.PropertyID)
	if err != nil {
		uc.logger.Errorw("failed to get property", "error", err, "property_id", query.PropertyID)
		return nil, errors.NewInternalError("failed to load property")
	}
	if p == nil {
		return nil, errors.NewNotFoundError(property.MsgNotFound)
	}

	propertyID := p.ID()
	tickets, total, err := uc.ticketRepo.List(ctx, ticket.TicketFilter{
		Scope: ticket.TicketScope{PropertyID: &propertyID},
	})
	if err != nil {
		uc.logger.Errorw("failed to list property tickets", "error", err, "property_id", propertyID)
		return nil, errors.NewInternalError("failed to load property")
	}

	ids := make([]uint, len(tickets))
	userIDs := []uint{p.ManagerID()}
	for i, t := range tickets {
		ids[i] = t.ID()
		userIDs = append(userIDs, t.SubmitterID())
		if t.AssigneeID() != nil {
			userIDs = append(userIDs, *t.AssigneeID())
		}
	}

	commentCounts, err := uc.commentRepo.CountByTicketIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to count comments", "error", err, "property_id", propertyID)
		return nil, errors.NewInternalError("failed to load property")
	}
	attachmentCounts, err := uc.attachmentRepo.CountByTicketIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to count attachments", "error", err, "property_id", propertyID)
		return nil, errors.NewInternalError("failed to load property")
	}

	people, err := uc.userRepo.GetByIDs(ctx, dedupe(userIDs))
	if err != nil {
		uc.logger.Errorw("failed to load property people", "error", err, "property_id", propertyID)
		return nil, errors.NewInternalError("failed to load property")
	}
	users := make(map[uint]*user.User, len(people))
	for _, u := range people {
		users[u.ID()] = u
	}
	properties := map[uint]*property.Property{propertyID: p}

	items := make([]*ticketdto.TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, &ticketdto.TicketListItemDTO{
			TicketDTO:       *ticketdto.ToTicketDTO(t, properties, users),
			CommentCount:    commentCounts[t.ID()],
			AttachmentCount: attachmentCounts[t.ID()],
		})
	}

	return &dto.PropertyDetailDTO{
		PropertyDTO: *dto.ToPropertyDTO(p, total),
		Manager:     ticketdto.ToUserSummaryDTO(users[p.ManagerID()]),
		Tickets:     items,
	}, nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
