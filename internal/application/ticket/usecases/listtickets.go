package usecases

import (
	"context"
	"strings"

	"github.com/compiler-aditya/PropTech/internal/application/ticket/dto"
	"github.com/compiler-aditya/PropTech/internal/domain/property"
	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	vo "github.com/compiler-aditya/PropTech/internal/domain/ticket/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/domain/user"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/constants"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

type ListTicketsQuery struct {
	Actor     authorization.Actor
	Status    string
	Priority  string
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListTicketsResult struct {
	Tickets  []*dto.TicketListItemDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	attachmentRepo ticket.AttachmentRepository
	loader         readModelLoader
	logger         logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	attachmentRepo ticket.AttachmentRepository,
	propertyRepo property.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		loader:         readModelLoader{propertyRepo: propertyRepo, userRepo: userRepo},
		logger:         logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err, "user_id", query.Actor.ID)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	ids := ticketIDs(tickets)
	commentCounts, err := uc.commentRepo.CountByTicketIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to count comments", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}
	attachmentCounts, err := uc.attachmentRepo.CountByTicketIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to count attachments", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	refs, err := uc.loader.load(ctx, tickets)
	if err != nil {
		uc.logger.Errorw("failed to load ticket references", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	items := make([]*dto.TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, &dto.TicketListItemDTO{
			TicketDTO:       *dto.ToTicketDTO(t, refs.properties, refs.users),
			CommentCount:    commentCounts[t.ID()],
			AttachmentCount: attachmentCounts[t.ID()],
		})
	}

	return &ListTicketsResult{
		Tickets:  items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (ticket.TicketFilter, error) {
	filter := ticket.TicketFilter{
		Scope:     scopeFor(query.Actor),
		Search:    strings.TrimSpace(query.Search),
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}

	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PageSize < 1 {
		filter.PageSize = constants.DefaultPageSize
	}
	if filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.MaxPageSize
	}

	if query.Status != "" {
		status := vo.TicketStatus(query.Status)
		if !status.IsValid() {
			return filter, errors.NewValidationError(ticket.MsgInvalidStatus)
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority := vo.Priority(query.Priority)
		if !priority.IsValid() {
			return filter, errors.NewValidationError(ticket.MsgInvalidPriority)
		}
		filter.Priority = &priority
	}

	return filter, nil
}
