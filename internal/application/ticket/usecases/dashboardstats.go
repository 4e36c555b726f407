package usecases

import (
	"context"

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

// DashboardStatsUseCase reports per-status counts and the latest activity within
// the actor's scope.
type DashboardStatsUseCase struct {
	ticketRepo ticket.TicketRepository
	loader     readModelLoader
	logger     logger.Interface
}

func NewDashboardStatsUseCase(
	ticketRepo ticket.TicketRepository,
	propertyRepo property.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *DashboardStatsUseCase {
	return &DashboardStatsUseCase{
		ticketRepo: ticketRepo,
		loader:     readModelLoader{propertyRepo: propertyRepo, userRepo: userRepo},
		logger:     logger,
	}
}

func (uc *DashboardStatsUseCase) Execute(ctx context.Context, actor authorization.Actor) (*dto.DashboardStatsDTO, error) {
	scope := scopeFor(actor)

	counts, err := uc.ticketRepo.CountByStatus(ctx, scope)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by status", "error", err, "user_id", actor.ID)
		return nil, errors.NewInternalError("failed to load dashboard")
	}

	recent, err := uc.ticketRepo.ListRecentlyUpdated(ctx, scope, constants.RecentTicketsLimit)
	if err != nil {
		uc.logger.Errorw("failed to list recent tickets", "error", err, "user_id", actor.ID)
		return nil, errors.NewInternalError("failed to load dashboard")
	}

	refs, err := uc.loader.load(ctx, recent)
	if err != nil {
		uc.logger.Errorw("failed to load ticket references", "error", err)
		return nil, errors.NewInternalError("failed to load dashboard")
	}

	stats := &dto.DashboardStatsDTO{
		CountByStatus: make(map[string]int64, len(vo.AllStatuses)),
		Recent:        make([]*dto.TicketDTO, 0, len(recent)),
	}
	for _, s := range vo.AllStatuses {
		n := counts[s]
		stats.CountByStatus[s.String()] = n
		stats.Total += n
	}
	for _, t := range recent {
		stats.Recent = append(stats.Recent, dto.ToTicketDTO(t, refs.properties, refs.users))
	}

	return stats, nil
}
