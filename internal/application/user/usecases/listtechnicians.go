package usecases

import (
	"context"

	"github.com/compiler-aditya/PropTech/internal/application/user/dto"
	"github.com/compiler-aditya/PropTech/internal/domain/user"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

// TechniciansCacheKey holds the cached technician identities. Active counts are
// never cached.
const TechniciansCacheKey = "technicians"

type ListTechniciansUseCase struct {
	userRepo user.Repository
	counter  ActiveTicketCounter
	cache    ReferenceCache
	logger   logger.Interface
}

func NewListTechniciansUseCase(
	userRepo user.Repository,
	counter ActiveTicketCounter,
	cache ReferenceCache,
	logger logger.Interface,
) *ListTechniciansUseCase {
	return &ListTechniciansUseCase{
		userRepo: userRepo,
		counter:  counter,
		cache:    cache,
		logger:   logger,
	}
}

func (uc *ListTechniciansUseCase) Execute(ctx context.Context, actor authorization.Actor) ([]*dto.TechnicianDTO, error) {
	if !actor.Role.IsManager() {
		return nil, errors.NewForbiddenError("Only managers can perform this action")
	}

	technicians, err := uc.loadTechnicians(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(technicians))
	for i, t := range technicians {
		ids[i] = t.ID
	}
	counts, err := uc.counter.CountActiveByAssignees(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to count active tickets", "error", err)
		return nil, errors.NewInternalError("failed to list technicians")
	}

	out := make([]*dto.TechnicianDTO, len(technicians))
	for i, t := range technicians {
		item := *t
		item.ActiveTickets = counts[t.ID]
		out[i] = &item
	}
	return out, nil
}

func (uc *ListTechniciansUseCase) loadTechnicians(ctx context.Context) ([]*dto.TechnicianDTO, error) {
	var cached []*dto.TechnicianDTO
	hit, err := uc.cache.Get(ctx, TechniciansCacheKey, &cached)
	if err != nil {
		uc.logger.Warnw("technician cache read failed", "error", err)
	}
	if hit {
		return cached, nil
	}

	users, err := uc.userRepo.ListByRole(ctx, authorization.RoleTechnician)
	if err != nil {
		uc.logger.Errorw("failed to list technicians", "error", err)
		return nil, errors.NewInternalError("failed to list technicians")
	}

	technicians := make([]*dto.TechnicianDTO, len(users))
	for i, u := range users {
		technicians[i] = &dto.TechnicianDTO{ID: u.ID(), Name: u.Name()}
		if u.Email() != nil {
			technicians[i].Email = u.Email().String()
		}
	}

	if err := uc.cache.Set(ctx, TechniciansCacheKey, technicians); err != nil {
		uc.logger.Warnw("technician cache write failed", "error", err)
	}
	return technicians, nil
}
