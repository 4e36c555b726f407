package usecases

import (
	"context"

	"github.com/compiler-aditya/PropTech/internal/application/property/dto"
	"github.com/compiler-aditya/PropTech/internal/domain/property"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

// ListPropertiesUseCase lists the calling manager's properties with their ticket counts.
type ListPropertiesUseCase struct {
	repo   property.Repository
	logger logger.Interface
}

func NewListPropertiesUseCase(repo property.Repository, logger logger.Interface) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{repo: repo, logger: logger}
}

func (uc *ListPropertiesUseCase) Execute(ctx context.Context, actor authorization.Actor) ([]*dto.PropertyDTO, error) {
	if !actor.Role.IsManager() {
		return nil, errors.NewForbiddenError("Only managers can perform this action")
	}

	props, err := uc.repo.ListByManager(ctx, actor.ID)
	if err != nil {
		uc.logger.Errorw("failed to list properties", "error", err, "manager_id", actor.ID)
		return nil, errors.NewInternalError("failed to list properties")
	}

	ids := make([]uint, len(props))
	for i, p := range props {
		ids[i] = p.ID()
	}
	counts, err := uc.repo.CountTicketsByProperty(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to count property tickets", "error", err)
		return nil, errors.NewInternalError("failed to list properties")
	}

	out := make([]*dto.PropertyDTO, len(props))
	for i, p := range props {
		out[i] = dto.ToPropertyDTO(p, counts[p.ID()])
	}
	return out, nil
}
