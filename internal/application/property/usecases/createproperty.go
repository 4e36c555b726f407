package usecases

import (
	"context"

	"github.com/compiler-aditya/PropTech/internal/application/property/dto"
	"github.com/compiler-aditya/PropTech/internal/domain/property"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

type CreatePropertyCommand struct {
	Actor     authorization.Actor
	Name      string
	Address   string
	UnitCount int
}

type CreatePropertyUseCase struct {
	repo   property.Repository
	cache  ReferenceCache
	logger logger.Interface
}

func NewCreatePropertyUseCase(repo property.Repository, cache ReferenceCache, logger logger.Interface) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{repo: repo, cache: cache, logger: logger}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, cmd CreatePropertyCommand) (*dto.PropertyDTO, error) {
	uc.logger.Infow("executing create property use case", "name", cmd.Name, "manager_id", cmd.Actor.ID)

	if !cmd.Actor.Role.IsManager() {
		return nil, errors.NewForbiddenError("Only managers can perform this action")
	}

	p, err := property.NewProperty(cmd.Name, cmd.Address, cmd.UnitCount, cmd.Actor.ID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByName(ctx, p.Name())
	if err != nil {
		uc.logger.Errorw("failed to check property name", "error", err)
		return nil, errors.NewInternalError("failed to create property")
	}
	if existing != nil {
		return nil, errors.NewConflictError(property.MsgNameTaken)
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(property.MsgNameTaken)
		}
		uc.logger.Errorw("failed to create property", "error", err)
		return nil, errors.NewInternalError("failed to create property")
	}

	if err := uc.cache.Invalidate(ctx, PropertyOptionsCacheKey); err != nil {
		uc.logger.Warnw("failed to invalidate property cache", "error", err)
	}

	uc.logger.Infow("property created successfully", "property_id", p.ID())
	return dto.ToPropertyDTO(p, 0), nil
}
