package usecases

import (
	"context"

	"github.com/compiler-aditya/PropTech/internal/application/property/dto"
	"github.com/compiler-aditya/PropTech/internal/domain/property"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

// ListPropertyOptionsUseCase serves every property for the submission picker
// through the reference cache.
type ListPropertyOptionsUseCase struct {
	repo   property.Repository
	cache  ReferenceCache
	logger logger.Interface
}

func NewListPropertyOptionsUseCase(repo property.Repository, cache ReferenceCache, logger logger.Interface) *ListPropertyOptionsUseCase {
	return &ListPropertyOptionsUseCase{repo: repo, cache: cache, logger: logger}
}

func (uc *ListPropertyOptionsUseCase) Execute(ctx context.Context) ([]*dto.PropertyOptionDTO, error) {
	var cached []*dto.PropertyOptionDTO
	hit, err := uc.cache.Get(ctx, PropertyOptionsCacheKey, &cached)
	if err != nil {
		uc.logger.Warnw("property cache read failed", "error", err)
	}
	if hit {
		return cached, nil
	}

	props, err := uc.repo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list properties", "error", err)
		return nil, errors.NewInternalError("failed to list properties")
	}

	out := make([]*dto.PropertyOptionDTO, len(props))
	for i, p := range props {
		out[i] = dto.ToPropertyOptionDTO(p)
	}

	if err := uc.cache.Set(ctx, PropertyOptionsCacheKey, out); err != nil {
		uc.logger.Warnw("property cache write failed", "error", err)
	}
	return out, nil
}
