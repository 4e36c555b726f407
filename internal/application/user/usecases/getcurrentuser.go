package usecases

import (
	"context"

	"github.com/compiler-aditya/PropTech/internal/application/user/dto"
	"github.com/compiler-aditya/PropTech/internal/domain/user"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, userID uint) (*dto.UserDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", userID)
		return nil, errors.NewInternalError("failed to get user")
	}
	if u == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	return dto.ToUserDTO(u), nil
}
