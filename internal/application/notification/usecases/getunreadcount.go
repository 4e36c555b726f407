package usecases

import (
	"context"

	"github.com/compiler-aditya/PropTech/internal/application/notification/dto"
	"github.com/compiler-aditya/PropTech/internal/domain/notification"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

type GetUnreadCountUseCase struct {
	repo   notification.NotificationRepository
	logger logger.Interface
}

func NewGetUnreadCountUseCase(
	repo notification.NotificationRepository,
	logger logger.Interface,
) *GetUnreadCountUseCase {
	return &GetUnreadCountUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GetUnreadCountUseCase) Execute(ctx context.Context, recipientID uint) (*dto.UnreadCountDTO, error) {
	count, err := uc.repo.CountUnread(ctx, recipientID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "user_id", recipientID, "error", err)
		return nil, errors.NewInternalError("failed to count unread notifications")
	}
	return &dto.UnreadCountDTO{Count: count}, nil
}
