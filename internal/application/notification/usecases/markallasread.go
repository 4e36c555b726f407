package usecases

import (
	"context"

	"github.com/compiler-aditya/PropTech/internal/application/notification/dto"
	"github.com/compiler-aditya/PropTech/internal/domain/notification"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

type MarkAllAsReadUseCase struct {
	repo   notification.NotificationRepository
	logger logger.Interface
}

func NewMarkAllAsReadUseCase(
	repo notification.NotificationRepository,
	logger logger.Interface,
) *MarkAllAsReadUseCase {
	return &MarkAllAsReadUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *MarkAllAsReadUseCase) Execute(ctx context.Context, recipientID uint) (*dto.MarkAllReadDTO, error) {
	uc.logger.Infow("executing mark all notifications as read use case", "user_id", recipientID)

	updated, err := uc.repo.MarkAllRead(ctx, recipientID)
	if err != nil {
		uc.logger.Errorw("failed to mark all notifications as read", "user_id", recipientID, "error", err)
		return nil, errors.NewInternalError("failed to mark all notifications as read")
	}

	uc.logger.Infow("all notifications marked as read", "user_id", recipientID, "updated", updated)
	return &dto.MarkAllReadDTO{Updated: updated}, nil
}
