package usecases

import (
	"context"

	"github.com/compiler-aditya/PropTech/internal/application/notification/dto"
	"github.com/compiler-aditya/PropTech/internal/domain/notification"
	"github.com/compiler-aditya/PropTech/internal/shared/constants"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

type ListNotificationsUseCase struct {
	repo   notification.NotificationRepository
	logger logger.Interface
}

func NewListNotificationsUseCase(
	repo notification.NotificationRepository,
	logger logger.Interface,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute returns the recipient's latest notifications, newest first.
func (uc *ListNotificationsUseCase) Execute(ctx context.Context, recipientID uint) ([]*dto.NotificationDTO, error) {
	items, err := uc.repo.ListByRecipient(ctx, recipientID, constants.NotificationListLimit)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", recipientID, "error", err)
		return nil, errors.NewInternalError("failed to list notifications")
	}
	return dto.ToNotificationDTOList(items), nil
}
