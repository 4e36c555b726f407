package usecases

import (
	"context"

	"github.com/compiler-aditya/PropTech/internal/domain/notification"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

const MsgNotificationNotFound = "Notification not found"

type MarkAsReadCommand struct {
	NotificationID uint
	RecipientID    uint
}

type MarkAsReadUseCase struct {
	repo   notification.NotificationRepository
	logger logger.Interface
}

func NewMarkAsReadUseCase(
	repo notification.NotificationRepository,
	logger logger.Interface,
) *MarkAsReadUseCase {
	return &MarkAsReadUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute marks one notification read. Another user's notification is reported
// as not found.
func (uc *MarkAsReadUseCase) Execute(ctx context.Context, cmd MarkAsReadCommand) error {
	if cmd.NotificationID == 0 {
		return errors.NewValidationError("notification ID is required")
	}

	found, err := uc.repo.MarkRead(ctx, cmd.NotificationID, cmd.RecipientID)
	if err != nil {
		uc.logger.Errorw("failed to mark notification as read",
			"notification_id", cmd.NotificationID,
			"user_id", cmd.RecipientID,
			"error", err)
		return errors.NewInternalError("failed to mark notification as read")
	}
	if !found {
		uc.logger.Warnw("notification not found for recipient",
			"notification_id", cmd.NotificationID,
			"user_id", cmd.RecipientID)
		return errors.NewNotFoundError(MsgNotificationNotFound)
	}

	return nil
}
