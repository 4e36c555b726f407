package mappers

import (
	"github.com/compiler-aditya/PropTech/internal/domain/notification"
	vo "github.com/compiler-aditya/PropTech/internal/domain/notification/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/persistence/models"
)

func NotificationToModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:        n.ID(),
		UserID:    n.RecipientID(),
		Type:      n.Type().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		LinkURL:   n.LinkURL(),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt(),
		UpdatedAt: n.CreatedAt(),
	}
}

func NotificationToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		vo.NotificationType(model.Type),
		model.Title,
		model.Message,
		model.LinkURL,
		model.IsRead,
		model.CreatedAt.UTC(),
	)
}
