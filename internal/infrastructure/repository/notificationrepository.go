package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/compiler-aditya/PropTech/internal/domain/notification"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/persistence/mappers"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/persistence/models"
	db "github.com/compiler-aditya/PropTech/internal/shared/db"
)

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) notification.NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, n *notification.Notification) error {
	model := mappers.NotificationToModel(n)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return n.SetID(model.ID)
}

func (r *NotificationRepositoryImpl) ListByRecipient(ctx context.Context, recipientID uint, limit int) ([]*notification.Notification, error) {
	var notificationModels []models.NotificationModel

	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Where("user_id = ?", recipientID).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := make([]*notification.Notification, 0, len(notificationModels))
	for i := range notificationModels {
		n, err := mappers.NotificationToDomain(&notificationModels[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func (r *NotificationRepositoryImpl) CountUnread(ctx context.Context, recipientID uint) (int64, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *NotificationRepositoryImpl) MarkRead(ctx context.Context, id uint, recipientID uint) (bool, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, recipientID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to look up notification: %w", err)
	}
	if count == 0 {
		return false, nil
	}

	// Marking an already-read notification is a successful no-op.
	if err := tx.Model(&models.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, recipientID).
		Update("is_read", true).Error; err != nil {
		return false, fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return true, nil
}

func (r *NotificationRepositoryImpl) MarkAllRead(ctx context.Context, recipientID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark all notifications as read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *NotificationRepositoryImpl) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Unscoped().
		Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&models.NotificationModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete read notifications: %w", result.Error)
	}
	return result.RowsAffected, nil
}
