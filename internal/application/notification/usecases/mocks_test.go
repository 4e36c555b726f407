package usecases

import (
	"context"
	"time"

	"github.com/compiler-aditya/PropTech/internal/domain/notification"
)

type mockNotificationRepository struct {
	CreateFunc           func(ctx context.Context, n *notification.Notification) error
	ListByRecipientFunc  func(ctx context.Context, recipientID uint, limit int) ([]*notification.Notification, error)
	CountUnreadFunc      func(ctx context.Context, recipientID uint) (int64, error)
	MarkReadFunc         func(ctx context.Context, id uint, recipientID uint) (bool, error)
	MarkAllReadFunc      func(ctx context.Context, recipientID uint) (int64, error)
	DeleteReadBeforeFunc func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) ListByRecipient(ctx context.Context, recipientID uint, limit int) ([]*notification.Notification, error) {
	if m.ListByRecipientFunc != nil {
		return m.ListByRecipientFunc(ctx, recipientID, limit)
	}
	return nil, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, recipientID uint) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, recipientID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) MarkRead(ctx context.Context, id uint, recipientID uint) (bool, error) {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, id, recipientID)
	}
	return false, nil
}

func (m *mockNotificationRepository) MarkAllRead(ctx context.Context, recipientID uint) (int64, error) {
	if m.MarkAllReadFunc != nil {
		return m.MarkAllReadFunc(ctx, recipientID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.DeleteReadBeforeFunc != nil {
		return m.DeleteReadBeforeFunc(ctx, cutoff)
	}
	return 0, nil
}
