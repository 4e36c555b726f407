package notification

import (
	"context"
	"time"
)

// NotificationRepository stores notifications. Every read and write other than
// Create is scoped to the owning recipient.
type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	ListByRecipient(ctx context.Context, recipientID uint, limit int) ([]*Notification, error)
	CountUnread(ctx context.Context, recipientID uint) (int64, error)
	// MarkRead returns false when no notification with that ID belongs to recipientID.
	MarkRead(ctx context.Context, id uint, recipientID uint) (bool, error)
	MarkAllRead(ctx context.Context, recipientID uint) (int64, error)
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
