package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/compiler-aditya/PropTech/internal/shared/biztime"
)

const defaultRetention = 90 * 24 * time.Hour

type ReadNotificationPurger interface {
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// NotificationRetention hard-deletes read notifications older than the retention.
// Unread notifications are kept regardless of age.
type NotificationRetention struct {
	repo      ReadNotificationPurger
	retention time.Duration
}

func NewNotificationRetention(repo ReadNotificationPurger, retention time.Duration) *NotificationRetention {
	if retention <= 0 {
		retention = defaultRetention
	}
	return &NotificationRetention{repo: repo, retention: retention}
}

func (j *NotificationRetention) Execute(ctx context.Context) (int, error) {
	n, err := j.repo.DeleteReadBefore(ctx, biztime.NowUTC().Add(-j.retention))
	if err != nil {
		return 0, fmt.Errorf("failed to purge read notifications: %w", err)
	}
	return int(n), nil
}
