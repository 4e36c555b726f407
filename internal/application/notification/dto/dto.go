package dto

import (
	"time"

	"github.com/compiler-aditya/PropTech/internal/domain/notification"
)

type NotificationDTO struct {
	ID        uint      `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	LinkURL   string    `json:"link_url,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type UnreadCountDTO struct {
	Count int64 `json:"count"`
}

type MarkAllReadDTO struct {
	Updated int64 `json:"updated"`
}

func ToNotificationDTO(n *notification.Notification) *NotificationDTO {
	if n == nil {
		return nil
	}
	return &NotificationDTO{
		ID:        n.ID(),
		Type:      n.Type().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		LinkURL:   n.LinkURL(),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}
}

func ToNotificationDTOList(items []*notification.Notification) []*NotificationDTO {
	out := make([]*NotificationDTO, 0, len(items))
	for _, n := range items {
		out = append(out, ToNotificationDTO(n))
	}
	return out
}
