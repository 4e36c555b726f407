package valueobjects

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type NotificationType string

const (
	TypeTicketCreated  NotificationType = "TICKET_CREATED"
	TypeTicketAssigned NotificationType = "TICKET_ASSIGNED"
	TypeStatusChanged  NotificationType = "STATUS_CHANGED"
	TypeCommentAdded   NotificationType = "COMMENT_ADDED"
)

var validNotificationTypes = map[NotificationType]bool{
	TypeTicketCreated:  true,
	TypeTicketAssigned: true,
	TypeStatusChanged:  true,
	TypeCommentAdded:   true,
}

func (t NotificationType) String() string {
	return string(t)
}

// DisplayName renders the type for people, e.g. "Comment Added".
func (t NotificationType) DisplayName() string {
	words := strings.ToLower(strings.ReplaceAll(string(t), "_", " "))
	return cases.Title(language.English).String(words)
}

func (t NotificationType) IsValid() bool {
	return validNotificationTypes[t]
}

func NewNotificationType(s string) (NotificationType, error) {
	t := NotificationType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", s)
	}
	return t, nil
}
