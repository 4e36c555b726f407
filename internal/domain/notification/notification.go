package notification

import (
	"fmt"
	"time"
	"unicode/utf8"

	vo "github.com/compiler-aditya/PropTech/internal/domain/notification/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/shared/biztime"
)

// Notification is an in-app delivery record for a single recipient.
type Notification struct {
	id          uint
	recipientID uint
	nType       vo.NotificationType
	title       string
	message     string
	linkURL     string
	read        bool
	createdAt   time.Time
}

func NewNotification(
	recipientID uint,
	nType vo.NotificationType,
	title string,
	message string,
	linkURL string,
) (*Notification, error) {
	if recipientID == 0 {
		return nil, fmt.Errorf("recipient ID is required")
	}
	if !nType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", nType)
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}

	return &Notification{
		recipientID: recipientID,
		nType:       nType,
		title:       title,
		message:     message,
		linkURL:     linkURL,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructNotification(
	id uint,
	recipientID uint,
	nType vo.NotificationType,
	title string,
	message string,
	linkURL string,
	read bool,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if !nType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", nType)
	}

	return &Notification{
		id:          id,
		recipientID: recipientID,
		nType:       nType,
		title:       title,
		message:     message,
		linkURL:     linkURL,
		read:        read,
		createdAt:   createdAt,
	}, nil
}

func (n *Notification) ID() uint {
	return n.id
}

func (n *Notification) RecipientID() uint {
	return n.recipientID
}

func (n *Notification) Type() vo.NotificationType {
	return n.nType
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) LinkURL() string {
	return n.linkURL
}

func (n *Notification) IsRead() bool {
	return n.read
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// IsOwnedBy reports whether userID is the recipient.
func (n *Notification) IsOwnedBy(userID uint) bool {
	return n.recipientID == userID
}
