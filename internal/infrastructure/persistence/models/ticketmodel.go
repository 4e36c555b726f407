package models

import (
	"gorm.io/datatypes"

	"github.com/compiler-aditya/PropTech/internal/shared/constants"
)

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Category    string `gorm:"size:50;not null;index"`
	Priority    string `gorm:"size:20;not null;index"`
	Status      string `gorm:"size:20;not null;index"`
	PropertyID  uint   `gorm:"not null;index"`
	SubmitterID uint   `gorm:"not null;index"`
	AssigneeID  *uint  `gorm:"index"`
	UnitNumber  string `gorm:"size:50"`
	Version     int    `gorm:"not null;default:1"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null;index"`
	CompletedAt *int64

	// No foreign key constraints or associations; relationships are resolved
	// by the application layer.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	AuthorID  uint   `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (CommentModel) TableName() string {
	return constants.TableTicketComments
}

type ActivityLogModel struct {
	ID          uint           `gorm:"primaryKey"`
	TicketID    uint           `gorm:"not null;index"`
	PerformedBy uint           `gorm:"not null;index"`
	Action      string         `gorm:"size:30;not null"`
	Details     datatypes.JSON `gorm:"type:json"`
	CreatedAt   int64          `gorm:"autoCreateTime:milli;not null;index"`
}

func (ActivityLogModel) TableName() string {
	return constants.TableTicketActivityLog
}

type AttachmentModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	UploadedBy uint   `gorm:"not null;index"`
	Filename   string `gorm:"size:255;not null"`
	StoredName string `gorm:"size:100;not null"`
	StorageURL string `gorm:"size:1024;not null"`
	MimeType   string `gorm:"size:50;not null"`
	Size       int64  `gorm:"not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return constants.TableTicketAttachments
}
