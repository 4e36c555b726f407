package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/compiler-aditya/PropTech/internal/shared/constants"
)

type NotificationModel struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uint           `gorm:"not null;index:idx_user_read"`
	Type      string         `gorm:"size:50;not null"`
	Title     string         `gorm:"size:255;not null"`
	Message   string         `gorm:"type:text;not null"`
	LinkURL   string         `gorm:"size:500"`
	IsRead    bool           `gorm:"not null;default:false;index:idx_user_read"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
