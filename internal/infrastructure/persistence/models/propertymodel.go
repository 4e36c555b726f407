package models

import "github.com/compiler-aditya/PropTech/internal/shared/constants"

type PropertyModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:200;not null"`
	Address   string `gorm:"size:500;not null"`
	UnitCount int    `gorm:"not null;default:0"`
	ManagerID uint   `gorm:"not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (PropertyModel) TableName() string {
	return constants.TableProperties
}
