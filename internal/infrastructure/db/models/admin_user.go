package models

import "time"

type AdminUser struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"size:120;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	Email        string `gorm:"size:320;not null"`
	IsActive     bool   `gorm:"not null;default:true"`
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AdminUser) TableName() string {
	return "admin_users"
}
