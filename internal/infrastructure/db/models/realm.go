package models

import "time"

type Realm struct {
	ID          int64  `gorm:"primaryKey"`
	RealmID     string `gorm:"size:50;not null;uniqueIndex"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"size:1024"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Realm) TableName() string {
	return "realms"
}
