package models

import "time"

// SCIMUser rows are written by the pgx repository; the struct exists so
// AutoMigrate can own the schema alongside the gorm-managed tables.
type SCIMUser struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	RealmID    string `gorm:"size:50;not null;uniqueIndex:idx_realm_username;index:idx_realm_external"`
	UserName   string `gorm:"size:255;not null;uniqueIndex:idx_realm_username"`
	ExternalID string `gorm:"size:255;index:idx_realm_external"`
	FirstName  string `gorm:"size:255;not null"`
	SurName    string `gorm:"size:255;not null"`
	// DisplayName is always materialized; the domain derives it when absent.
	DisplayName string `gorm:"size:255;not null"`
	Active      bool   `gorm:"not null;default:true"`
	Emails      string `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SCIMUser) TableName() string {
	return "scim_users"
}
