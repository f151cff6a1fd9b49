package user

import "time"

// Admin is an operator account allowed to call the provisioning API.
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        string
	IsActive     bool
	CreatedAt    time.Time
	LastLogin    *time.Time
}
