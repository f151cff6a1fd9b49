package user

import "errors"

var (
	ErrInvalidEmail      = errors.New("invalid email")
	ErrMissingUserName   = errors.New("userName is required")
	ErrMissingFirstName  = errors.New("firstName is required")
	ErrMissingSurName    = errors.New("surName is required")
	ErrNoEmails          = errors.New("at least one email is required")
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUserName = errors.New("userName already exists in realm")

	ErrMissingRealmName = errors.New("realm name is required")
	ErrRealmNotFound    = errors.New("realm not found")

	ErrAdminNotFound  = errors.New("admin user not found")
	ErrDuplicateAdmin = errors.New("admin username already exists")
)
