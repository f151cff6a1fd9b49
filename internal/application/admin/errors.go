package admin

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidAdmin       = errors.New("invalid admin data")
	ErrDuplicateAdmin     = errors.New("admin username already exists")
	ErrCreateAdmin        = errors.New("failed to create admin user")
)
