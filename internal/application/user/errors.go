package user

import "errors"

var (
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrInvalidUser       = errors.New("invalid user data")
	ErrUserNotFound      = errors.New("user not found")
	ErrRealmNotFound     = errors.New("realm not found")
	ErrDuplicateUserName = errors.New("userName already exists in realm")
	ErrCreateUser        = errors.New("failed to create user")
	ErrGetUser           = errors.New("failed to get user")
	ErrListUsers         = errors.New("failed to list users")
	ErrUpdateUser        = errors.New("failed to update user")
	ErrDeleteUser        = errors.New("failed to delete user")
)
