package user

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/scim-provision/internal/domain/user"
)

type DeleteUserInput struct {
	RealmID string
	UserID  string
}

type DeleteUser interface {
	Execute(ctx context.Context, in DeleteUserInput) error
}

type userDeleter interface {
	Delete(ctx context.Context, realmID, userID string) error
}

type deleteUser struct {
	users userDeleter
}

func NewDeleteUser(users userDeleter) DeleteUser {
	return &deleteUser{users: users}
}

func (uc *deleteUser) Execute(ctx context.Context, in DeleteUserInput) error {
	if !userIDPattern.MatchString(in.UserID) {
		return ErrInvalidUserID
	}

	if err := uc.users.Delete(ctx, in.RealmID, in.UserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%w: %v", ErrDeleteUser, err)
	}

	return nil
}
