package user

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/scim-provision/internal/domain/user"
)

type GetUserByEmailInput struct {
	RealmID string
	Email   string
}

type GetUserByEmail interface {
	Execute(ctx context.Context, in GetUserByEmailInput) (UserResource, error)
}

type userByEmailGetter interface {
	GetByEmail(ctx context.Context, realmID, email string) (domain.User, error)
}

type getUserByEmail struct {
	users userByEmailGetter
}

func NewGetUserByEmail(users userByEmailGetter) GetUserByEmail {
	return &getUserByEmail{users: users}
}

func (uc *getUserByEmail) Execute(ctx context.Context, in GetUserByEmailInput) (UserResource, error) {
	record, err := uc.users.GetByEmail(ctx, in.RealmID, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return UserResource{}, ErrUserNotFound
		}
		return UserResource{}, fmt.Errorf("%w: %v", ErrGetUser, err)
	}

	return toResource(record), nil
}
