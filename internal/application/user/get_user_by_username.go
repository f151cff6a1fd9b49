package user

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/scim-provision/internal/domain/user"
)

type GetUserByUserNameInput struct {
	RealmID  string
	UserName string
}

type GetUserByUserName interface {
	Execute(ctx context.Context, in GetUserByUserNameInput) (UserResource, error)
}

type userByNameGetter interface {
	GetByUserName(ctx context.Context, realmID, userName string) (domain.User, error)
}

type getUserByUserName struct {
	users userByNameGetter
}

func NewGetUserByUserName(users userByNameGetter) GetUserByUserName {
	return &getUserByUserName{users: users}
}

func (uc *getUserByUserName) Execute(ctx context.Context, in GetUserByUserNameInput) (UserResource, error) {
	record, err := uc.users.GetByUserName(ctx, in.RealmID, in.UserName)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return UserResource{}, ErrUserNotFound
		}
		return UserResource{}, fmt.Errorf("%w: %v", ErrGetUser, err)
	}

	return toResource(record), nil
}
