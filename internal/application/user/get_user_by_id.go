package user

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	domain "github.com/mohammadpnp/scim-provision/internal/domain/user"
)

var userIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

type GetUserByIDInput struct {
	RealmID string
	UserID  string
}

type GetUserByID interface {
	Execute(ctx context.Context, in GetUserByIDInput) (UserResource, error)
}

type userByIDGetter interface {
	GetByID(ctx context.Context, realmID, userID string) (domain.User, error)
}

type getUserByID struct {
	users userByIDGetter
}

func NewGetUserByID(users userByIDGetter) GetUserByID {
	return &getUserByID{users: users}
}

func (uc *getUserByID) Execute(ctx context.Context, in GetUserByIDInput) (UserResource, error) {
	if !userIDPattern.MatchString(in.UserID) {
		return UserResource{}, ErrInvalidUserID
	}

	record, err := uc.users.GetByID(ctx, in.RealmID, in.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return UserResource{}, ErrUserNotFound
		}
		return UserResource{}, fmt.Errorf("%w: %v", ErrGetUser, err)
	}

	return toResource(record), nil
}
