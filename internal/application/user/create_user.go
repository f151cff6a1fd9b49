package user

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/scim-provision/internal/domain/user"
)

type EmailInput struct {
	Value   string `json:"value"`
	Primary bool   `json:"primary"`
}

type CreateUserInput struct {
	RealmID     string
	UserName    string
	ExternalID  string
	FirstName   string
	SurName     string
	DisplayName string
	Active      *bool
	Emails      []EmailInput
}

type CreateUser interface {
	Execute(ctx context.Context, in CreateUserInput) (UserResource, error)
}

type realmChecker interface {
	Exists(ctx context.Context, realmID string) (bool, error)
}

type userCreator interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

type createUser struct {
	users  userCreator
	realms realmChecker
}

func NewCreateUser(users userCreator, realms realmChecker) CreateUser {
	return &createUser{users: users, realms: realms}
}

func (uc *createUser) Execute(ctx context.Context, in CreateUserInput) (UserResource, error) {
	exists, err := uc.realms.Exists(ctx, in.RealmID)
	if err != nil {
		return UserResource{}, fmt.Errorf("%w: %v", ErrCreateUser, err)
	}
	if !exists {
		return UserResource{}, ErrRealmNotFound
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	emails := make([]domain.Email, 0, len(in.Emails))
	for _, email := range in.Emails {
		emails = append(emails, domain.Email{Value: email.Value, Primary: email.Primary})
	}

	record, err := domain.NewUser(in.UserName, in.FirstName, in.SurName, in.DisplayName, in.ExternalID, active, emails)
	if err != nil {
		return UserResource{}, fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}
	record.RealmID = in.RealmID

	created, err := uc.users.Create(ctx, record)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUserName) {
			return UserResource{}, ErrDuplicateUserName
		}
		return UserResource{}, fmt.Errorf("%w: %v", ErrCreateUser, err)
	}

	return toResource(created), nil
}
