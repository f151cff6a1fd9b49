package user

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/scim-provision/internal/domain/user"
)

// UpdateUserInput applies only the fields that are set; nil pointers leave
// the stored value untouched.
type UpdateUserInput struct {
	RealmID     string
	UserID      string
	UserName    *string
	ExternalID  *string
	FirstName   *string
	SurName     *string
	DisplayName *string
	Active      *bool
	Emails      []EmailInput
}

type UpdateUser interface {
	Execute(ctx context.Context, in UpdateUserInput) (UserResource, error)
}

type userUpdater interface {
	GetByID(ctx context.Context, realmID, userID string) (domain.User, error)
	Update(ctx context.Context, u domain.User) (domain.User, error)
}

type updateUser struct {
	users userUpdater
}

func NewUpdateUser(users userUpdater) UpdateUser {
	return &updateUser{users: users}
}

func (uc *updateUser) Execute(ctx context.Context, in UpdateUserInput) (UserResource, error) {
	if !userIDPattern.MatchString(in.UserID) {
		return UserResource{}, ErrInvalidUserID
	}

	record, err := uc.users.GetByID(ctx, in.RealmID, in.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return UserResource{}, ErrUserNotFound
		}
		return UserResource{}, fmt.Errorf("%w: %v", ErrUpdateUser, err)
	}

	if in.UserName != nil {
		record.UserName = *in.UserName
	}
	if in.ExternalID != nil {
		record.ExternalID = *in.ExternalID
	}
	if in.FirstName != nil {
		record.FirstName = *in.FirstName
	}
	if in.SurName != nil {
		record.SurName = *in.SurName
	}
	if in.DisplayName != nil {
		record.DisplayName = *in.DisplayName
	}
	if in.Active != nil {
		record.Active = *in.Active
	}
	if in.Emails != nil {
		emails := make([]domain.Email, 0, len(in.Emails))
		for _, email := range in.Emails {
			emails = append(emails, domain.Email{Value: email.Value, Primary: email.Primary})
		}
		record.Emails = emails
	}

	// Re-run the aggregate validation so a partial update cannot leave the
	// record in a shape NewUser would reject.
	validated, err := domain.NewUser(record.UserName, record.FirstName, record.SurName, record.DisplayName, record.ExternalID, record.Active, record.Emails)
	if err != nil {
		return UserResource{}, fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}
	validated.ID = record.ID
	validated.RealmID = record.RealmID
	validated.CreatedAt = record.CreatedAt

	updated, err := uc.users.Update(ctx, validated)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return UserResource{}, ErrUserNotFound
		case errors.Is(err, domain.ErrDuplicateUserName):
			return UserResource{}, ErrDuplicateUserName
		default:
			return UserResource{}, fmt.Errorf("%w: %v", ErrUpdateUser, err)
		}
	}

	return toResource(updated), nil
}
