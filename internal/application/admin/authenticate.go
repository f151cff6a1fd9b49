package admin

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/mohammadpnp/scim-provision/internal/domain/user"
)

type AuthenticateInput struct {
	Username string
	Password string
}

type AuthenticateOutput struct {
	Username string
}

type Authenticate interface {
	Execute(ctx context.Context, in AuthenticateInput) (AuthenticateOutput, error)
}

type adminReader interface {
	GetByUsername(ctx context.Context, username string) (domain.Admin, error)
	TouchLastLogin(ctx context.Context, username string) error
}

type authenticate struct {
	admins adminReader
}

func NewAuthenticate(admins adminReader) Authenticate {
	return &authenticate{admins: admins}
}

// Execute verifies HTTP Basic credentials against the stored bcrypt hash.
// Unknown users, inactive accounts and wrong passwords all collapse into
// ErrInvalidCredentials so callers cannot probe for valid usernames.
func (uc *authenticate) Execute(ctx context.Context, in AuthenticateInput) (AuthenticateOutput, error) {
	record, err := uc.admins.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return AuthenticateOutput{}, ErrInvalidCredentials
		}
		return AuthenticateOutput{}, err
	}

	if !record.IsActive {
		return AuthenticateOutput{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(in.Password)); err != nil {
		return AuthenticateOutput{}, ErrInvalidCredentials
	}

	// Best effort; a failed timestamp update must not reject the login.
	_ = uc.admins.TouchLastLogin(ctx, in.Username)

	return AuthenticateOutput{Username: record.Username}, nil
}
