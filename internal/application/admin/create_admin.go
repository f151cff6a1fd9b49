package admin

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/mohammadpnp/scim-provision/internal/domain/user"
)

const minPasswordLength = 8

type CreateAdminInput struct {
	Username string
	Password string
	Email    string
}

type CreateAdminOutput struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateAdmin interface {
	Execute(ctx context.Context, in CreateAdminInput) (CreateAdminOutput, error)
}

type adminWriter interface {
	Create(ctx context.Context, a domain.Admin) (domain.Admin, error)
	GetByUsername(ctx context.Context, username string) (domain.Admin, error)
}

type createAdmin struct {
	admins adminWriter
}

func NewCreateAdmin(admins adminWriter) CreateAdmin {
	return &createAdmin{admins: admins}
}

func (uc *createAdmin) Execute(ctx context.Context, in CreateAdminInput) (CreateAdminOutput, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return CreateAdminOutput{}, fmt.Errorf("%w: username is required", ErrInvalidAdmin)
	}
	if len(in.Password) < minPasswordLength {
		return CreateAdminOutput{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidAdmin, minPasswordLength)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return CreateAdminOutput{}, fmt.Errorf("%w: invalid email", ErrInvalidAdmin)
	}

	if _, err := uc.admins.GetByUsername(ctx, username); err == nil {
		return CreateAdminOutput{}, ErrDuplicateAdmin
	} else if !errors.Is(err, domain.ErrAdminNotFound) {
		return CreateAdminOutput{}, fmt.Errorf("%w: %v", ErrCreateAdmin, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return CreateAdminOutput{}, fmt.Errorf("%w: %v", ErrCreateAdmin, err)
	}

	created, err := uc.admins.Create(ctx, domain.Admin{
		Username:     username,
		PasswordHash: string(hash),
		Email:        in.Email,
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateAdmin) {
			return CreateAdminOutput{}, ErrDuplicateAdmin
		}
		return CreateAdminOutput{}, fmt.Errorf("%w: %v", ErrCreateAdmin, err)
	}

	return CreateAdminOutput{
		ID:        created.ID,
		Username:  created.Username,
		Email:     created.Email,
		IsActive:  created.IsActive,
		CreatedAt: created.CreatedAt,
	}, nil
}
