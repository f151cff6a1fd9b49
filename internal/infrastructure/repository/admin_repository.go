package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/mohammadpnp/scim-provision/internal/domain/user"
	"github.com/mohammadpnp/scim-provision/internal/infrastructure/db/models"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(ctx context.Context, admin domain.Admin) (domain.Admin, error) {
	row := models.AdminUser{
		Username:     admin.Username,
		PasswordHash: admin.PasswordHash,
		Email:        admin.Email,
		IsActive:     admin.IsActive,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Admin{}, domain.ErrDuplicateAdmin
		}
		return domain.Admin{}, fmt.Errorf("create admin: %w", err)
	}
	return toAdminAggregate(row), nil
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (domain.Admin, error) {
	var row models.AdminUser
	err := r.db.WithContext(ctx).First(&row, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Admin{}, domain.ErrAdminNotFound
		}
		return domain.Admin{}, fmt.Errorf("get admin: %w", err)
	}
	return toAdminAggregate(row), nil
}

func (r *AdminRepository) TouchLastLogin(ctx context.Context, username string) error {
	err := r.db.WithContext(ctx).
		Model(&models.AdminUser{}).
		Where("username = ?", username).
		Update("last_login", time.Now().UTC()).Error
	if err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}
	return nil
}

func toAdminAggregate(row models.AdminUser) domain.Admin {
	return domain.Admin{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		Email:        row.Email,
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt,
		LastLogin:    row.LastLogin,
	}
}
