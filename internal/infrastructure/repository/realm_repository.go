package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/mohammadpnp/scim-provision/internal/domain/user"
	"github.com/mohammadpnp/scim-provision/internal/infrastructure/db/models"
)

type RealmRepository struct {
	db *gorm.DB
}

func NewRealmRepository(db *gorm.DB) *RealmRepository {
	return &RealmRepository{db: db}
}

func (r *RealmRepository) Create(ctx context.Context, realm domain.Realm) (domain.Realm, error) {
	row := models.Realm{
		RealmID:     realm.RealmID,
		Name:        realm.Name,
		Description: realm.Description,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Realm{}, fmt.Errorf("create realm: %w", err)
	}
	return toRealmAggregate(row), nil
}

func (r *RealmRepository) GetByRealmID(ctx context.Context, realmID string) (domain.Realm, error) {
	var row models.Realm
	err := r.db.WithContext(ctx).First(&row, "realm_id = ?", realmID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Realm{}, domain.ErrRealmNotFound
		}
		return domain.Realm{}, fmt.Errorf("get realm: %w", err)
	}
	return toRealmAggregate(row), nil
}

func (r *RealmRepository) List(ctx context.Context) ([]domain.Realm, error) {
	var rows []models.Realm
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list realms: %w", err)
	}

	realms := make([]domain.Realm, 0, len(rows))
	for _, row := range rows {
		realms = append(realms, toRealmAggregate(row))
	}
	return realms, nil
}

func (r *RealmRepository) Exists(ctx context.Context, realmID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Realm{}).
		Where("realm_id = ?", realmID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check realm exists: %w", err)
	}
	return count > 0, nil
}

func toRealmAggregate(row models.Realm) domain.Realm {
	return domain.Realm{
		ID:          row.ID,
		RealmID:     row.RealmID,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}
}
