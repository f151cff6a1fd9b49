package realm

import (
	"context"
	"fmt"
	"time"

	domain "github.com/mohammadpnp/scim-provision/internal/domain/user"
)

type RealmResource struct {
	ID          int64     `json:"id"`
	RealmID     string    `json:"realm_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateRealmInput struct {
	Name        string
	Description string
}

type CreateRealm interface {
	Execute(ctx context.Context, in CreateRealmInput) (RealmResource, error)
}

type realmCreator interface {
	Create(ctx context.Context, r domain.Realm) (domain.Realm, error)
}

type createRealm struct {
	realms realmCreator
}

func NewCreateRealm(realms realmCreator) CreateRealm {
	return &createRealm{realms: realms}
}

func (uc *createRealm) Execute(ctx context.Context, in CreateRealmInput) (RealmResource, error) {
	record, err := domain.NewRealm(in.Name, in.Description)
	if err != nil {
		return RealmResource{}, fmt.Errorf("%w: %v", ErrInvalidRealm, err)
	}

	created, err := uc.realms.Create(ctx, record)
	if err != nil {
		return RealmResource{}, fmt.Errorf("%w: %v", ErrCreateRealm, err)
	}

	return toResource(created), nil
}

func toResource(r domain.Realm) RealmResource {
	return RealmResource{
		ID:          r.ID,
		RealmID:     r.RealmID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}
