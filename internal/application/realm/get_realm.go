package realm

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/scim-provision/internal/domain/user"
)

type GetRealmInput struct {
	RealmID string
}

type GetRealm interface {
	Execute(ctx context.Context, in GetRealmInput) (RealmResource, error)
}

type realmGetter interface {
	GetByRealmID(ctx context.Context, realmID string) (domain.Realm, error)
}

type getRealm struct {
	realms realmGetter
}

func NewGetRealm(realms realmGetter) GetRealm {
	return &getRealm{realms: realms}
}

func (uc *getRealm) Execute(ctx context.Context, in GetRealmInput) (RealmResource, error) {
	record, err := uc.realms.GetByRealmID(ctx, in.RealmID)
	if err != nil {
		if errors.Is(err, domain.ErrRealmNotFound) {
			return RealmResource{}, ErrRealmNotFound
		}
		return RealmResource{}, fmt.Errorf("%w: %v", ErrGetRealm, err)
	}

	return toResource(record), nil
}
