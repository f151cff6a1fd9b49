package realm

import (
	"context"
	"fmt"

	domain "github.com/mohammadpnp/scim-provision/internal/domain/user"
)

type ListRealms interface {
	Execute(ctx context.Context) ([]RealmResource, error)
}

type realmLister interface {
	List(ctx context.Context) ([]domain.Realm, error)
}

type listRealms struct {
	realms realmLister
}

func NewListRealms(realms realmLister) ListRealms {
	return &listRealms{realms: realms}
}

func (uc *listRealms) Execute(ctx context.Context) ([]RealmResource, error) {
	records, err := uc.realms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListRealms, err)
	}

	resources := make([]RealmResource, 0, len(records))
	for _, record := range records {
		resources = append(resources, toResource(record))
	}
	return resources, nil
}
