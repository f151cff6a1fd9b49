package user

import (
	"context"
	"fmt"

	domain "github.com/mohammadpnp/scim-provision/internal/domain/user"
)

const listResponseSchema = "urn:ietf:params:scim:api:messages:2.0:ListResponse"

const (
	defaultListCount = 100
	maxListCount     = 1000
)

type ListUsersInput struct {
	RealmID    string
	StartIndex int
	Count      int
	Filter     string
}

// ListUsersOutput follows the SCIM ListResponse message shape.
type ListUsersOutput struct {
	Schemas      []string       `json:"schemas"`
	TotalResults int64          `json:"totalResults"`
	StartIndex   int            `json:"startIndex"`
	ItemsPerPage int            `json:"itemsPerPage"`
	Resources    []UserResource `json:"Resources"`
}

type ListUsers interface {
	Execute(ctx context.Context, in ListUsersInput) (ListUsersOutput, error)
}

type userLister interface {
	List(ctx context.Context, realmID string, q domain.ListQuery) ([]domain.User, int64, error)
}

type listUsers struct {
	users userLister
}

func NewListUsers(users userLister) ListUsers {
	return &listUsers{users: users}
}

func (uc *listUsers) Execute(ctx context.Context, in ListUsersInput) (ListUsersOutput, error) {
	if in.StartIndex < 1 {
		in.StartIndex = 1
	}
	if in.Count < 1 {
		in.Count = defaultListCount
	}
	if in.Count > maxListCount {
		in.Count = maxListCount
	}

	records, total, err := uc.users.List(ctx, in.RealmID, domain.ListQuery{
		StartIndex: in.StartIndex,
		Count:      in.Count,
		Filter:     in.Filter,
	})
	if err != nil {
		return ListUsersOutput{}, fmt.Errorf("%w: %v", ErrListUsers, err)
	}

	resources := make([]UserResource, 0, len(records))
	for _, record := range records {
		resources = append(resources, toResource(record))
	}

	return ListUsersOutput{
		Schemas:      []string{listResponseSchema},
		TotalResults: total,
		StartIndex:   in.StartIndex,
		ItemsPerPage: len(resources),
		Resources:    resources,
	}, nil
}
