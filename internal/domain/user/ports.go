package user

import "context"

type ListQuery struct {
	StartIndex int
	Count      int
	Filter     string
}

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, realmID, userID string) (User, error)
	GetByUserName(ctx context.Context, realmID, userName string) (User, error)
	GetByEmail(ctx context.Context, realmID, email string) (User, error)
	List(ctx context.Context, realmID string, q ListQuery) ([]User, int64, error)
	Update(ctx context.Context, u User) (User, error)
	Delete(ctx context.Context, realmID, userID string) error
}

type RealmRepository interface {
	Create(ctx context.Context, r Realm) (Realm, error)
	GetByRealmID(ctx context.Context, realmID string) (Realm, error)
	List(ctx context.Context) ([]Realm, error)
	Exists(ctx context.Context, realmID string) (bool, error)
}

type AdminRepository interface {
	Create(ctx context.Context, a Admin) (Admin, error)
	GetByUsername(ctx context.Context, username string) (Admin, error)
	TouchLastLogin(ctx context.Context, username string) error
}
