package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Realm is the isolation boundary for provisioned users: a userName is
// unique within its realm, never globally.
type Realm struct {
	ID          int64
	RealmID     string
	Name        string
	Description string
	CreatedAt   time.Time
}

func NewRealm(name, description string) (Realm, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Realm{}, ErrMissingRealmName
	}

	return Realm{
		RealmID:     NewRealmID(),
		Name:        name,
		Description: strings.TrimSpace(description),
	}, nil
}

// NewRealmID generates identifiers of the form "realm_1a2b3c4d".
func NewRealmID() string {
	return "realm_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
