package realm

import "errors"

var (
	ErrInvalidRealm  = errors.New("invalid realm data")
	ErrRealmNotFound = errors.New("realm not found")
	ErrCreateRealm   = errors.New("failed to create realm")
	ErrGetRealm      = errors.New("failed to get realm")
	ErrListRealms    = errors.New("failed to list realms")
)
