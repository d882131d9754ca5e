package roles

import (
	"context"
	"errors"
	"log"

	"github.com/retailgate/storefront-api/models"
	"github.com/retailgate/storefront-api/store"
)

// Role is the access tier attached to a user profile. Matching is exact and
// case-sensitive; anything else is RoleUnknown.
type Role string

const (
	RoleCompany    Role = "company"
	RoleStaff      Role = "staff"
	RoleSuperadmin Role = "superadmin"
	RoleUnknown    Role = ""
)

// Parse maps a stored role string onto a Role. Unrecognized values, including
// case variants, resolve to RoleUnknown.
func Parse(s string) Role {
	switch Role(s) {
	case RoleCompany, RoleStaff, RoleSuperadmin:
		return Role(s)
	default:
		return RoleUnknown
	}
}

// State is the three-valued lookup state. Loading is distinct from both "has
// permission" and "lacks permission"; consumers must not redirect while a
// lookup is in flight.
type State int

const (
	StateLoading State = iota
	StateResolved
)

// Resolution is the outcome of a role lookup.
type Resolution struct {
	State   State
	Role    Role
	Profile *models.UserProfile
}

// Resolver looks up the profile document for an authenticated user id.
type Resolver struct {
	docs store.DocumentStore
}

func NewResolver(docs store.DocumentStore) *Resolver {
	return &Resolver{docs: docs}
}

// Resolve loads the profile for uid. A missing document or empty uid resolves
// to the lowest privilege rather than an error.
func (r *Resolver) Resolve(ctx context.Context, uid string) (Resolution, error) {
	if uid == "" {
		return Resolution{State: StateResolved, Role: RoleUnknown}, nil
	}
	var profile models.UserProfile
	err := r.docs.Get(ctx, store.CollectionProfiles, uid, &profile)
	if errors.Is(err, store.ErrNotFound) {
		return Resolution{State: StateResolved, Role: RoleUnknown}, nil
	}
	if err != nil {
		return Resolution{State: StateResolved, Role: RoleUnknown}, err
	}
	return Resolution{
		State:   StateResolved,
		Role:    Parse(profile.Role),
		Profile: &profile,
	}, nil
}

// Check is Resolve for guard use: a lookup failure degrades to lowest
// privilege instead of propagating.
func (r *Resolver) Check(ctx context.Context, uid string) Resolution {
	res, err := r.Resolve(ctx, uid)
	if err != nil {
		log.Printf("roles: lookup failed for %s: %v", uid, err)
	}
	return res
}
