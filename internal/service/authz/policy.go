// Package authz centralizes the access rules: who may perform an operation
// on which resource. The rules are pure functions of the caller's identity
// and the target resource, so every branch is testable without a database.
package authz

import (
	"errors"

	"github.com/google/uuid"
	"github.com/spotwish/spotwish-api/internal/domain"
)

// Policy errors
var (
	// ErrUnauthenticated indicates the operation requires a valid identity
	// and none was presented.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden indicates a valid identity lacks permission for the
	// operation.
	ErrForbidden = errors.New("forbidden")
)

// Identity is the authenticated caller, in exactly one of two variants:
// an admin or a regular user. Handlers never compare role IDs themselves;
// they build an Identity once (in the auth middleware) and ask the policy.
type Identity struct {
	userID uuid.UUID
	admin  bool
}

// AdminIdentity builds the admin variant for the given user ID.
func AdminIdentity(userID uuid.UUID) Identity {
	return Identity{userID: userID, admin: true}
}

// UserIdentity builds the regular-user variant for the given user ID.
func UserIdentity(userID uuid.UUID) Identity {
	return Identity{userID: userID, admin: false}
}

// UserID returns the caller's user ID.
func (id Identity) UserID() uuid.UUID {
	return id.userID
}

// IsAdmin reports whether this is the admin variant.
func (id Identity) IsAdmin() bool {
	return id.admin
}

// CanManageSpots decides whether the caller may create, update, or delete
// vacation spots. Only admins may; reads are public and never ask.
func CanManageSpots(id *Identity) error {
	if id == nil {
		return ErrUnauthenticated
	}
	if !id.admin {
		return ErrForbidden
	}
	return nil
}

// CanActOnOwned decides whether the caller may mutate or read a resource
// owned by ownerID. Admins always may; everyone else only their own.
func CanActOnOwned(id *Identity, ownerID uuid.UUID) error {
	if id == nil {
		return ErrUnauthenticated
	}
	if id.admin || id.userID == ownerID {
		return nil
	}
	return ErrForbidden
}

// CanViewUser decides whether a single user record may be shown. A user
// carrying the admin role is hidden from everyone, the caller's own identity
// included.
func CanViewUser(target *domain.User, adminRoleID int) error {
	if target.RoleID == adminRoleID {
		return ErrForbidden
	}
	return nil
}

// UserListExcludedRole returns the role ID to exclude from a users listing
// for the given (possibly nil) caller: admins see everyone, everyone else
// sees only non-admin rows.
func UserListExcludedRole(id *Identity, adminRoleID int) int {
	if id != nil && id.admin {
		return 0
	}
	return adminRoleID
}

// WishlistListScope reports whether the caller sees all wishlist rows
// (admins) or only their own.
func WishlistListScope(id Identity) (all bool) {
	return id.admin
}
