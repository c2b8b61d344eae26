package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors below.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same login).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails a database
	// constraint other than uniqueness (foreign key, check, not null).
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrRoleNotFound indicates the named role has not been seeded.
	ErrRoleNotFound = fmt.Errorf("%w: role", ErrNotFound)

	// ErrSpotNotFound indicates the requested vacation spot does not exist.
	ErrSpotNotFound = fmt.Errorf("%w: vacation spot", ErrNotFound)

	// ErrWishlistNotFound indicates the requested wishlist entry does not exist.
	ErrWishlistNotFound = fmt.Errorf("%w: wishlist", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrLoginExists indicates a user with the given login already exists.
	ErrLoginExists = fmt.Errorf("%w: login", ErrDuplicate)

	// ErrSpotNameExists indicates a vacation spot with the given name
	// already exists.
	ErrSpotNameExists = fmt.Errorf("%w: vacation spot name", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
