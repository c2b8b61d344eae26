// Package store provides abstractions for data persistence.
package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/spotwish/spotwish-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password. Returns ErrLoginExists if the login is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByLogin retrieves a user by their login.
	// Returns ErrUserNotFound if the user does not exist.
	GetByLogin(ctx context.Context, login string) (*domain.User, error)

	// List returns all users. When excludeRoleID is non-zero, users with
	// that role are omitted (used to hide admins from public listings).
	List(ctx context.Context, excludeRoleID int) ([]*domain.User, error)

	// Update modifies an existing user's login and/or hashed password.
	// Returns ErrUserNotFound if the user does not exist and ErrLoginExists
	// when updating to a login that is already taken.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new UserStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) UserStore
}

// RoleStore defines the interface for role reference data.
type RoleStore interface {
	// GetByName retrieves a role by its unique name.
	// Returns ErrRoleNotFound if the role has not been seeded.
	GetByName(ctx context.Context, name string) (*domain.Role, error)
}

// VacationSpotStore defines the interface for vacation spot persistence.
type VacationSpotStore interface {
	// Create saves a new vacation spot.
	// Returns ErrSpotNameExists if the name is taken.
	Create(ctx context.Context, spot *domain.VacationSpot) error

	// GetByID retrieves a spot by its unique ID.
	// Returns ErrSpotNotFound if the spot does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VacationSpot, error)

	// List returns all vacation spots.
	List(ctx context.Context) ([]*domain.VacationSpot, error)

	// Update modifies an existing spot. Returns ErrSpotNotFound if the spot
	// does not exist and ErrSpotNameExists on a name collision.
	Update(ctx context.Context, spot *domain.VacationSpot) error

	// Delete removes a spot by its ID.
	// Returns ErrSpotNotFound if the spot does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// WishlistStore defines the interface for wishlist persistence.
type WishlistStore interface {
	// Create saves a new wishlist entry.
	Create(ctx context.Context, wishlist *domain.Wishlist) error

	// GetByID retrieves a wishlist entry by its unique ID.
	// Returns ErrWishlistNotFound if the entry does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wishlist, error)

	// ListAll returns every wishlist entry (admin listing).
	ListAll(ctx context.Context) ([]*domain.Wishlist, error)

	// ListByUser returns the wishlist entries owned by the given user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Wishlist, error)

	// CountByUser returns how many wishlist entries the given user owns.
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// Exists reports whether an entry for (userID, spotID) already exists.
	Exists(ctx context.Context, userID, spotID uuid.UUID) (bool, error)

	// Delete removes a wishlist entry by its ID.
	// Returns ErrWishlistNotFound if the entry does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new WishlistStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) WishlistStore
}
