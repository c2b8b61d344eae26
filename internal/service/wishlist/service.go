// Package wishlist implements the rules governing wishlist creation.
package wishlist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spotwish/spotwish-api/internal/domain"
	"github.com/spotwish/spotwish-api/internal/service/authz"
	"github.com/spotwish/spotwish-api/internal/store"
)

// MaxEntriesPerUser caps how many wishlist rows a non-admin user may own.
const MaxEntriesPerUser = 3

// Validation errors returned by Create.
var (
	// ErrDuplicateSpot indicates the user already wishlisted this spot.
	ErrDuplicateSpot = errors.New("vacation spot is already on the wishlist")

	// ErrWishlistFull indicates the user already owns the maximum number of
	// wishlist entries.
	ErrWishlistFull = fmt.Errorf("wishlist may hold at most %d vacation spots", MaxEntriesPerUser)

	// ErrUnknownSpot indicates the referenced vacation spot does not exist.
	ErrUnknownSpot = errors.New("vacation spot does not exist")
)

// Service creates wishlist entries subject to the uniqueness and capacity
// rules. Both rules are bypassed entirely for admin identities.
type Service struct {
	db            *sql.DB
	wishlistStore store.WishlistStore
	spotStore     store.VacationSpotStore
	logger        *slog.Logger
}

// NewService creates a wishlist Service.
// If logger is nil, a default logger will be used.
func NewService(
	db *sql.DB,
	wishlistStore store.WishlistStore,
	spotStore store.VacationSpotStore,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		db:            db,
		wishlistStore: wishlistStore,
		spotStore:     spotStore,
		logger:        logger.With(slog.String("component", "wishlist_service")),
	}
}

// Create adds spotID to the caller's wishlist after checking the rules:
// the spot must exist, and for non-admin callers the (user, spot) pair must
// be new and the user must own fewer than MaxEntriesPerUser rows.
//
// The checks and the insert run inside one transaction. Reads are not
// serialized against concurrent creations by the same user, so two racing
// requests can both pass; the rules are best-effort.
func (s *Service) Create(ctx context.Context, identity authz.Identity, spotID uuid.UUID) (*domain.Wishlist, error) {
	if _, err := s.spotStore.GetByID(ctx, spotID); err != nil {
		if errors.Is(err, store.ErrSpotNotFound) {
			return nil, ErrUnknownSpot
		}
		return nil, fmt.Errorf("failed to look up vacation spot: %w", err)
	}

	entry, err := domain.NewWishlist(identity.UserID(), spotID)
	if err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.wishlistStore.WithTx(tx)

		if !identity.IsAdmin() {
			exists, err := txStore.Exists(ctx, identity.UserID(), spotID)
			if err != nil {
				return fmt.Errorf("failed to check wishlist uniqueness: %w", err)
			}
			if exists {
				return ErrDuplicateSpot
			}

			count, err := txStore.CountByUser(ctx, identity.UserID())
			if err != nil {
				return fmt.Errorf("failed to count wishlist entries: %w", err)
			}
			if count >= MaxEntriesPerUser {
				return ErrWishlistFull
			}
		}

		return txStore.Create(ctx, entry)
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateSpot) || errors.Is(err, ErrWishlistFull) {
			s.logger.Debug("wishlist creation rejected",
				slog.String("error", err.Error()),
				slog.String("user_id", identity.UserID().String()),
				slog.String("spot_id", spotID.String()))
		}
		return nil, err
	}

	return entry, nil
}

// List returns the wishlist rows visible to the caller: every row for
// admins, only the caller's own rows otherwise.
func (s *Service) List(ctx context.Context, identity authz.Identity) ([]*domain.Wishlist, error) {
	if authz.WishlistListScope(identity) {
		return s.wishlistStore.ListAll(ctx)
	}
	return s.wishlistStore.ListByUser(ctx, identity.UserID())
}
