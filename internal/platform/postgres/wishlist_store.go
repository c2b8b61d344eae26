package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spotwish/spotwish-api/internal/domain"
	"github.com/spotwish/spotwish-api/internal/platform/logger"
	"github.com/spotwish/spotwish-api/internal/store"
)

// WishlistStore implements the store.WishlistStore interface using
// PostgreSQL.
type WishlistStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewWishlistStore creates a new PostgreSQL implementation of the
// WishlistStore interface. The db may be a connection pool or a transaction.
// If logger is nil, a default logger will be used.
func NewWishlistStore(db store.DBTX, logger *slog.Logger) *WishlistStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &WishlistStore{
		db:     db,
		logger: logger.With(slog.String("component", "wishlist_store")),
	}
}

// Ensure WishlistStore implements store.WishlistStore interface
var _ store.WishlistStore = (*WishlistStore)(nil)

// WithTx implements store.WishlistStore.WithTx
func (s *WishlistStore) WithTx(tx *sql.Tx) store.WishlistStore {
	return &WishlistStore{db: tx, logger: s.logger}
}

// Create implements store.WishlistStore.Create
// Returns store.ErrInvalidEntity when the referenced user or spot does not
// exist (foreign key violation).
func (s *WishlistStore) Create(ctx context.Context, wishlist *domain.Wishlist) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := wishlist.Validate(); err != nil {
		log.Warn("wishlist validation failed during create",
			slog.String("error", err.Error()),
			slog.String("wishlist_id", wishlist.ID.String()))
		return err
	}

	query := `
		INSERT INTO wishlists (id, user_id, vacation_spot_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		wishlist.ID,
		wishlist.UserID,
		wishlist.VacationSpotID,
		wishlist.CreatedAt,
		wishlist.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during wishlist creation",
				slog.String("user_id", wishlist.UserID.String()),
				slog.String("spot_id", wishlist.VacationSpotID.String()))
			return fmt.Errorf("%w: referenced user or vacation spot not found",
				store.ErrInvalidEntity)
		}
		log.Error("failed to create wishlist",
			slog.String("error", err.Error()),
			slog.String("wishlist_id", wishlist.ID.String()))
		return MapError(err)
	}

	log.Info("wishlist created",
		slog.String("wishlist_id", wishlist.ID.String()),
		slog.String("user_id", wishlist.UserID.String()),
		slog.String("spot_id", wishlist.VacationSpotID.String()))
	return nil
}

// GetByID implements store.WishlistStore.GetByID
func (s *WishlistStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wishlist, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, vacation_spot_id, created_at, updated_at
		FROM wishlists
		WHERE id = $1
	`

	var w domain.Wishlist
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&w.ID,
		&w.UserID,
		&w.VacationSpotID,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrWishlistNotFound
		}
		log.Error("failed to get wishlist by ID",
			slog.String("error", err.Error()),
			slog.String("wishlist_id", id.String()))
		return nil, MapError(err)
	}

	return &w, nil
}

// ListAll implements store.WishlistStore.ListAll
func (s *WishlistStore) ListAll(ctx context.Context) ([]*domain.Wishlist, error) {
	return s.list(ctx, `
		SELECT id, user_id, vacation_spot_id, created_at, updated_at
		FROM wishlists
		ORDER BY created_at
	`)
}

// ListByUser implements store.WishlistStore.ListByUser
func (s *WishlistStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Wishlist, error) {
	return s.list(ctx, `
		SELECT id, user_id, vacation_spot_id, created_at, updated_at
		FROM wishlists
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
}

func (s *WishlistStore) list(ctx context.Context, query string, args ...any) ([]*domain.Wishlist, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list wishlists",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	wishlists := make([]*domain.Wishlist, 0)
	for rows.Next() {
		var w domain.Wishlist
		if err := rows.Scan(
			&w.ID,
			&w.UserID,
			&w.VacationSpotID,
			&w.CreatedAt,
			&w.UpdatedAt,
		); err != nil {
			log.Error("failed to scan wishlist row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		wishlists = append(wishlists, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return wishlists, nil
}

// CountByUser implements store.WishlistStore.CountByUser
func (s *WishlistStore) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM wishlists WHERE user_id = $1`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// Exists implements store.WishlistStore.Exists
func (s *WishlistStore) Exists(ctx context.Context, userID, spotID uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM wishlists WHERE user_id = $1 AND vacation_spot_id = $2)`,
		userID,
		spotID,
	).Scan(&exists)
	if err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// Delete implements store.WishlistStore.Delete
func (s *WishlistStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM wishlists WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete wishlist",
			slog.String("error", err.Error()),
			slog.String("wishlist_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrWishlistNotFound); err != nil {
		return err
	}

	log.Info("wishlist deleted", slog.String("wishlist_id", id.String()))
	return nil
}
