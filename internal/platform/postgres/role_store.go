package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/spotwish/spotwish-api/internal/domain"
	"github.com/spotwish/spotwish-api/internal/platform/logger"
	"github.com/spotwish/spotwish-api/internal/store"
)

// RoleStore implements the store.RoleStore interface using PostgreSQL.
// Roles are immutable reference data seeded by migration, so only lookup is
// supported.
type RoleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewRoleStore creates a new PostgreSQL implementation of the RoleStore
// interface. If logger is nil, a default logger will be used.
func NewRoleStore(db store.DBTX, logger *slog.Logger) *RoleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RoleStore{
		db:     db,
		logger: logger.With(slog.String("component", "role_store")),
	}
}

// Ensure RoleStore implements store.RoleStore interface
var _ store.RoleStore = (*RoleStore)(nil)

// GetByName implements store.RoleStore.GetByName
// Returns store.ErrRoleNotFound when the role has not been seeded, which is
// a deployment precondition failure rather than a user error.
func (s *RoleStore) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var role domain.Role
	err := s.db.QueryRowContext(
		ctx,
		`SELECT id, name FROM roles WHERE name = $1`,
		name,
	).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("role not seeded", slog.String("role", name))
			return nil, store.ErrRoleNotFound
		}
		log.Error("failed to get role by name",
			slog.String("error", err.Error()),
			slog.String("role", name))
		return nil, MapError(err)
	}

	return &role, nil
}
