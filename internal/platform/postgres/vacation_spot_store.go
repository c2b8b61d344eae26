package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spotwish/spotwish-api/internal/domain"
	"github.com/spotwish/spotwish-api/internal/platform/logger"
	"github.com/spotwish/spotwish-api/internal/store"
)

// VacationSpotStore implements the store.VacationSpotStore interface using
// PostgreSQL.
type VacationSpotStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewVacationSpotStore creates a new PostgreSQL implementation of the
// VacationSpotStore interface. If logger is nil, a default logger will be
// used.
func NewVacationSpotStore(db store.DBTX, logger *slog.Logger) *VacationSpotStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &VacationSpotStore{
		db:     db,
		logger: logger.With(slog.String("component", "vacation_spot_store")),
	}
}

// Ensure VacationSpotStore implements store.VacationSpotStore interface
var _ store.VacationSpotStore = (*VacationSpotStore)(nil)

// Create implements store.VacationSpotStore.Create
func (s *VacationSpotStore) Create(ctx context.Context, spot *domain.VacationSpot) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := spot.Validate(); err != nil {
		log.Warn("vacation spot validation failed during create",
			slog.String("error", err.Error()),
			slog.String("spot_id", spot.ID.String()))
		return err
	}

	query := `
		INSERT INTO vacation_spots (id, name, latitude, longitude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		spot.ID,
		spot.Name,
		spot.Latitude,
		spot.Longitude,
		spot.CreatedAt,
		spot.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("vacation spot name already exists",
				slog.String("name", spot.Name))
			return store.ErrSpotNameExists
		}
		log.Error("failed to create vacation spot",
			slog.String("error", err.Error()),
			slog.String("spot_id", spot.ID.String()))
		return MapError(err)
	}

	log.Info("vacation spot created",
		slog.String("spot_id", spot.ID.String()),
		slog.String("name", spot.Name))
	return nil
}

// GetByID implements store.VacationSpotStore.GetByID
func (s *VacationSpotStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.VacationSpot, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, latitude, longitude, created_at, updated_at
		FROM vacation_spots
		WHERE id = $1
	`

	var spot domain.VacationSpot
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&spot.ID,
		&spot.Name,
		&spot.Latitude,
		&spot.Longitude,
		&spot.CreatedAt,
		&spot.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSpotNotFound
		}
		log.Error("failed to get vacation spot by ID",
			slog.String("error", err.Error()),
			slog.String("spot_id", id.String()))
		return nil, MapError(err)
	}

	return &spot, nil
}

// List implements store.VacationSpotStore.List
func (s *VacationSpotStore) List(ctx context.Context) ([]*domain.VacationSpot, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, latitude, longitude, created_at, updated_at
		FROM vacation_spots
		ORDER BY name
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list vacation spots",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	spots := make([]*domain.VacationSpot, 0)
	for rows.Next() {
		var spot domain.VacationSpot
		if err := rows.Scan(
			&spot.ID,
			&spot.Name,
			&spot.Latitude,
			&spot.Longitude,
			&spot.CreatedAt,
			&spot.UpdatedAt,
		); err != nil {
			log.Error("failed to scan vacation spot row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		spots = append(spots, &spot)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return spots, nil
}

// Update implements store.VacationSpotStore.Update
func (s *VacationSpotStore) Update(ctx context.Context, spot *domain.VacationSpot) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := spot.Validate(); err != nil {
		log.Warn("vacation spot validation failed during update",
			slog.String("error", err.Error()),
			slog.String("spot_id", spot.ID.String()))
		return err
	}

	spot.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE vacation_spots
		SET name = $1, latitude = $2, longitude = $3, updated_at = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		spot.Name,
		spot.Latitude,
		spot.Longitude,
		spot.UpdatedAt,
		spot.ID,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrSpotNameExists
		}
		log.Error("failed to update vacation spot",
			slog.String("error", err.Error()),
			slog.String("spot_id", spot.ID.String()))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrSpotNotFound)
}

// Delete implements store.VacationSpotStore.Delete
func (s *VacationSpotStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM vacation_spots WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete vacation spot",
			slog.String("error", err.Error()),
			slog.String("spot_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrSpotNotFound); err != nil {
		return err
	}

	log.Info("vacation spot deleted", slog.String("spot_id", id.String()))
	return nil
}
