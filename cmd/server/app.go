package main

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/spotwish/spotwish-api/internal/config"
	"github.com/spotwish/spotwish-api/internal/platform/postgres"
	"github.com/spotwish/spotwish-api/internal/service/auth"
	"github.com/spotwish/spotwish-api/internal/service/roles"
	"github.com/spotwish/spotwish-api/internal/service/wishlist"
	"github.com/spotwish/spotwish-api/internal/store"
)

// application holds the assembled dependency graph: configuration, the
// database handle, stores, and services, wired once at startup and shared
// by the router, the migration runner, and the seeder.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore     store.UserStore
	roleStore     store.RoleStore
	spotStore     store.VacationSpotStore
	wishlistStore store.WishlistStore

	jwtService      auth.JWTService
	passwordHasher  *auth.BcryptHasher
	roleResolver    *roles.Resolver
	wishlistService *wishlist.Service
}

// newApplication connects to the database and wires up stores and services.
func newApplication(cfg *config.Config, appLogger *slog.Logger) (*application, error) {
	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, err
	}

	hasher := auth.NewBcryptHasher()

	userStore := postgres.NewUserStore(db, hasher, appLogger)
	roleStore := postgres.NewRoleStore(db, appLogger)
	spotStore := postgres.NewVacationSpotStore(db, appLogger)
	wishlistStore := postgres.NewWishlistStore(db, appLogger)

	roleResolver := roles.NewResolver(
		roleStore,
		time.Duration(cfg.Auth.RoleCacheTTLMinutes)*time.Minute,
		appLogger,
	)

	wishlistService := wishlist.NewService(db, wishlistStore, spotStore, appLogger)

	return &application{
		config:          cfg,
		logger:          appLogger,
		db:              db,
		userStore:       userStore,
		roleStore:       roleStore,
		spotStore:       spotStore,
		wishlistStore:   wishlistStore,
		jwtService:      jwtService,
		passwordHasher:  hasher,
		roleResolver:    roleResolver,
		wishlistService: wishlistService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
