// Package main implements the entry point for the spotwish API server,
// which manages vacation spot records and per-user wishlists behind a
// JWT-authenticated REST API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/spotwish/spotwish-api/internal/config"
	"github.com/spotwish/spotwish-api/internal/platform/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	migrate := flag.Bool("migrate", false, "apply pending database migrations and exit")
	seed := flag.Bool("seed", false, "load demo fixtures into the database and exit")
	flag.Parse()

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	ctx := context.Background()

	if *migrate {
		if err := runMigrations(app.db); err != nil {
			log.Fatalf("Migrations failed: %v", err)
		}
		return
	}

	if *seed {
		if err := runSeed(ctx, app); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		return
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and builds the application dependency
// graph. Returns the assembled application or an initialization error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	return newApplication(cfg, appLogger)
}
