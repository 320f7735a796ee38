package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roamlog/roamlog-api/internal/domain/entry"
	"github.com/roamlog/roamlog-api/internal/domain/extraction"
	"github.com/roamlog/roamlog-api/internal/places"
	"github.com/roamlog/roamlog-api/pkg/config"
	"github.com/roamlog/roamlog-api/pkg/db"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger
	Pool   *pgxpool.Pool

	// Clients
	PlacesClient places.Client

	// Repositories
	EntryRepo entry.Repository

	// Services
	ExtractionService extraction.Service
	EntryService      entry.Service

	// Handlers
	EntryHandler *entry.Handler
}

// InitDependencies initializes all application dependencies
func InitDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if err := deps.initDatabase(ctx); err != nil {
		return nil, fmt.Errorf("failed to init database: %w", err)
	}
	deps.initServices()

	logger.Info("all dependencies initialized successfully")

	return deps, nil
}

// initDatabase initializes the database connection and runs migrations
func (d *Dependencies) initDatabase(ctx context.Context) error {
	if err := db.RunMigrations(d.Config.Database.URL); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	pool, err := db.NewPool(ctx, d.Config.Database.URL)
	if err != nil {
		return err
	}
	d.Pool = pool

	d.Logger.Info("database connected and migrations completed successfully")
	return nil
}

// initServices wires the places gateway, extraction pipeline and the entry
// domain on top of it.
func (d *Dependencies) initServices() {
	d.PlacesClient = places.NewGoogleClient(d.Config.Places.APIKey, d.Logger)
	if !d.PlacesClient.IsConfigured() {
		d.Logger.Warn("places API key missing; place extraction is disabled")
	}

	d.ExtractionService = extraction.NewServiceImpl(
		d.PlacesClient,
		extraction.DefaultScoringWeights(),
		d.Config.Extraction.OverallTimeout,
		d.Logger,
	)

	d.EntryRepo = entry.NewRepositoryImpl(d.Pool, d.Logger)
	d.EntryService = entry.NewServiceImpl(d.EntryRepo, d.ExtractionService, d.Logger)
	d.EntryHandler = entry.NewHandler(d.EntryService, d.ExtractionService, d.Logger)

	d.Logger.Info("services initialized")
}

// Cleanup closes all resources
func (d *Dependencies) Cleanup() {
	if d.Pool != nil {
		d.Pool.Close()
	}
	d.Logger.Info("cleanup completed")
}
