// Package app provides application-level orchestration and dependency injection.
// This package wires together all components and manages the application lifecycle.
package app

import (
	"fmt"
	"log/slog"

	"github.com/mokshhhhh/mussick/internal/adapter/catalog/saavn"
	"github.com/mokshhhhh/mussick/internal/adapter/engine/mock"
	"github.com/mokshhhhh/mussick/internal/adapter/engine/mpv"
	"github.com/mokshhhhh/mussick/internal/adapter/eventbus"
	"github.com/mokshhhhh/mussick/internal/adapter/repository/file"
	"github.com/mokshhhhh/mussick/internal/config"
	"github.com/mokshhhhh/mussick/internal/logger"
	"github.com/mokshhhhh/mussick/internal/ports"
	"github.com/mokshhhhh/mussick/internal/service"
)

// Application is the root application structure that holds all dependencies.
// It follows the Dependency Injection pattern with constructor-based injection.
//
// The Application struct is responsible for:
// - Creating and wiring all dependencies
// - Managing the application lifecycle (startup, shutdown)
// - Providing a clean entry point for main.go
type Application struct {
	// Core dependencies
	logger *slog.Logger
	config *config.Config

	// Infrastructure
	eventBus ports.EventBus
	engine   ports.MediaEngine
	catalog  ports.Catalog

	// Repositories
	favoritesRepo ports.FavoritesRepository
	playlistsRepo ports.PlaylistsRepository

	// Services
	playerService  *service.PlayerService
	libraryService *service.LibraryService
}

// NewApplication creates a new application with all dependencies wired.
// This is the main dependency injection function.
func NewApplication(cfg *config.Config) (*Application, error) {
	app := &Application{config: cfg}

	// Step 1: Create logger
	app.logger = logger.NewLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	app.logger.Info("initializing application",
		slog.String("engine", cfg.Engine.Backend),
		slog.String("catalog", cfg.Catalog.BaseURL))

	// Step 2: Create an event bus
	app.eventBus = eventbus.NewSyncEventBus(
		app.logger.With(slog.String("component", "eventbus")))

	// Step 3: Create a media engine
	switch cfg.Engine.Backend {
	case "mock":
		app.engine = mock.NewEngine()
	default:
		app.engine = mpv.NewEngine(app.logger.With(slog.String("engine", "mpv")))
	}
	if err := app.engine.Start(); err != nil {
		return nil, fmt.Errorf("failed to start media engine: %w", err)
	}

	// Step 4: Create repositories
	dataDir := cfg.Storage.DataDir
	if dataDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data directory: %w", err)
		}
		dataDir = dir
	}
	store, err := file.NewStore(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open data store: %w", err)
	}
	storeLogger := app.logger.With(slog.String("component", "store"))
	app.favoritesRepo = file.NewFavoritesRepository(store, storeLogger)
	app.playlistsRepo = file.NewPlaylistsRepository(store, storeLogger)

	// Step 5: Create the catalog client
	app.catalog = saavn.NewClient(saavn.Options{
		BaseURL:            cfg.Catalog.BaseURL,
		Timeout:            cfg.Catalog.GetHTTPTimeout(),
		PlaceholderArtwork: cfg.Catalog.PlaceholderArtwork,
	}, app.logger.With(slog.String("component", "catalog")))

	// Step 6: Create services (with dependency injection)
	app.playerService = service.NewPlayerService(
		app.logger.With(slog.String("service", "player")),
		app.engine,
		app.eventBus,
	)

	app.libraryService = service.NewLibraryService(
		app.logger.With(slog.String("service", "library")),
		app.favoritesRepo,
		app.playlistsRepo,
		app.eventBus,
	)

	// Step 7: Load saved state
	if err := app.loadSavedState(); err != nil {
		// Non-fatal - just log and continue
		app.logger.Warn("failed to load saved state", slog.Any("error", err))
	}

	return app, nil
}

// loadSavedState restores the library from the previous session.
func (a *Application) loadSavedState() error {
	if err := a.libraryService.LoadFavorites(); err != nil {
		return fmt.Errorf("failed to load favorites: %w", err)
	}
	if err := a.libraryService.LoadPlaylists(); err != nil {
		return fmt.Errorf("failed to load playlists: %w", err)
	}
	return nil
}

// Player returns the player service.
func (a *Application) Player() *service.PlayerService {
	return a.playerService
}

// Library returns the library service.
func (a *Application) Library() *service.LibraryService {
	return a.libraryService
}

// Catalog returns the remote catalog client.
func (a *Application) Catalog() ports.Catalog {
	return a.catalog
}

// EventBus returns the application event bus.
func (a *Application) EventBus() ports.EventBus {
	return a.eventBus
}

// Logger returns the root logger.
func (a *Application) Logger() *slog.Logger {
	return a.logger
}

// Shutdown gracefully shuts down the application.
// This should be called via deferring in main.go.
func (a *Application) Shutdown() error {
	a.logger.Info("shutting down application")

	var firstErr error

	// Shutdown services (the player service owns the engine)
	if a.playerService != nil {
		if err := a.playerService.Shutdown(); err != nil {
			a.logger.Warn("failed to shutdown player service", slog.Any("error", err))
			firstErr = err
		}
	}

	// Close the event bus last, so shutdown events still reach subscribers
	if a.eventBus != nil {
		if err := a.eventBus.Close(); err != nil {
			a.logger.Warn("failed to close event bus", slog.Any("error", err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	a.logger.Info("shutdown complete")
	return firstErr
}
