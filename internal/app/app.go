package app

import (
	"log/slog"

	"github.com/thenoetrevino/studentsync/internal/config"
	"github.com/thenoetrevino/studentsync/internal/database"
	"github.com/thenoetrevino/studentsync/internal/selector"
	dashboardservice "github.com/thenoetrevino/studentsync/internal/services/dashboard"
	recordservice "github.com/thenoetrevino/studentsync/internal/services/record"
)

// App holds all application services and provides dependency injection.
// Every consumer receives the storage through it; there is no global handle.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	logger *slog.Logger

	// Service layer
	RecordService    recordservice.Service
	DashboardService dashboardservice.Service

	// Results filter choices
	Departments []string
	Semesters   []string
}

// New creates a new App with all services initialized.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{
		mode:        selector.ModeMaterialized,
		logger:      slog.Default(),
		departments: config.Default().Results.Departments,
		semesters:   config.Default().Results.Semesters,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	cfg.logger.Debug("app initialized", "selector_mode", cfg.mode)

	return &App{
		repo:             repo,
		logger:           cfg.logger,
		RecordService:    recordservice.NewService(repo, cfg.mode),
		DashboardService: dashboardservice.NewService(repo),
		Departments:      cfg.departments,
		Semesters:        cfg.semesters,
	}
}

// Repo returns the underlying repository
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close performs cleanup of application resources.
// The database handle is owned and closed by the caller.
func (a *App) Close() error {
	return nil
}
