package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/studentsync/internal/app"
	"github.com/thenoetrevino/studentsync/internal/config"
	"github.com/thenoetrevino/studentsync/internal/database"
	"github.com/thenoetrevino/studentsync/internal/logging"
	"github.com/thenoetrevino/studentsync/internal/tui/components"
	"github.com/thenoetrevino/studentsync/internal/tui/core"
)

// Options overrides configuration for one launch
type Options struct {
	DBPath       string
	SelectorMode string
}

// Launch starts the TUI application.
// A storage failure is returned wrapped in models.ErrStorageUnavailable.
func Launch(opts Options) error {
	// Initialize logging to file before anything else
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.DBPath != "" {
		cfg.Database.Path = opts.DBPath
	}
	if opts.SelectorMode != "" {
		cfg.Selector.Mode = opts.SelectorMode
	}

	appOpts, err := app.FromConfig(cfg)
	if err != nil {
		return err
	}

	components.InitStyles(cfg.ColorScheme)

	dbPath := cfg.Database.Path
	if dbPath == "" {
		if dbPath, err = database.DefaultPath(); err != nil {
			return err
		}
	}

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		slog.Error("storage unavailable", "path", dbPath, "error", err)
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// database cleanup
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	if _, err := database.Seed(ctx, db); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	application := app.New(database.NewRepository(db), appOpts...)
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing app", "error", err)
		}
	}()

	tuiApp := core.New(ctx, application, cfg)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	if ctx.Err() != nil {
		slog.Info("shutdown signal received, cleaning up")
	}

	return nil
}
