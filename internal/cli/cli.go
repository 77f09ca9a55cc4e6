package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/studentsync/internal/app"
	"github.com/thenoetrevino/studentsync/internal/config"
	"github.com/thenoetrevino/studentsync/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// db is nil when the App was injected and is owned by the caller
	db  *sql.DB
	ctx context.Context
}

// Options overrides configuration for a single invocation
type Options struct {
	DBPath       string
	SelectorMode string
}

// NewCLI loads the configuration, opens and seeds the database and builds the App
func NewCLI(ctx context.Context, opts Options) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.DBPath != "" {
		cfg.Database.Path = opts.DBPath
	}
	if opts.SelectorMode != "" {
		cfg.Selector.Mode = opts.SelectorMode
	}

	appOpts, err := app.FromConfig(cfg)
	if err != nil {
		return nil, err
	}

	dbPath := cfg.Database.Path
	if dbPath == "" {
		if dbPath, err = database.DefaultPath(); err != nil {
			return nil, err
		}
	}

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if _, err := database.Seed(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	return &CLI{
		App: app.New(database.NewRepository(db), appOpts...),
		db:  db,
		ctx: ctx,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if err := c.App.Close(); err != nil {
		slog.Error("error closing app", "error", err)
	}
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
