package app

import (
	"log/slog"

	"github.com/thenoetrevino/studentsync/internal/config"
	"github.com/thenoetrevino/studentsync/internal/selector"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	mode        selector.Mode
	logger      *slog.Logger
	departments []string
	semesters   []string
}

// WithSelectorMode sets how display positions are resolved to record ids
func WithSelectorMode(mode selector.Mode) Option {
	return func(cfg *appConfig) {
		cfg.mode = mode
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithResultsFilters sets the department and semester choices of the Results tab
func WithResultsFilters(results config.ResultsConfig) Option {
	return func(cfg *appConfig) {
		if len(results.Departments) > 0 {
			cfg.departments = results.Departments
		}
		if len(results.Semesters) > 0 {
			cfg.semesters = results.Semesters
		}
	}
}

// FromConfig applies every app-level setting of a loaded config
func FromConfig(c *config.Config) ([]Option, error) {
	mode, err := selector.ParseMode(c.Selector.Mode)
	if err != nil {
		return nil, err
	}
	return []Option{WithSelectorMode(mode), WithResultsFilters(c.Results)}, nil
}
