package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvDB           = "STUDENTSYNC_DB"
	EnvSelectorMode = "STUDENTSYNC_SELECTOR_MODE"
	EnvThemeFile    = "STUDENTSYNC_THEME_FILE"
	EnvFile         = "STUDENTSYNC_ENV_FILE"
)

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig `yaml:"database"`
	Selector    SelectorConfig `yaml:"selector"`
	Results     ResultsConfig  `yaml:"results"`
	KeyMappings KeyMappings    `yaml:"key_mappings"`
	ColorScheme ColorScheme    `yaml:"theme"`
}

// DatabaseConfig locates the SQLite file. An empty path means ~/.studentsync/studentsync.db.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// SelectorConfig picks how display positions map to record ids
type SelectorConfig struct {
	Mode string `yaml:"mode" validate:"oneof=materialized arithmetic"`
}

// ResultsConfig lists the department and semester choices of the Results tab
type ResultsConfig struct {
	Departments []string `yaml:"departments" validate:"min=1,dive,required"`
	Semesters   []string `yaml:"semesters" validate:"min=1,dive,required"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads config from the user's config directory, then applies .env and
// environment overrides. Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	config := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults only
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		}
	}

	// Load theme from STUDENTSYNC_THEME_FILE if set
	loadThemeFile(config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	config.applyEnv(readEnv())

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the config against its struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// loadThemeFile merges the theme section of STUDENTSYNC_THEME_FILE
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("failed to read theme file", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}
	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("failed to parse theme file", "path", themeFile, "error", err)
		return
	}
	config.ColorScheme.MergeFrom(themeConfig.Theme)
}

// readEnv returns the override variables. Values from the process environment
// win over those read from the .env file.
func readEnv() map[string]string {
	vars := map[string]string{}

	envFile := os.Getenv(EnvFile)
	if envFile == "" {
		envFile = ".env"
	}
	if fileVars, err := godotenv.Read(envFile); err == nil {
		for k, v := range fileVars {
			vars[k] = v
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to read env file", "path", envFile, "error", err)
	}

	for _, key := range []string{EnvDB, EnvSelectorMode} {
		if v := os.Getenv(key); v != "" {
			vars[key] = v
		}
	}
	return vars
}

func (c *Config) applyEnv(vars map[string]string) {
	if v := vars[EnvDB]; v != "" {
		c.Database.Path = v
	}
	if v := vars[EnvSelectorMode]; v != "" {
		c.Selector.Mode = v
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "studentsync", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "studentsync", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Selector.Mode == "" {
		c.Selector.Mode = "materialized"
	}
	if len(c.Results.Departments) == 0 {
		c.Results.Departments = []string{"CS", "EE", "ME"}
	}
	if len(c.Results.Semesters) == 0 {
		c.Results.Semesters = []string{"Fall 2025", "Spring 2026"}
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
