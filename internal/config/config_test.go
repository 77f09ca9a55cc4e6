package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points config, theme and .env lookups at an empty temp dir
func isolate(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(EnvThemeFile, "")
	t.Setenv(EnvFile, filepath.Join(tempDir, "missing.env"))
	t.Setenv(EnvDB, "")
	t.Setenv(EnvSelectorMode, "")
	return tempDir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "studentsync")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddRecord != "a" {
		t.Errorf("Default AddRecord key = %s, want a", defaults.AddRecord)
	}
	if defaults.SaveForm != "ctrl+s" {
		t.Errorf("Default SaveForm key = %s, want ctrl+s", defaults.SaveForm)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Selector.Mode != "materialized" {
		t.Errorf("Selector mode = %s, want materialized", cfg.Selector.Mode)
	}
	if len(cfg.Results.Departments) != 3 || cfg.Results.Departments[0] != "CS" {
		t.Errorf("Unexpected default departments: %v", cfg.Results.Departments)
	}
	if len(cfg.Results.Semesters) != 2 || cfg.Results.Semesters[1] != "Spring 2026" {
		t.Errorf("Unexpected default semesters: %v", cfg.Results.Semesters)
	}
	if cfg.ColorScheme.Accent == "" {
		t.Error("Expected default accent color")
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `database:
  path: /tmp/campus.db
selector:
  mode: arithmetic
results:
  departments: ["BBA"]
key_mappings:
  quit: "x"
  add_record: "n"
theme:
  preset: monochrome
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.Database.Path != "/tmp/campus.db" {
		t.Errorf("Database path = %s", cfg.Database.Path)
	}
	if cfg.Selector.Mode != "arithmetic" {
		t.Errorf("Selector mode = %s, want arithmetic", cfg.Selector.Mode)
	}
	if len(cfg.Results.Departments) != 1 || cfg.Results.Departments[0] != "BBA" {
		t.Errorf("Departments = %v, want [BBA]", cfg.Results.Departments)
	}
	// unspecified list falls back to defaults
	if len(cfg.Results.Semesters) != 2 {
		t.Errorf("Semesters = %v, want defaults", cfg.Results.Semesters)
	}
	if cfg.KeyMappings.Quit != "x" || cfg.KeyMappings.AddRecord != "n" {
		t.Errorf("Custom keys not loaded: %+v", cfg.KeyMappings)
	}
	if cfg.KeyMappings.EditRecord != "e" {
		t.Errorf("Loaded EditRecord key = %s, want e (default)", cfg.KeyMappings.EditRecord)
	}
	if cfg.ColorScheme.Accent != "#FFFFFF" {
		t.Errorf("Expected monochrome accent, got %s", cfg.ColorScheme.Accent)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad selector mode", "selector:\n  mode: random\n"},
		{"empty department", "results:\n  departments: [\"\"]\n"},
		{"malformed yaml", "selector: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			writeConfig(t, dir, tt.content)

			if _, err := Load(); err == nil {
				t.Error("Expected Load() to fail")
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "database:\n  path: /from/file.db\n")

	envFile := filepath.Join(dir, ".env")
	content := EnvDB + "=/from/dotenv.db\n" + EnvSelectorMode + "=arithmetic\n"
	if err := os.WriteFile(envFile, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}
	t.Setenv(EnvFile, envFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Database.Path != "/from/dotenv.db" {
		t.Errorf("Expected .env to override file path, got %s", cfg.Database.Path)
	}
	if cfg.Selector.Mode != "arithmetic" {
		t.Errorf("Expected .env selector mode, got %s", cfg.Selector.Mode)
	}

	// process environment wins over .env
	t.Setenv(EnvDB, "/from/env.db")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Database.Path != "/from/env.db" {
		t.Errorf("Expected environment to win, got %s", cfg.Database.Path)
	}
}

func TestEnvOverrideInvalidMode(t *testing.T) {
	isolate(t)
	t.Setenv(EnvSelectorMode, "lookup")

	if _, err := Load(); err == nil {
		t.Error("Expected invalid selector mode from environment to fail validation")
	}
}

func TestThemeFileLoading(t *testing.T) {
	dir := isolate(t)

	themeFile := filepath.Join(dir, "theme.yaml")
	themeContent := "theme:\n  accent: \"#FF0000\"\n  add: \"#00FF00\"\n  edit: \"#0000FF\"\n"
	if err := os.WriteFile(themeFile, []byte(themeContent), 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(EnvThemeFile, themeFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Add != "#00FF00" {
		t.Errorf("Expected add to be #00FF00, got %s", cfg.ColorScheme.Add)
	}
	if cfg.ColorScheme.ErrorFg == "" {
		t.Error("Expected error color to have default value")
	}
}

func TestSaveConfig(t *testing.T) {
	dir := isolate(t)

	cfg := &Config{
		Selector:    SelectorConfig{Mode: "arithmetic"},
		KeyMappings: KeyMappings{Quit: "x"},
	}
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(dir, "studentsync", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}
	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
	if cfg2.Selector.Mode != "arithmetic" {
		t.Errorf("Reloaded selector mode = %s, want arithmetic", cfg2.Selector.Mode)
	}
}
