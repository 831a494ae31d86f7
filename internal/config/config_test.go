package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Server.Port != 8486 {
		t.Errorf("expected default port 8486, got %d", cfg.Server.Port)
	}
	if cfg.Tool.Strategy != "sentence" {
		t.Errorf("expected default strategy sentence, got %q", cfg.Tool.Strategy)
	}
	if !cfg.Tool.IncludeErrorDetails {
		t.Error("expected error details enabled by default")
	}
}

func TestLoadFromFiles_NoPathsReturnsDefaults(t *testing.T) {
	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8486 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadFromFiles_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "descgen.toml")
	content := "[server]\nport = 9000\n\n[tool]\nstrategy = \"report\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFiles(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Tool.Strategy != "report" {
		t.Errorf("expected strategy report, got %q", cfg.Tool.Strategy)
	}
	// Untouched sections keep defaults
	if cfg.Server.Host != "localhost" {
		t.Errorf("expected default host, got %q", cfg.Server.Host)
	}
}

func TestLoadFromFiles_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.toml")
	second := filepath.Join(dir, "second.toml")
	os.WriteFile(first, []byte("[server]\nport = 9000\n"), 0o644)
	os.WriteFile(second, []byte("[server]\nport = 9100\n"), 0o644)

	cfg, err := LoadFromFiles(first, second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("expected later file to win, got port %d", cfg.Server.Port)
	}
}

func TestLoadFromFiles_MissingFileFails(t *testing.T) {
	if _, err := LoadFromFiles("/nonexistent/descgen.toml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DESCGEN_SERVER_PORT", "9999")
	t.Setenv("DESCGEN_TOOL_STRATEGY", "summary")

	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("expected env port override, got %d", cfg.Server.Port)
	}
	if cfg.Tool.Strategy != "summary" {
		t.Errorf("expected env strategy override, got %q", cfg.Tool.Strategy)
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := NewDefaultConfig()

	ApplyFlagOverrides(cfg, 7000, "0.0.0.0")
	if cfg.Server.Port != 7000 || cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected flag overrides applied, got %s:%d", cfg.Server.Host, cfg.Server.Port)
	}

	ApplyFlagOverrides(cfg, 0, "")
	if cfg.Server.Port != 7000 || cfg.Server.Host != "0.0.0.0" {
		t.Error("expected zero-value flags to leave config untouched")
	}
}

func TestValidate(t *testing.T) {
	cfg := NewDefaultConfig()
	if issues := cfg.Validate(); len(issues) != 0 {
		t.Errorf("expected default config valid, got %v", issues)
	}

	cfg.Server.Port = 0
	cfg.Tool.Strategy = "novel"
	issues := cfg.Validate()
	if len(issues) != 2 {
		t.Errorf("expected 2 issues, got %v", issues)
	}
}
