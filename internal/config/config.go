package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Tool    ToolConfig    `toml:"tool"`
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// ToolConfig selects how the description tool behaves.
type ToolConfig struct {
	// Strategy picks the synthesis algorithm for this process:
	// "sentence", "report" or "summary".
	Strategy string `toml:"strategy"`
	// IncludeErrorDetails controls whether error responses carry the
	// diagnostic details field. Defaults on; set false for
	// production-style deployments.
	IncludeErrorDetails bool `toml:"include_error_details"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies DESCGEN_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("DESCGEN_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("DESCGEN_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if strategy := os.Getenv("DESCGEN_TOOL_STRATEGY"); strategy != "" {
		config.Tool.Strategy = strategy
	}
	if level := os.Getenv("DESCGEN_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate checks mandatory configuration and returns a list of issues.
func (c *Config) Validate() []string {
	var issues []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		issues = append(issues, fmt.Sprintf("server.port must be between 1 and 65535 (got %d)", c.Server.Port))
	}

	switch strings.ToLower(strings.TrimSpace(c.Tool.Strategy)) {
	case "", "sentence", "report", "summary":
	default:
		issues = append(issues, fmt.Sprintf("tool.strategy must be sentence, report or summary (got %q)", c.Tool.Strategy))
	}

	return issues
}
