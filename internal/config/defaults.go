package config

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8486,
			Host: "localhost",
		},
		Tool: ToolConfig{
			Strategy:            "sentence",
			IncludeErrorDetails: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Outputs: []string{"console"},
		},
	}
}
