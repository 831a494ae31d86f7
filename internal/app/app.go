// Package app wires configuration, logging and the tool registry into the
// handlers the HTTP server mounts.
package app

import (
	"fmt"

	"github.com/descware/descgen/internal/common"
	"github.com/descware/descgen/internal/config"
	"github.com/descware/descgen/internal/describe"
	"github.com/descware/descgen/internal/handlers"
	"github.com/descware/descgen/internal/mcp"
	"github.com/descware/descgen/internal/tool"
)

// App holds all application components and dependencies.
type App struct {
	Config   *config.Config
	Logger   *common.Logger
	Registry *tool.Registry

	// HTTP handlers
	HealthHandler    *handlers.HealthHandler
	VersionHandler   *handlers.VersionHandler
	DiscoveryHandler *handlers.DiscoveryHandler
	ExecuteHandler   *handlers.ExecuteHandler
	MCPHandler       *mcp.Handler
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	strategy, err := describe.StrategyByName(cfg.Tool.Strategy)
	if err != nil {
		return nil, fmt.Errorf("invalid tool configuration: %w", err)
	}

	descTool := tool.NewDescriptionTool(describe.New(strategy), config.GetVersion())

	registry, err := tool.NewRegistry(descTool)
	if err != nil {
		return nil, fmt.Errorf("failed to build tool registry: %w", err)
	}
	a.Registry = registry

	a.HealthHandler = handlers.NewHealthHandler(logger, descTool.Definition(), strategy.Name())
	a.VersionHandler = handlers.NewVersionHandler(logger)
	a.DiscoveryHandler = handlers.NewDiscoveryHandler(logger, registry)
	a.ExecuteHandler = handlers.NewExecuteHandler(logger, descTool, cfg.Tool.IncludeErrorDetails)
	a.MCPHandler = mcp.NewHandler(registry, logger)

	logger.Info().
		Str("strategy", strategy.Name()).
		Int("tools", len(registry.List())).
		Msg("application initialization complete")

	return a, nil
}
