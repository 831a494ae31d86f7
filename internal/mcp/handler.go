// Package mcp exposes the tool registry over the Model Context Protocol,
// so MCP clients can call the same tools the discovery/execute HTTP
// surface serves.
package mcp

import (
	"net/http"

	"github.com/descware/descgen/internal/common"
	"github.com/descware/descgen/internal/config"
	"github.com/descware/descgen/internal/tool"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Handler is the HTTP handler for the MCP endpoint.
// It wraps mcp-go's StreamableHTTPServer and delegates to it.
type Handler struct {
	streamable *mcpserver.StreamableHTTPServer
	logger     *common.Logger
}

// NewHandler creates an MCP handler serving every tool in the registry.
func NewHandler(registry *tool.Registry, logger *common.Logger) *Handler {
	mcpSrv := mcpserver.NewMCPServer(
		"descgen",
		config.GetVersion(),
		mcpserver.WithToolCapabilities(true),
	)

	toolCount := RegisterTools(mcpSrv, registry)

	streamable := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithStateLess(true),
	)

	logger.Info().
		Int("tools", toolCount).
		Msg("MCP handler initialized")

	return &Handler{
		streamable: streamable,
		logger:     logger,
	}
}

// ServeHTTP delegates to the mcp-go StreamableHTTPServer.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.streamable.ServeHTTP(w, r)
}
