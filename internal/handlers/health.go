package handlers

import (
	"net/http"

	"github.com/descware/descgen/internal/common"
	"github.com/descware/descgen/internal/tool"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	logger   *common.Logger
	def      tool.Definition
	strategy string
}

// NewHealthHandler creates a new health handler reporting the served tool.
func NewHealthHandler(logger *common.Logger, def tool.Definition, strategy string) *HealthHandler {
	return &HealthHandler{logger: logger, def: def, strategy: strategy}
}

// ServeHTTP handles GET / and GET /api/health.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"status":   "healthy",
		"tool":     h.def.Name,
		"version":  h.def.Version,
		"strategy": h.strategy,
	})
}
