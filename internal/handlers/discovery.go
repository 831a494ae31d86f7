package handlers

import (
	"net/http"

	"github.com/descware/descgen/internal/common"
	"github.com/descware/descgen/internal/tool"
)

// DiscoveryHandler serves the static capability descriptors for every
// registered tool. The registry is immutable after startup, so repeated
// calls return byte-identical JSON.
type DiscoveryHandler struct {
	logger   *common.Logger
	registry *tool.Registry
}

// NewDiscoveryHandler creates a new discovery handler.
func NewDiscoveryHandler(logger *common.Logger, registry *tool.Registry) *DiscoveryHandler {
	return &DiscoveryHandler{logger: logger, registry: registry}
}

// discoveryResponse is the platform's discovery envelope.
type discoveryResponse struct {
	Functions []tool.Definition `json:"functions"`
}

// ServeHTTP handles GET /discovery.
func (h *DiscoveryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	WriteJSON(w, http.StatusOK, discoveryResponse{
		Functions: h.registry.Definitions(),
	})
}
