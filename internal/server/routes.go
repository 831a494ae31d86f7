package server

import "net/http"

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Tool protocol: health on GET, execute on POST
	mux.HandleFunc("/", s.handleRoot)

	// Discovery endpoint (static capability descriptor)
	mux.HandleFunc("/discovery", s.app.DiscoveryHandler.ServeHTTP)

	// MCP endpoint (JSON-RPC over HTTP)
	if s.app.MCPHandler != nil {
		mux.Handle("/mcp", s.app.MCPHandler)
	}

	// API routes
	mux.HandleFunc("/api/health", s.app.HealthHandler.ServeHTTP)
	mux.HandleFunc("/api/version", s.app.VersionHandler.ServeHTTP)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.handleNotFound)

	return mux
}

// handleRoot serves the tool protocol root: GET is the health check, POST
// the execute call. Paths other than "/" fall through to a JSON 404.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.handleNotFound(w, r)
		return
	}
	RouteByMethod(w, r, MethodRouter{
		"GET":  s.app.HealthHandler.ServeHTTP,
		"HEAD": s.app.HealthHandler.ServeHTTP,
		"POST": s.app.ExecuteHandler.ServeHTTP,
	})
}

// handleNotFound returns a JSON 404 for unmatched routes.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not Found","message":"The requested endpoint does not exist"}`))
}
