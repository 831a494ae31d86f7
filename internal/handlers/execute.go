package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/descware/descgen/internal/common"
	"github.com/descware/descgen/internal/describe"
	"github.com/descware/descgen/internal/tool"
)

// ExecuteHandler runs the description tool for POST requests. All errors
// are converted to the structured envelope here; nothing propagates as a
// non-JSON response.
type ExecuteHandler struct {
	logger         *common.Logger
	tool           tool.Tool
	includeDetails bool
}

// NewExecuteHandler creates a new execute handler. includeDetails controls
// whether error responses carry the diagnostic details field.
func NewExecuteHandler(logger *common.Logger, t tool.Tool, includeDetails bool) *ExecuteHandler {
	return &ExecuteHandler{logger: logger, tool: t, includeDetails: includeDetails}
}

// ServeHTTP handles POST /.
func (h *ExecuteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request format", "failed to read request body")
		return
	}

	params, err := tool.ExtractParams(body)
	if err != nil {
		var merr *tool.MalformedRequestError
		if errors.As(err, &merr) {
			h.writeError(w, http.StatusBadRequest, "Invalid request format", merr.Reason)
			return
		}
		h.writeError(w, http.StatusBadRequest, "Invalid request format", "")
		return
	}

	result, err := h.tool.Execute(params)
	if err != nil {
		var verr *describe.ValidationError
		if errors.As(err, &verr) {
			h.writeError(w, http.StatusBadRequest, "Missing required parameters", verr.Error())
			return
		}

		h.logger.Error().Str("error", err.Error()).Msg("description synthesis failed")
		h.writeError(w, http.StatusInternalServerError, "Failed to generate description", "")
		return
	}

	WriteJSON(w, http.StatusOK, tool.SuccessResponse(h.tool.Definition(), result))
}

func (h *ExecuteHandler) writeError(w http.ResponseWriter, status int, message, details string) {
	if !h.includeDetails {
		details = ""
	}
	WriteJSON(w, status, tool.ErrorResponse(message, details))
}
