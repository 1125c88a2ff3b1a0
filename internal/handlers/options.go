package handlers

import (
	"net/http"

	"fashionous/internal/contextutil"
	"fashionous/internal/service"
)

// OptionsHandler serves the questionnaire option lists: the distinct catalog
// values per attribute, sorted, for the selection UI.
type OptionsHandler struct {
	recommend service.RecommendService
}

// NewOptionsHandler creates a new OptionsHandler.
func NewOptionsHandler(recommend service.RecommendService) *OptionsHandler {
	return &OptionsHandler{recommend: recommend}
}

// ServeHTTP handles HTTP requests for questionnaire options.
func (h *OptionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	resp, err := h.recommend.Options(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to collect options", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to collect options")
		return
	}
	writeJSON(ctx, w, resp)
}
