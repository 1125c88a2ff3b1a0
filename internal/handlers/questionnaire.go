package handlers

import (
	"encoding/json"
	"net/http"

	"fashionous/internal/catalog"
	"fashionous/internal/contextutil"
	"fashionous/internal/service"
)

// QuestionnaireHandler handles HTTP requests for form-driven recommendations.
type QuestionnaireHandler struct {
	recommend service.RecommendService
}

// NewQuestionnaireHandler creates a new QuestionnaireHandler.
func NewQuestionnaireHandler(recommend service.RecommendService) *QuestionnaireHandler {
	return &QuestionnaireHandler{recommend: recommend}
}

// QuestionnaireRequest represents the HTTP request payload: the answer map
// collected by the frontend, one entry per questionnaire step.
type QuestionnaireRequest struct {
	Criteria map[string]string `json:"criteria"`
}

// QuestionnaireResponse represents the HTTP response payload.
type QuestionnaireResponse struct {
	Results []catalog.Item `json:"results"`
}

// ServeHTTP handles HTTP requests for questionnaire recommendations.
func (h *QuestionnaireHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req QuestionnaireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	svcResp, err := h.recommend.Questionnaire(ctx, service.QuestionnaireRequest{Criteria: req.Criteria})
	if err != nil {
		logger.ErrorContext(ctx, "questionnaire recommendation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to process questionnaire")
		return
	}

	resp := QuestionnaireResponse{Results: svcResp.Results}
	if resp.Results == nil {
		resp.Results = []catalog.Item{}
	}
	writeJSON(ctx, w, resp)
}
