package handlers

import (
	"encoding/json"
	"net/http"

	"fashionous/internal/catalog"
	"fashionous/internal/contextutil"
	"fashionous/internal/service"
)

// ChatHandler handles HTTP requests for chat recommendations.
type ChatHandler struct {
	recommend service.RecommendService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(recommend service.RecommendService) *ChatHandler {
	return &ChatHandler{recommend: recommend}
}

// ChatRequest represents the HTTP request payload for chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse represents the HTTP response payload for chat. Message is
// present only when no items matched.
type ChatResponse struct {
	Results []catalog.Item `json:"results"`
	Message string         `json:"message,omitempty"`
}

// ServeHTTP handles HTTP requests for chat recommendations.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	svcResp, err := h.recommend.Chat(ctx, service.ChatRequest{Message: req.Message})
	if err != nil {
		logger.ErrorContext(ctx, "chat recommendation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to process chat request")
		return
	}

	resp := ChatResponse{
		Results: svcResp.Results,
		Message: svcResp.Message,
	}
	if resp.Results == nil {
		resp.Results = []catalog.Item{}
	}
	writeJSON(ctx, w, resp)
}
