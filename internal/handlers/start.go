package handlers

import (
	"encoding/json"
	"net/http"

	"fashionous/internal/contextutil"
)

// Question is one step of the questionnaire flow.
type Question struct {
	Key    string `json:"key"`
	Prompt string `json:"q"`
}

// QuestionFlow is the fixed four-step questionnaire, in presentation order.
var QuestionFlow = []Question{
	{Key: "fabric", Prompt: "What fabric do you prefer? (e.g., silk, cotton, georgette)"},
	{Key: "occasion", Prompt: "Is this for a specific occasion? (e.g., wedding, party, office)"},
	{Key: "neckline", Prompt: "Any preferred neckline style? (e.g., v-neck, boat neck, sweetheart)"},
	{Key: "sleeve", Prompt: "What sleeve style do you like? (e.g., sleeveless, full sleeve, cap sleeve)"},
}

// chatGreeting is the chat-mode bootstrap message.
const chatGreeting = "You can start chatting or use voice input. Describe your ideal blouse!"

// StartHandler bootstraps a conversation in either mode. The server keeps no
// session state; the frontend drives the flow from this first response.
type StartHandler struct{}

// NewStartHandler creates a new StartHandler.
func NewStartHandler() *StartHandler {
	return &StartHandler{}
}

// StartRequest represents the HTTP request payload for conversation start.
type StartRequest struct {
	Mode string `json:"mode"`
}

// StartResponse carries the first question (questionnaire mode) or the chat
// greeting (any other mode).
type StartResponse struct {
	Question string `json:"question,omitempty"`
	Message  string `json:"message,omitempty"`
}

// ServeHTTP handles HTTP requests for conversation start.
func (h *StartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var resp StartResponse
	if req.Mode == "questionnaire" {
		resp.Question = QuestionFlow[0].Prompt
	} else {
		resp.Message = chatGreeting
	}
	logger.InfoContext(ctx, "conversation started", "mode", req.Mode)
	writeJSON(ctx, w, resp)
}
