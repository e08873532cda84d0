package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"helpdesk-ai/internal/contextutil"
	"helpdesk-ai/internal/service"
)

// ChatHandler handles HTTP requests for chat.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// ChatRequest represents the HTTP request payload for chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse represents the HTTP response payload for chat.
// Greeting and refusal replies carry only the response field; answered
// questions include the retrieval metadata as well.
type ChatResponse struct {
	Response        string   `json:"response"`
	FollowUps       []string `json:"followups,omitempty"`
	Confidence      string   `json:"confidence,omitempty"`
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`
	Explanations    []string `json:"explanations,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServeHTTP handles HTTP requests for chat.
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

	svcReq := service.ChatRequest{
		Message: req.Message,
	}

	svcResp, err := h.chatService.ProcessChat(ctx, svcReq)
	if err != nil {
		logger.ErrorContext(ctx, "chat processing failed", "error", err)

		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error()))
			return
		}

		// Pipeline failures surface in-band so callers always get a
		// chat-shaped reply.
		writeJSON(w, http.StatusOK, ChatResponse{
			Response: fmt.Sprintf("Error processing your request: %s", err.Error()),
		})
		return
	}

	resp := ChatResponse{
		Response: svcResp.Reply,
	}
	if svcResp.Confidence != "" {
		score := svcResp.ConfidenceScore
		resp.FollowUps = svcResp.FollowUps
		resp.Confidence = string(svcResp.Confidence)
		resp.ConfidenceScore = &score
		resp.Explanations = svcResp.Categories
	}

	writeJSON(w, http.StatusOK, resp)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{
		Error: message,
	})
}
