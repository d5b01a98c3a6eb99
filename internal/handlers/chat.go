package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"companion-backend/internal/middleware"
	"companion-backend/internal/models"
)

const genericChatError = "Sorry, something went wrong. Please try again."

// companion produces a reply for a message. It never fails; errors are
// turned into a fallback reply by the implementation.
type companion interface {
	Reply(ctx context.Context, message string, history []models.Exchange) string
}

type ChatHandler struct {
	companion companion
}

func NewChatHandler(c companion) *ChatHandler {
	return &ChatHandler{companion: c}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("Chat endpoint error [%s]: %v", middleware.GetRequestID(r.Context()), rec)
			writeJSON(w, http.StatusInternalServerError, errorResp(genericChatError))
		}
	}()

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Empty message"})
		return
	}

	history := req.History
	if history == nil {
		history = []models.Exchange{}
	}

	reply := h.companion.Reply(r.Context(), message, history)

	writeJSON(w, http.StatusOK, models.ChatResponse{
		Response: reply,
		Status:   models.StatusSuccess,
	})
}
