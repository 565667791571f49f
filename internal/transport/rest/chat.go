package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/finchat/finchat-backend/internal/domain"
	"github.com/finchat/finchat-backend/internal/service/chat"
)

// chatService defines the minimal interface needed by ChatHandler.
type chatService interface {
	SendMessage(ctx context.Context, input chat.SendMessageInput) (*chat.SendMessageResult, error)
}

// ChatHandler serves the chat endpoint.
type ChatHandler struct {
	svc chatService
	log *slog.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(svc chatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, log: logger.With("handler", "chat")}
}

type sendMessageRequest struct {
	Message string `json:"message"`
}

type sendMessageResponse struct {
	Response string `json:"response"`
	Intent   string `json:"intent"`
}

// SendMessage handles POST /api/chat/message.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.SendMessage(r.Context(), chat.SendMessageInput{Message: req.Message})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sendMessageResponse{
		Response: result.Response,
		Intent:   result.Intent.String(),
	})
}

func (h *ChatHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, chat.ErrProcessing):
		// Cause already logged by the service; clients get the fixed message.
		writeError(w, http.StatusInternalServerError, chat.ErrProcessing.Error())
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
