package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/medroute/hospital-finder/internal/application/services"
	"github.com/medroute/hospital-finder/internal/chat"
	"github.com/medroute/hospital-finder/internal/infrastructure/observability"
)

// ChatHandler handles chatbot requests
type ChatHandler struct {
	responder *chat.Responder
	sessions  *services.SessionService
}

// NewChatHandler creates a new chat handler. The session service is
// optional; without it replies carry no triage context.
func NewChatHandler(responder *chat.Responder, sessions *services.SessionService) *ChatHandler {
	return &ChatHandler{
		responder: responder,
		sessions:  sessions,
	}
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// Chat handles POST /api/chatbot. When the request names a session with
// a stored triage snapshot, the last analysis is echoed back so the
// client can keep the conversation anchored to it.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Message == "" {
		respondWithError(w, http.StatusBadRequest, "message is required")
		return
	}

	payload := map[string]interface{}{
		"success":  true,
		"response": h.responder.Respond(req.Message),
	}

	if h.sessions != nil && req.SessionID != "" {
		snapshot, err := h.sessions.Get(r.Context(), req.SessionID)
		if err != nil {
			observability.LoggerFromContext(r.Context()).Warn().Err(err).Str("session_id", req.SessionID).Msg("failed to load session snapshot")
		} else if snapshot != nil {
			payload["last_analysis"] = snapshot.Analysis
		}
	}

	respondWithJSON(w, http.StatusOK, payload)
}
