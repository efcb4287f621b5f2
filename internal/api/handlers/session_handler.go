package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ndelacroix/chatline-be/internal/services"
	"github.com/rs/zerolog/log"
)

// SessionHandler handles HTTP requests for the login protocol.
type SessionHandler struct {
	service services.UserServiceProvider
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(service services.UserServiceProvider) *SessionHandler {
	return &SessionHandler{service: service}
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	DisplayName string `json:"displayName"`
	ExistingID  string `json:"existingId,omitempty"`
}

// Login registers a new identity or re-validates a returning one.
// New identities answer 201, returning ones 200.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	payload.DisplayName = strings.TrimSpace(payload.DisplayName)
	if payload.DisplayName == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "display name is required"})
		return
	}

	identity, created, err := h.service.Login(payload.DisplayName, payload.ExistingID)
	if err != nil {
		log.Warn().Err(err).Str("display_name", payload.DisplayName).Msg("Login rejected")
		respondError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		log.Info().Str("user_id", identity.ID).Str("display_name", identity.DisplayName).Msg("Registered new user")
	}
	respondJSON(w, status, identity)
}
