package handlers

import (
	"net/http"

	"github.com/ndelacroix/chatline-be/internal/services"
	"github.com/rs/zerolog/log"
)

// PresenceHandler handles HTTP requests for presence and stats.
type PresenceHandler struct {
	service services.PresenceServiceProvider
}

// NewPresenceHandler creates a new PresenceHandler.
func NewPresenceHandler(service services.PresenceServiceProvider) *PresenceHandler {
	return &PresenceHandler{service: service}
}

// Online lists the users currently considered online.
func (h *PresenceHandler) Online(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetOnlineUsers()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list online users")
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// Stats returns the total and online user counts.
func (h *PresenceHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats()
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute stats")
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
