package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ndelacroix/chatline-be/internal/auth"
	"github.com/ndelacroix/chatline-be/internal/services"
	"github.com/rs/zerolog/log"
)

// ModerationHandler handles HTTP requests for moderation actions.
type ModerationHandler struct {
	service services.ModerationServiceProvider
}

// NewModerationHandler creates a new ModerationHandler.
func NewModerationHandler(service services.ModerationServiceProvider) *ModerationHandler {
	return &ModerationHandler{service: service}
}

// Ban marks the target user as banned. Admin callers only.
func (h *ModerationHandler) Ban(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "targetId")
	callerID := auth.CallerID(r)

	if err := h.service.BanUser(callerID, targetID); err != nil {
		log.Warn().Err(err).Str("target_id", targetID).Str("caller_id", callerID).Msg("Ban rejected")
		respondError(w, err)
		return
	}

	log.Info().Str("target_id", targetID).Str("caller_id", callerID).Msg("User banned")
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
