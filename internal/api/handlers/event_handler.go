package handlers

import (
	"fmt"
	"net/http"

	"github.com/ndelacroix/chatline-be/internal/auth"
	"github.com/ndelacroix/chatline-be/internal/models"
	"github.com/ndelacroix/chatline-be/internal/services"
	"github.com/rs/zerolog/log"
)

// EventHandler handles HTTP requests for the moderation event log.
type EventHandler struct {
	service services.EventServiceProvider
	userSvc services.UserServiceProvider
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(service services.EventServiceProvider, userSvc services.UserServiceProvider) *EventHandler {
	return &EventHandler{service: service, userSvc: userSvc}
}

// GetRecent returns the latest events. Admin callers only.
func (h *EventHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	caller, err := h.userSvc.GetUserByID(auth.CallerID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	if caller.Role != models.RoleAdmin {
		respondError(w, fmt.Errorf("only admins may read events: %w", services.ErrForbidden))
		return
	}

	events, err := h.service.GetRecentEvents(50)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch events")
		respondError(w, err)
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	respondJSON(w, http.StatusOK, events)
}
