package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/ndelacroix/chatline-be/internal/auth"
	"github.com/ndelacroix/chatline-be/internal/services"
	"github.com/rs/zerolog/log"
)

// MessageHandler handles HTTP requests for messages.
type MessageHandler struct {
	service services.MessageServiceProvider
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service services.MessageServiceProvider) *MessageHandler {
	return &MessageHandler{service: service}
}

// PostPayload defines the structure for posting a message.
type PostPayload struct {
	Content  string `json:"content"`
	ParentID *int64 `json:"parentId,omitempty"`
}

// EditPayload defines the structure for editing a message.
type EditPayload struct {
	Content string `json:"content"`
}

// List returns all messages in display order. No identity required.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.ListMessages()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list messages")
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messages)
}

// Create posts a new message authored by the caller.
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	// Content validation lives here, not in the store.
	if strings.TrimSpace(payload.Content) == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "content must not be empty"})
		return
	}

	msg, err := h.service.PostMessage(auth.CallerID(r), payload.Content, payload.ParentID)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to post message")
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, msg)
}

// Edit overwrites a message's content, authorization permitting.
func (h *MessageHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid message id"})
		return
	}

	var payload EditPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(payload.Content) == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "content must not be empty"})
		return
	}

	if err := h.service.EditMessage(auth.CallerID(r), id, payload.Content); err != nil {
		log.Warn().Err(err).Int64("message_id", id).Msg("Failed to edit message")
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Delete permanently removes a message. Admin only.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid message id"})
		return
	}

	if err := h.service.DeleteMessage(auth.CallerID(r), id); err != nil {
		log.Warn().Err(err).Int64("message_id", id).Msg("Failed to delete message")
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
