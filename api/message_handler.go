package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/evelinalundqvist/portfolio-backend/errs"
	"github.com/evelinalundqvist/portfolio-backend/models"
	"github.com/evelinalundqvist/portfolio-backend/services"
)

// messageStore is what the handler needs from the message repository.
type messageStore interface {
	FindAll(ctx context.Context) ([]models.Message, error)
	Add(ctx context.Context, m *models.Message) error
	MarkRead(ctx context.Context, id string, read bool) error
	Delete(ctx context.Context, id string) error
}

type messageHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     messageStore
	notify    func(models.Message) error
}

func newMessageHandler(store messageStore, config map[string]string) messageHandler {
	logger := log.With().Str("handlerName", "messageHandler").Logger()

	return messageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		notify: func(m models.Message) error {
			return services.NotifyNewMessage(config, m)
		},
	}
}

// createMessage accepts a contact-form submission from the public site and
// fires the admin notification email. Notification failure never fails the
// save.
func (h messageHandler) createMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var message models.Message
		if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode message request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		message.Name = strings.TrimSpace(message.Name)
		message.Email = strings.TrimSpace(message.Email)
		message.Message = strings.TrimSpace(message.Message)

		if message.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if message.Email == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}
		if message.Message == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}

		// Public submissions never arrive pre-read
		message.Read = false
		message.CreatedAt = time.Now().UTC()

		if err := h.store.Add(r.Context(), &message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "message", err))
			return
		}

		if err := h.notify(message); err != nil {
			h.logger.Error().Err(err).Str("messageID", message.ID).Msg("Failed to send new-message notification")
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, message)
	}
}

func (h messageHandler) getAllMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.store.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "messages", err))
			return
		}

		h.responder.WriteJSON(w, messages)
	}
}

// markMessageRead flips the read flag. The flag only ever changes through
// this explicit action.
func (h messageHandler) markMessageRead() http.HandlerFunc {
	type request struct {
		Read bool `json:"read"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		messageID := chi.URLParam(r, "messageID")
		if messageID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing messageID"))
			return
		}

		// Missing body defaults to marking as read
		req := request{Read: true}
		if r.Body != nil && r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
				return
			}
		}

		if err := h.store.MarkRead(r.Context(), messageID, req.Read); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "message", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status": "success",
			"read":   req.Read,
		})
	}
}

func (h messageHandler) deleteMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID := chi.URLParam(r, "messageID")
		if messageID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing messageID"))
			return
		}

		if err := h.store.Delete(r.Context(), messageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "message", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "message deleted successfully",
		})
	}
}

// deleteMessages removes a batch of messages by id. Deletes already applied
// before a failure stay applied.
func (h messageHandler) deleteMessages() http.HandlerFunc {
	type request struct {
		IDs []string `json:"ids"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if len(req.IDs) == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("ids"))
			return
		}

		deleted := make([]string, 0, len(req.IDs))
		for _, id := range req.IDs {
			if err := h.store.Delete(r.Context(), id); err != nil {
				h.logger.Error().Err(err).Str("messageID", id).Msg("Failed to delete message")
				h.responder.WriteError(w, wrapDatabaseError("delete", "messages", err))
				return
			}
			deleted = append(deleted, id)
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":  "success",
			"deleted": deleted,
		})
	}
}
