package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/evelinalundqvist/portfolio-backend/database"
	"github.com/evelinalundqvist/portfolio-backend/errs"
	"github.com/evelinalundqvist/portfolio-backend/models"
)

type reviewHandler struct {
	responder  Responder
	logger     zerolog.Logger
	reviewRepo *database.ReviewRepo
}

func newReviewHandler(reviewRepo *database.ReviewRepo) reviewHandler {
	logger := log.With().Str("handlerName", "reviewHandler").Logger()

	return reviewHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		reviewRepo: reviewRepo,
	}
}

// createReview accepts a visitor review. New reviews always start
// unapproved; only an explicit admin action publishes them.
func (h reviewHandler) createReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var review models.Review
		if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode review request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		review.Name = strings.TrimSpace(review.Name)
		review.Review = strings.TrimSpace(review.Review)

		if review.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if review.Review == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("review"))
			return
		}
		if review.Rating < 1 || review.Rating > 5 {
			h.responder.WriteError(w, errs.NewInvalidFieldError("rating", "must be between 1 and 5"))
			return
		}

		review.Approved = false
		review.CreatedAt = time.Now().UTC()

		if err := h.reviewRepo.Add(r.Context(), &review); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "review", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, review)
	}
}

// getApprovedReviews serves the public carousel: approved only, newest first.
func (h reviewHandler) getApprovedReviews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviews, err := h.reviewRepo.FindApproved(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "reviews", err))
			return
		}

		h.responder.WriteJSON(w, reviews)
	}
}

func (h reviewHandler) getAllReviews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviews, err := h.reviewRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "reviews", err))
			return
		}

		h.responder.WriteJSON(w, reviews)
	}
}

func (h reviewHandler) setReviewApproval() http.HandlerFunc {
	type request struct {
		Approved bool `json:"approved"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		reviewID := chi.URLParam(r, "reviewID")
		if reviewID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing reviewID"))
			return
		}

		// Missing body defaults to approving
		req := request{Approved: true}
		if r.Body != nil && r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
				return
			}
		}

		if err := h.reviewRepo.SetApproved(r.Context(), reviewID, req.Approved); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "review", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":   "success",
			"approved": req.Approved,
		})
	}
}

func (h reviewHandler) deleteReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviewID := chi.URLParam(r, "reviewID")
		if reviewID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing reviewID"))
			return
		}

		if err := h.reviewRepo.Delete(r.Context(), reviewID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "review", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "review deleted successfully",
		})
	}
}
