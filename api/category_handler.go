package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/evelinalundqvist/portfolio-backend/content"
	"github.com/evelinalundqvist/portfolio-backend/database"
	"github.com/evelinalundqvist/portfolio-backend/errs"
	"github.com/evelinalundqvist/portfolio-backend/models"
	"github.com/evelinalundqvist/portfolio-backend/services"
)

type categoryHandler struct {
	responder    Responder
	logger       zerolog.Logger
	categoryRepo *database.CategoryRepo
	service      *services.CategoryService
}

func newCategoryHandler(categoryRepo *database.CategoryRepo, service *services.CategoryService) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		categoryRepo: categoryRepo,
		service:      service,
	}
}

// PublicCategory is a category with its name resolved for one language.
type PublicCategory struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	DisplayOrder int64  `json:"displayOrder"`
}

// getPublicCategories returns categories resolved for the requested language,
// in display order.
func (h categoryHandler) getPublicCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := content.ParseLanguage(r.URL.Query().Get("lang"))

		categories, err := h.categoryRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "categories", err))
			return
		}

		content.SortCategories(categories)

		resolved := make([]PublicCategory, 0, len(categories))
		for _, c := range categories {
			resolved = append(resolved, PublicCategory{
				ID:           c.ID,
				Name:         content.ResolveValue(lang, c.NameSV, c.NameEN, c.Name),
				Description:  c.Description,
				DisplayOrder: c.DisplayOrder,
			})
		}

		h.responder.WriteJSON(w, resolved)
	}
}

// getAllCategories returns raw category records for the admin editor.
func (h categoryHandler) getAllCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "categories", err))
			return
		}

		content.SortCategories(categories)
		h.responder.WriteJSON(w, categories)
	}
}

func (h categoryHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var category models.Category
		if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode category request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		created, err := h.service.Create(r.Context(), category)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

func (h categoryHandler) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := chi.URLParam(r, "categoryID")
		if categoryID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing categoryID"))
			return
		}

		var category models.Category
		if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode category request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		category.ID = categoryID

		updated, err := h.service.Update(r.Context(), category)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// moveCategory swaps the category with its neighbor and returns the full
// renumbered list. A move past either end is a no-op that still returns the
// current order.
func (h categoryHandler) moveCategory(dir content.Direction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := chi.URLParam(r, "categoryID")
		if categoryID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing categoryID"))
			return
		}

		reordered, moved, err := h.service.Move(r.Context(), categoryID, dir)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"moved":      moved,
			"categories": reordered,
		})
	}
}

func (h categoryHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := chi.URLParam(r, "categoryID")
		if categoryID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing categoryID"))
			return
		}

		if err := h.service.Delete(r.Context(), categoryID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "category deleted successfully",
		})
	}
}
