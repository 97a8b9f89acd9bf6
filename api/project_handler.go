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

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	service     *services.ProjectService
}

func newProjectHandler(projectRepo *database.ProjectRepo, service *services.ProjectService) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		service:     service,
	}
}

// PublicProject is a project with its bilingual fields resolved for one
// language. Failed media uploads are filtered out of the public view.
type PublicProject struct {
	ID           string                   `json:"id"`
	Title        string                   `json:"title"`
	Description  string                   `json:"description"`
	CategoryID   string                   `json:"categoryId"`
	Technologies []string                 `json:"technologies"`
	Media        []models.MediaDescriptor `json:"media"`
	GithubURL    string                   `json:"githubUrl,omitempty"`
	LiveURL      string                   `json:"liveUrl,omitempty"`
	DisplayOrder int64                    `json:"displayOrder"`
}

func resolveProject(p models.Project, lang content.Language) PublicProject {
	media := make([]models.MediaDescriptor, 0, len(p.Media))
	for _, m := range p.Media {
		if m.Failed() {
			continue
		}
		media = append(media, m)
	}

	return PublicProject{
		ID:           p.ID,
		Title:        content.ResolveValue(lang, p.TitleSV, p.TitleEN, p.Title),
		Description:  content.ResolveValue(lang, p.DescriptionSV, p.DescriptionEN, p.Description),
		CategoryID:   p.CategoryID,
		Technologies: p.Technologies,
		Media:        media,
		GithubURL:    p.GithubURL,
		LiveURL:      p.LiveURL,
		DisplayOrder: p.DisplayOrder,
	}
}

// getPublicProjects returns all projects resolved for the requested language,
// newest-created first.
func (h projectHandler) getPublicProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := content.ParseLanguage(r.URL.Query().Get("lang"))

		projects, err := h.projectRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		content.SortProjects(projects)

		resolved := make([]PublicProject, 0, len(projects))
		for _, p := range projects {
			resolved = append(resolved, resolveProject(p, lang))
		}

		h.responder.WriteJSON(w, resolved)
	}
}

// getAllProjects returns raw project records for the admin editor, including
// both language variants and failed media descriptors.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		content.SortProjects(projects)
		h.responder.WriteJSON(w, projects)
	}
}

func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		created, err := h.service.Save(r.Context(), project, false)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		// Path wins over any id in the body
		project.ID = projectID

		updated, err := h.service.Save(r.Context(), project, true)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		if err := h.service.Delete(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}
