package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/evelinalundqvist/portfolio-backend/content"
	"github.com/evelinalundqvist/portfolio-backend/database"
	"github.com/evelinalundqvist/portfolio-backend/errs"
	"github.com/evelinalundqvist/portfolio-backend/models"
)

type siteContentHandler struct {
	responder       Responder
	logger          zerolog.Logger
	siteContentRepo *database.SiteContentRepo
}

func newSiteContentHandler(siteContentRepo *database.SiteContentRepo) siteContentHandler {
	logger := log.With().Str("handlerName", "siteContentHandler").Logger()

	return siteContentHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		siteContentRepo: siteContentRepo,
	}
}

// PublicSettings is the settings singleton resolved for one language.
type PublicSettings struct {
	AccentColor string `json:"accentColor"`
	SiteTitle   string `json:"siteTitle"`
	HeroTagline string `json:"heroTagline"`
	GithubURL   string `json:"githubUrl,omitempty"`
	LinkedinURL string `json:"linkedinUrl,omitempty"`
	Email       string `json:"email,omitempty"`
}

// PublicAbout is the about singleton resolved for one language. Skills is
// derived from the stored raw string on every read.
type PublicAbout struct {
	Body        string   `json:"body"`
	Skills      []string `json:"skills"`
	PortraitURL string   `json:"portraitUrl,omitempty"`
}

func (h siteContentHandler) getPublicSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := content.ParseLanguage(r.URL.Query().Get("lang"))

		settings, err := h.siteContentRepo.GetSettings(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "settings", err))
			return
		}

		h.responder.WriteJSON(w, PublicSettings{
			AccentColor: settings.AccentColor,
			SiteTitle:   content.ResolveValue(lang, settings.SiteTitleSV, settings.SiteTitleEN, ""),
			HeroTagline: content.ResolveValue(lang, settings.HeroTaglineSV, settings.HeroTaglineEN, settings.HeroTagline),
			GithubURL:   settings.GithubURL,
			LinkedinURL: settings.LinkedinURL,
			Email:       settings.Email,
		})
	}
}

// getSettings returns the raw singleton for the admin editor.
func (h siteContentHandler) getSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := h.siteContentRepo.GetSettings(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "settings", err))
			return
		}

		h.responder.WriteJSON(w, settings)
	}
}

func (h siteContentHandler) updateSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings models.SiteSettings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode settings request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		settings.UpdatedAt = time.Now().UTC()

		if err := h.siteContentRepo.SaveSettings(r.Context(), settings); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "settings", err))
			return
		}

		h.responder.WriteJSON(w, settings)
	}
}

func (h siteContentHandler) getPublicAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := content.ParseLanguage(r.URL.Query().Get("lang"))

		about, err := h.siteContentRepo.GetAbout(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "about", err))
			return
		}

		h.responder.WriteJSON(w, PublicAbout{
			Body:        content.ResolveValue(lang, about.BodySV, about.BodyEN, about.Body),
			Skills:      content.SplitTags(about.SkillsRaw),
			PortraitURL: about.PortraitURL,
		})
	}
}

// getAbout returns the raw singleton, skills as the stored comma-separated
// string, for the admin editor.
func (h siteContentHandler) getAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		about, err := h.siteContentRepo.GetAbout(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "about", err))
			return
		}

		h.responder.WriteJSON(w, about)
	}
}

func (h siteContentHandler) updateAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var about models.About
		if err := json.NewDecoder(r.Body).Decode(&about); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode about request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		about.UpdatedAt = time.Now().UTC()

		if err := h.siteContentRepo.SaveAbout(r.Context(), about); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "about", err))
			return
		}

		h.responder.WriteJSON(w, about)
	}
}
