package database

import (
	"context"
	"errors"

	"github.com/evelinalundqvist/portfolio-backend/errs"
	"github.com/evelinalundqvist/portfolio-backend/models"
)

const (
	siteContentCollection = "site_content"
	settingsKey           = "settings"
	aboutKey              = "about"
)

// SiteContentRepo owns the two singleton documents: site settings and the
// about page.
type SiteContentRepo struct {
	store DocStore
}

func NewSiteContentRepo(store DocStore) *SiteContentRepo {
	return &SiteContentRepo{store}
}

// GetSettings returns the settings singleton, or sensible defaults when the
// document has never been saved.
func (r *SiteContentRepo) GetSettings(ctx context.Context) (models.SiteSettings, error) {
	doc, err := r.store.GetSingleton(ctx, siteContentCollection, settingsKey)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return defaultSettings(), nil
		}
		return models.SiteSettings{}, err
	}

	return models.SiteSettings{
		AccentColor:   docString(doc.Data, "accentColor"),
		SiteTitleSV:   docString(doc.Data, "siteTitle_sv"),
		SiteTitleEN:   docString(doc.Data, "siteTitle_en"),
		HeroTaglineSV: docString(doc.Data, "heroTagline_sv"),
		HeroTaglineEN: docString(doc.Data, "heroTagline_en"),
		HeroTagline:   docString(doc.Data, "heroTagline"),
		GithubURL:     docString(doc.Data, "githubUrl"),
		LinkedinURL:   docString(doc.Data, "linkedinUrl"),
		Email:         docString(doc.Data, "email"),
		UpdatedAt:     docTime(doc.Data, "updatedAt"),
	}, nil
}

// SaveSettings overwrites the settings singleton. This is the single update
// entry point for site-wide presentation parameters. The record is written
// exactly as given; the caller owns the UpdatedAt stamp.
func (r *SiteContentRepo) SaveSettings(ctx context.Context, s models.SiteSettings) error {
	return r.store.Set(ctx, siteContentCollection, settingsKey, map[string]any{
		"accentColor":    s.AccentColor,
		"siteTitle_sv":   s.SiteTitleSV,
		"siteTitle_en":   s.SiteTitleEN,
		"heroTagline_sv": s.HeroTaglineSV,
		"heroTagline_en": s.HeroTaglineEN,
		"heroTagline":    s.HeroTagline,
		"githubUrl":      s.GithubURL,
		"linkedinUrl":    s.LinkedinURL,
		"email":          s.Email,
		"updatedAt":      s.UpdatedAt,
	})
}

func (r *SiteContentRepo) GetAbout(ctx context.Context) (models.About, error) {
	doc, err := r.store.GetSingleton(ctx, siteContentCollection, aboutKey)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return models.About{}, nil
		}
		return models.About{}, err
	}

	return models.About{
		BodySV:      docString(doc.Data, "body_sv"),
		BodyEN:      docString(doc.Data, "body_en"),
		Body:        docString(doc.Data, "body"),
		SkillsRaw:   docString(doc.Data, "skills"),
		PortraitURL: docString(doc.Data, "portraitUrl"),
		UpdatedAt:   docTime(doc.Data, "updatedAt"),
	}, nil
}

func (r *SiteContentRepo) SaveAbout(ctx context.Context, a models.About) error {
	return r.store.Set(ctx, siteContentCollection, aboutKey, map[string]any{
		"body_sv":     a.BodySV,
		"body_en":     a.BodyEN,
		"body":        a.Body,
		"skills":      a.SkillsRaw,
		"portraitUrl": a.PortraitURL,
		"updatedAt":   a.UpdatedAt,
	})
}

func defaultSettings() models.SiteSettings {
	return models.SiteSettings{
		AccentColor: "#64ffda",
	}
}
