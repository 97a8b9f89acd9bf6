package models

import "time"

// SiteSettings is the singleton document driving site-wide presentation.
// The accent color becomes CSS custom properties on the public site.
type SiteSettings struct {
	AccentColor string `json:"accentColor"`

	SiteTitleSV string `json:"siteTitle_sv"`
	SiteTitleEN string `json:"siteTitle_en"`

	HeroTaglineSV string `json:"heroTagline_sv"`
	HeroTaglineEN string `json:"heroTagline_en"`
	HeroTagline   string `json:"heroTagline,omitempty"` // legacy field

	GithubURL   string `json:"githubUrl,omitempty"`
	LinkedinURL string `json:"linkedinUrl,omitempty"`
	Email       string `json:"email,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// About is the singleton document behind the about modal. SkillsRaw keeps the
// comma-separated string exactly as typed in the admin editor; the canonical
// skills array is derived from it at read time, never stored separately.
type About struct {
	BodySV string `json:"body_sv"`
	BodyEN string `json:"body_en"`
	Body   string `json:"body,omitempty"` // legacy field

	SkillsRaw string `json:"skills"`

	PortraitURL string    `json:"portraitUrl,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
