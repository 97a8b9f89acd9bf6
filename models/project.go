package models

import "time"

// Project represents a portfolio project with bilingual content and media
type Project struct {
	ID string `json:"id"`

	TitleSV string `json:"title_sv"`
	TitleEN string `json:"title_en"`
	// Title is the legacy single-language field kept for records written
	// before the bilingual schema. Resolution happens in the content package.
	Title string `json:"title,omitempty"`

	DescriptionSV string `json:"description_sv"`
	DescriptionEN string `json:"description_en"`
	Description   string `json:"description,omitempty"`

	CategoryID   string            `json:"categoryId"`
	Technologies []string          `json:"technologies"`
	Media        []MediaDescriptor `json:"media"`

	GithubURL string `json:"githubUrl,omitempty"`
	LiveURL   string `json:"liveUrl,omitempty"`

	// DisplayOrder is unix milliseconds at creation. Projects are never
	// renumbered; the read side sorts descending so newest-created is first.
	DisplayOrder int64     `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Valid reports whether the record carries at least one usable title.
func (p Project) Valid() bool {
	return p.TitleSV != "" || p.Title != ""
}
