package models

import "time"

// Category groups projects for the public gallery. DisplayOrder is a dense
// 1..N ranking maintained by the content package on every reorder.
type Category struct {
	ID string `json:"id"`

	NameSV string `json:"name_sv"`
	NameEN string `json:"name_en"`
	Name   string `json:"name,omitempty"` // legacy single-language field

	Description string `json:"description,omitempty"`

	DisplayOrder int64     `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
