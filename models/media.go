package models

// MediaType distinguishes the two kinds of media a project can carry.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// MediaDescriptor represents one uploaded image or video attached to a project.
// An empty URL together with a non-empty Error marks an upload that failed;
// the descriptor is kept so the admin can retry just that file later.
type MediaDescriptor struct {
	URL         string    `json:"url"`
	Type        MediaType `json:"type"`
	Name        string    `json:"name"`
	SizeKB      int64     `json:"size,omitempty"`
	Error       string    `json:"error,omitempty"`
	StoragePath string    `json:"storagePath,omitempty"`

	// CanRetry is client-state only and never persisted.
	CanRetry bool `json:"canRetry,omitempty"`
}

// Failed reports whether this descriptor represents an unusable upload.
func (m MediaDescriptor) Failed() bool {
	return m.Error != "" || m.URL == ""
}

// Persistable returns a copy reduced to the fields that are allowed to reach
// the document store. Transient client-only fields are dropped.
func (m MediaDescriptor) Persistable() MediaDescriptor {
	return MediaDescriptor{
		URL:         m.URL,
		Type:        m.Type,
		Name:        m.Name,
		SizeKB:      m.SizeKB,
		Error:       m.Error,
		StoragePath: m.StoragePath,
	}
}
