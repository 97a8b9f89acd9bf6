package database

import (
	"time"

	"github.com/evelinalundqvist/portfolio-backend/models"
)

// Field readers tolerant of the loosely-typed documents the store returns.
// Missing keys and wrong types read as zero values; legacy records are full
// of both.

func docString(d map[string]any, key string) string {
	s, _ := d[key].(string)
	return s
}

func docBool(d map[string]any, key string) bool {
	b, _ := d[key].(bool)
	return b
}

func docInt64(d map[string]any, key string) int64 {
	switch v := d[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

func docTime(d map[string]any, key string) time.Time {
	t, _ := d[key].(time.Time)
	return t
}

func docStringSlice(d map[string]any, key string) []string {
	raw, ok := d[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func docMediaList(d map[string]any, key string) []models.MediaDescriptor {
	raw, ok := d[key].([]any)
	if !ok {
		return nil
	}
	out := make([]models.MediaDescriptor, 0, len(raw))
	for _, v := range raw {
		entry, ok := v.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, models.MediaDescriptor{
			URL:         docString(entry, "url"),
			Type:        models.MediaType(docString(entry, "type")),
			Name:        docString(entry, "name"),
			SizeKB:      docInt64(entry, "size"),
			Error:       docString(entry, "error"),
			StoragePath: docString(entry, "storagePath"),
		})
	}
	return out
}

func mediaToDoc(m models.MediaDescriptor) map[string]any {
	entry := map[string]any{
		"url":  m.URL,
		"type": string(m.Type),
		"name": m.Name,
	}
	if m.SizeKB != 0 {
		entry["size"] = m.SizeKB
	}
	if m.Error != "" {
		entry["error"] = m.Error
	}
	if m.StoragePath != "" {
		entry["storagePath"] = m.StoragePath
	}
	return entry
}

func mediaListToDoc(media []models.MediaDescriptor) []any {
	out := make([]any, 0, len(media))
	for _, m := range media {
		out = append(out, mediaToDoc(m))
	}
	return out
}
