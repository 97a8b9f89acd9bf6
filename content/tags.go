package content

import "strings"

// SplitTags derives the canonical tag array from a comma-separated string:
// split on commas, trim, drop empty segments. The raw string is the edit
// view and stays verbatim in the editor; only the derived array is canonical.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JoinTags renders a tag array back into editor form. Round-tripping through
// SplitTags is lossy in separators and that is fine.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
