// Package content holds the ordering and bilingual-field rules that the admin
// screens and the public site must agree on. Everything here is pure: no I/O,
// no mutation of inputs.
package content

// Language selects which side of a bilingual field to resolve.
type Language string

const (
	LangSwedish Language = "sv"
	LangEnglish Language = "en"
)

// ParseLanguage maps a request parameter onto a supported language,
// defaulting to Swedish.
func ParseLanguage(s string) Language {
	if Language(s) == LangEnglish {
		return LangEnglish
	}
	return LangSwedish
}

func (l Language) other() Language {
	if l == LangSwedish {
		return LangEnglish
	}
	return LangSwedish
}

// ResolveValue resolves one bilingual field. First non-empty wins:
// the requested language, then the legacy unsuffixed field, then the other
// language, then the empty string.
func ResolveValue(lang Language, sv, en, legacy string) string {
	requested, fallback := sv, en
	if lang == LangEnglish {
		requested, fallback = en, sv
	}
	if requested != "" {
		return requested
	}
	if legacy != "" {
		return legacy
	}
	return fallback
}

// ResolveFields applies the resolution rule to a raw document for each named
// field, reading {field}_sv / {field}_en / legacy {field}. The input record
// is never touched.
func ResolveFields(record map[string]any, lang Language, fields []string) map[string]string {
	resolved := make(map[string]string, len(fields))
	for _, f := range fields {
		resolved[f] = ResolveValue(
			lang,
			stringField(record, f+"_sv"),
			stringField(record, f+"_en"),
			stringField(record, f),
		)
	}
	return resolved
}

func stringField(record map[string]any, key string) string {
	if record == nil {
		return ""
	}
	s, _ := record[key].(string)
	return s
}
