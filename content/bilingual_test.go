package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveValueFallbackChain(t *testing.T) {
	tests := []struct {
		name   string
		lang   Language
		sv     string
		en     string
		legacy string
		want   string
	}{
		{"requested language wins", LangEnglish, "Svensk", "English", "Legacy", "English"},
		{"legacy before other language", LangSwedish, "", "English", "Legacy", "Legacy"},
		{"other language when nothing else", LangSwedish, "", "English", "", "English"},
		{"all empty", LangEnglish, "", "", "", ""},
		{"swedish requested and present", LangSwedish, "Svensk", "English", "Legacy", "Svensk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveValue(tt.lang, tt.sv, tt.en, tt.legacy))
		})
	}
}

func TestResolveFieldsLegacyRecord(t *testing.T) {
	record := map[string]any{
		"title":    "Legacy",
		"title_en": "English Title",
	}

	en := ResolveFields(record, LangEnglish, []string{"title"})
	require.Equal(t, "English Title", en["title"])

	// Swedish has no title_sv, so the legacy field wins.
	sv := ResolveFields(record, LangSwedish, []string{"title"})
	require.Equal(t, "Legacy", sv["title"])
}

func TestResolveFieldsIsPureAndDeterministic(t *testing.T) {
	record := map[string]any{
		"title":          "Legacy",
		"title_sv":       "Titel",
		"description_en": "About this",
	}

	first := ResolveFields(record, LangSwedish, []string{"title", "description"})
	second := ResolveFields(record, LangSwedish, []string{"title", "description"})
	assert.Equal(t, first, second)

	// The input record is never mutated.
	assert.Equal(t, map[string]any{
		"title":          "Legacy",
		"title_sv":       "Titel",
		"description_en": "About this",
	}, record)
}

func TestResolveFieldsMissingAndNonStringValues(t *testing.T) {
	record := map[string]any{
		"title_sv": 42, // wrong type reads as empty
	}
	got := ResolveFields(record, LangSwedish, []string{"title"})
	assert.Equal(t, "", got["title"])

	got = ResolveFields(nil, LangEnglish, []string{"title"})
	assert.Equal(t, "", got["title"])
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, LangEnglish, ParseLanguage("en"))
	assert.Equal(t, LangSwedish, ParseLanguage("sv"))
	assert.Equal(t, LangSwedish, ParseLanguage(""))
	assert.Equal(t, LangSwedish, ParseLanguage("de"))
}
