package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evelinalundqvist/portfolio-backend/errs"
	"github.com/evelinalundqvist/portfolio-backend/models"
)

// fakeDocStore remembers every Set payload keyed by collection/key.
type fakeDocStore struct {
	sets map[string]map[string]any
}

func newFakeDocStore() *fakeDocStore {
	return &fakeDocStore{sets: make(map[string]map[string]any)}
}

func (f *fakeDocStore) Get(_ context.Context, collection, id string) (Document, error) {
	return Document{}, fmt.Errorf("%s/%s: %w", collection, id, errs.ErrNotFound)
}

func (f *fakeDocStore) GetSingleton(ctx context.Context, collection, key string) (Document, error) {
	if data, ok := f.sets[collection+"/"+key]; ok {
		return Document{ID: key, Data: data}, nil
	}
	return f.Get(ctx, collection, key)
}

func (f *fakeDocStore) List(_ context.Context, _ string, _ ListOptions) ([]Document, error) {
	return nil, nil
}

func (f *fakeDocStore) Create(_ context.Context, _ string, _ map[string]any) (string, error) {
	return "id1", nil
}

func (f *fakeDocStore) Update(_ context.Context, _, _ string, _ map[string]any) error {
	return nil
}

func (f *fakeDocStore) Set(_ context.Context, collection, key string, data map[string]any) error {
	f.sets[collection+"/"+key] = data
	return nil
}

func (f *fakeDocStore) Delete(_ context.Context, _, _ string) error {
	return nil
}

func (f *fakeDocStore) BatchUpdate(_ context.Context, _ string, _ []Update) error {
	return nil
}

func TestSaveSettingsPersistsCallerTimestamp(t *testing.T) {
	store := newFakeDocStore()
	repo := NewSiteContentRepo(store)

	stamped := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)
	settings := models.SiteSettings{
		AccentColor: "#ff6b6b",
		SiteTitleSV: "Portfölj",
		UpdatedAt:   stamped,
	}

	require.NoError(t, repo.SaveSettings(context.Background(), settings))

	doc := store.sets["site_content/settings"]
	require.NotNil(t, doc)
	// The stored document carries the exact timestamp the caller stamped,
	// so the response body and the database never disagree.
	assert.Equal(t, stamped, doc["updatedAt"])

	loaded, err := repo.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stamped, loaded.UpdatedAt)
	assert.Equal(t, "#ff6b6b", loaded.AccentColor)
}

func TestSaveAboutPersistsCallerTimestamp(t *testing.T) {
	store := newFakeDocStore()
	repo := NewSiteContentRepo(store)

	stamped := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)
	about := models.About{
		BodySV:    "Om mig",
		SkillsRaw: "React, Go",
		UpdatedAt: stamped,
	}

	require.NoError(t, repo.SaveAbout(context.Background(), about))

	doc := store.sets["site_content/about"]
	require.NotNil(t, doc)
	assert.Equal(t, stamped, doc["updatedAt"])

	loaded, err := repo.GetAbout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stamped, loaded.UpdatedAt)
	assert.Equal(t, "React, Go", loaded.SkillsRaw)
}

func TestGetSettingsDefaultsWhenUnsaved(t *testing.T) {
	repo := NewSiteContentRepo(newFakeDocStore())

	settings, err := repo.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "#64ffda", settings.AccentColor)
	assert.True(t, settings.UpdatedAt.IsZero())
}
