package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evelinalundqvist/portfolio-backend/models"
)

type fakeMessageStore struct {
	messages []models.Message
	addErr   error
}

func (f *fakeMessageStore) FindAll(_ context.Context) ([]models.Message, error) {
	return f.messages, nil
}

func (f *fakeMessageStore) Add(_ context.Context, m *models.Message) error {
	if f.addErr != nil {
		return f.addErr
	}
	m.ID = "msg1"
	f.messages = append(f.messages, *m)
	return nil
}

func (f *fakeMessageStore) MarkRead(_ context.Context, id string, read bool) error {
	for i := range f.messages {
		if f.messages[i].ID == id {
			f.messages[i].Read = read
		}
	}
	return nil
}

func (f *fakeMessageStore) Delete(_ context.Context, id string) error {
	kept := f.messages[:0]
	for _, m := range f.messages {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	f.messages = kept
	return nil
}

func newTestMessageHandler(store *fakeMessageStore, notify func(models.Message) error) messageHandler {
	logger := zerolog.Nop()
	return messageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		notify:    notify,
	}
}

func postMessage(t *testing.T, h messageHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/message", strings.NewReader(body))
	h.createMessage().ServeHTTP(rec, req)
	return rec
}

func TestCreateMessageSavesDespiteNotificationFailure(t *testing.T) {
	store := &fakeMessageStore{}
	notified := false
	h := newTestMessageHandler(store, func(models.Message) error {
		notified = true
		return errors.New("resend API returned status 503")
	})

	rec := postMessage(t, h, `{"name":"Anna","email":"[email protected]","message":"Hej!"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, notified)

	require.Len(t, store.messages, 1)
	saved := store.messages[0]
	assert.Equal(t, "Anna", saved.Name)
	assert.False(t, saved.Read)
	assert.False(t, saved.CreatedAt.IsZero())

	var resp models.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "msg1", resp.ID)
}

func TestCreateMessageNotifiesWithSavedID(t *testing.T) {
	store := &fakeMessageStore{}
	var got models.Message
	h := newTestMessageHandler(store, func(m models.Message) error {
		got = m
		return nil
	})

	rec := postMessage(t, h, `{"name":"Erik","email":"[email protected]","message":"Offert?"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "msg1", got.ID)
	assert.Equal(t, "Erik", got.Name)
}

func TestCreateMessageRejectsMissingFields(t *testing.T) {
	store := &fakeMessageStore{}
	h := newTestMessageHandler(store, func(models.Message) error {
		t.Fatal("notifier should not run for a rejected submission")
		return nil
	})

	for name, body := range map[string]string{
		"no name":    `{"email":"[email protected]","message":"hi"}`,
		"no email":   `{"name":"A","message":"hi"}`,
		"no message": `{"name":"A","email":"[email protected]","message":"   "}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := postMessage(t, h, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	assert.Empty(t, store.messages)
}
