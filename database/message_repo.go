package database

import (
	"context"

	"github.com/evelinalundqvist/portfolio-backend/models"
)

const messagesCollection = "messages"

type MessageRepo struct {
	store DocStore
}

func NewMessageRepo(store DocStore) *MessageRepo {
	return &MessageRepo{store}
}

// FindAll returns all messages newest first.
func (r *MessageRepo) FindAll(ctx context.Context) ([]models.Message, error) {
	docs, err := r.store.List(ctx, messagesCollection, ListOptions{OrderBy: "createdAt", Desc: true})
	if err != nil {
		return nil, err
	}
	messages := make([]models.Message, 0, len(docs))
	for _, d := range docs {
		messages = append(messages, messageFromDoc(d))
	}
	return messages, nil
}

func (r *MessageRepo) Add(ctx context.Context, m *models.Message) error {
	id, err := r.store.Create(ctx, messagesCollection, map[string]any{
		"name":      m.Name,
		"email":     m.Email,
		"message":   m.Message,
		"read":      m.Read,
		"createdAt": m.CreatedAt,
	})
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}

// MarkRead flips the read flag. Only ever called from an explicit admin
// action.
func (r *MessageRepo) MarkRead(ctx context.Context, id string, read bool) error {
	return r.store.Update(ctx, messagesCollection, id, map[string]any{"read": read})
}

func (r *MessageRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, messagesCollection, id)
}

func messageFromDoc(d Document) models.Message {
	return models.Message{
		ID:        d.ID,
		Name:      docString(d.Data, "name"),
		Email:     docString(d.Data, "email"),
		Message:   docString(d.Data, "message"),
		Read:      docBool(d.Data, "read"),
		CreatedAt: docTime(d.Data, "createdAt"),
	}
}
