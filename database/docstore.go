package database

import (
	"context"
)

// Document is one JSON-like record handed to or from the document store.
type Document struct {
	ID   string
	Data map[string]any
}

// Update pairs a document id with a partial payload for a batched write.
type Update struct {
	ID   string
	Data map[string]any
}

// Filter is a single equality-style predicate for List.
type Filter struct {
	Field string
	Op    string
	Value any
}

// ListOptions narrows and orders a List call.
type ListOptions struct {
	OrderBy string
	Desc    bool
	Filter  *Filter
}

// DocStore is the only contract the repositories have with the backing
// document database. Writes are assumed to be eventually visible to
// subsequent reads; nothing stronger. BatchUpdate issues independent
// per-document writes with no cross-document atomicity, so a partial
// failure mid-batch is possible and callers must treat it as "store and
// local state may now disagree".
type DocStore interface {
	Get(ctx context.Context, collection, id string) (Document, error)
	GetSingleton(ctx context.Context, collection, key string) (Document, error)
	List(ctx context.Context, collection string, opts ListOptions) ([]Document, error)
	Create(ctx context.Context, collection string, data map[string]any) (string, error)
	Update(ctx context.Context, collection, id string, data map[string]any) error
	Set(ctx context.Context, collection, key string, data map[string]any) error
	Delete(ctx context.Context, collection, id string) error
	BatchUpdate(ctx context.Context, collection string, updates []Update) error
}
