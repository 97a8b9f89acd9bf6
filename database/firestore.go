package database

import (
	"context"
	"fmt"
	"sync"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/evelinalundqvist/portfolio-backend/errs"
)

// FirestoreStore implements DocStore on a Firestore database.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Document{}, fmt.Errorf("%s/%s: %w", collection, id, errs.ErrNotFound)
		}
		return Document{}, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (s *FirestoreStore) GetSingleton(ctx context.Context, collection, key string) (Document, error) {
	return s.Get(ctx, collection, key)
}

func (s *FirestoreStore) List(ctx context.Context, collection string, opts ListOptions) ([]Document, error) {
	q := s.client.Collection(collection).Query
	if opts.Filter != nil {
		q = q.Where(opts.Filter.Field, opts.Filter.Op, opts.Filter.Value)
	}
	if opts.OrderBy != "" {
		dir := firestore.Asc
		if opts.Desc {
			dir = firestore.Desc
		}
		q = q.OrderBy(opts.OrderBy, dir)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", collection, err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

func (s *FirestoreStore) Create(ctx context.Context, collection string, data map[string]any) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, data)
	if err != nil {
		return "", fmt.Errorf("create in %s: %w", collection, err)
	}
	return ref.ID, nil
}

func (s *FirestoreStore) Update(ctx context.Context, collection, id string, data map[string]any) error {
	_, err := s.client.Collection(collection).Doc(id).Set(ctx, data, firestore.MergeAll)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("%s/%s: %w", collection, id, errs.ErrNotFound)
		}
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) Set(ctx context.Context, collection, key string, data map[string]any) error {
	if _, err := s.client.Collection(collection).Doc(key).Set(ctx, data); err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, key, err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// BatchUpdate fans out one independent write per document and waits for all
// of them. The first error is returned; writes that already succeeded stay
// in place, there is no rollback.
func (s *FirestoreStore) BatchUpdate(ctx context.Context, collection string, updates []Update) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for _, u := range updates {
		wg.Add(1)
		go func(u Update) {
			defer wg.Done()
			if err := s.Update(ctx, collection, u.ID, u.Data); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(u)
	}

	wg.Wait()
	return firstErr
}
