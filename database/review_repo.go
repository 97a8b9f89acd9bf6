package database

import (
	"context"

	"github.com/evelinalundqvist/portfolio-backend/models"
)

const reviewsCollection = "reviews"

type ReviewRepo struct {
	store DocStore
}

func NewReviewRepo(store DocStore) *ReviewRepo {
	return &ReviewRepo{store}
}

// FindAll returns every review newest first, approved or not. The public
// surface filters on approved; the admin surface sees everything.
func (r *ReviewRepo) FindAll(ctx context.Context) ([]models.Review, error) {
	docs, err := r.store.List(ctx, reviewsCollection, ListOptions{OrderBy: "createdAt", Desc: true})
	if err != nil {
		return nil, err
	}
	reviews := make([]models.Review, 0, len(docs))
	for _, d := range docs {
		reviews = append(reviews, reviewFromDoc(d))
	}
	return reviews, nil
}

// FindApproved returns only reviews cleared for the public carousel.
func (r *ReviewRepo) FindApproved(ctx context.Context) ([]models.Review, error) {
	docs, err := r.store.List(ctx, reviewsCollection, ListOptions{
		OrderBy: "createdAt",
		Desc:    true,
		Filter:  &Filter{Field: "approved", Op: "==", Value: true},
	})
	if err != nil {
		return nil, err
	}
	reviews := make([]models.Review, 0, len(docs))
	for _, d := range docs {
		reviews = append(reviews, reviewFromDoc(d))
	}
	return reviews, nil
}

func (r *ReviewRepo) Add(ctx context.Context, rv *models.Review) error {
	id, err := r.store.Create(ctx, reviewsCollection, map[string]any{
		"name":      rv.Name,
		"review":    rv.Review,
		"rating":    rv.Rating,
		"approved":  rv.Approved,
		"createdAt": rv.CreatedAt,
	})
	if err != nil {
		return err
	}
	rv.ID = id
	return nil
}

// SetApproved flips the approval flag. Only ever called from an explicit
// admin action.
func (r *ReviewRepo) SetApproved(ctx context.Context, id string, approved bool) error {
	return r.store.Update(ctx, reviewsCollection, id, map[string]any{"approved": approved})
}

func (r *ReviewRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, reviewsCollection, id)
}

func reviewFromDoc(d Document) models.Review {
	return models.Review{
		ID:        d.ID,
		Name:      docString(d.Data, "name"),
		Review:    docString(d.Data, "review"),
		Rating:    int(docInt64(d.Data, "rating")),
		Approved:  docBool(d.Data, "approved"),
		CreatedAt: docTime(d.Data, "createdAt"),
	}
}
