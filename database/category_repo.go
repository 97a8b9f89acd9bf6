package database

import (
	"context"

	"github.com/evelinalundqvist/portfolio-backend/models"
)

const categoriesCollection = "categories"

type CategoryRepo struct {
	store DocStore
}

func NewCategoryRepo(store DocStore) *CategoryRepo {
	return &CategoryRepo{store}
}

// FindAll returns all categories ordered by displayOrder ascending.
func (r *CategoryRepo) FindAll(ctx context.Context) ([]models.Category, error) {
	docs, err := r.store.List(ctx, categoriesCollection, ListOptions{OrderBy: "displayOrder"})
	if err != nil {
		return nil, err
	}
	categories := make([]models.Category, 0, len(docs))
	for _, d := range docs {
		categories = append(categories, categoryFromDoc(d))
	}
	return categories, nil
}

func (r *CategoryRepo) FindByID(ctx context.Context, id string) (models.Category, error) {
	doc, err := r.store.Get(ctx, categoriesCollection, id)
	if err != nil {
		return models.Category{}, err
	}
	return categoryFromDoc(doc), nil
}

func (r *CategoryRepo) Add(ctx context.Context, c *models.Category) error {
	id, err := r.store.Create(ctx, categoriesCollection, categoryToDoc(*c))
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r *CategoryRepo) Update(ctx context.Context, c *models.Category) error {
	return r.store.Update(ctx, categoriesCollection, c.ID, categoryToDoc(*c))
}

func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, categoriesCollection, id)
}

// UpdateOrders writes displayOrder for every listed category in one batch of
// independent writes. A partial failure leaves the store and the caller's
// optimistic state diverged until the next re-fetch.
func (r *CategoryRepo) UpdateOrders(ctx context.Context, cats []models.Category) error {
	updates := make([]Update, 0, len(cats))
	for _, c := range cats {
		updates = append(updates, Update{
			ID:   c.ID,
			Data: map[string]any{"displayOrder": c.DisplayOrder},
		})
	}
	return r.store.BatchUpdate(ctx, categoriesCollection, updates)
}

func categoryToDoc(c models.Category) map[string]any {
	return map[string]any{
		"name_sv":      c.NameSV,
		"name_en":      c.NameEN,
		"name":         c.Name,
		"description":  c.Description,
		"displayOrder": c.DisplayOrder,
		"createdAt":    c.CreatedAt,
		"updatedAt":    c.UpdatedAt,
	}
}

func categoryFromDoc(d Document) models.Category {
	return models.Category{
		ID:           d.ID,
		NameSV:       docString(d.Data, "name_sv"),
		NameEN:       docString(d.Data, "name_en"),
		Name:         docString(d.Data, "name"),
		Description:  docString(d.Data, "description"),
		DisplayOrder: docInt64(d.Data, "displayOrder"),
		CreatedAt:    docTime(d.Data, "createdAt"),
		UpdatedAt:    docTime(d.Data, "updatedAt"),
	}
}
