package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/evelinalundqvist/portfolio-backend/content"
	"github.com/evelinalundqvist/portfolio-backend/errs"
	"github.com/evelinalundqvist/portfolio-backend/models"
)

// CategoryStore is what the reorder coordinator needs from the category
// repository.
type CategoryStore interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id string) (models.Category, error)
	Add(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id string) error
	UpdateOrders(ctx context.Context, cats []models.Category) error
}

// CategoryService keeps displayOrder a dense 1..N ranking across creates,
// moves and deletes.
type CategoryService struct {
	store  CategoryStore
	logger zerolog.Logger
	now    func() time.Time
}

func NewCategoryService(store CategoryStore, logger zerolog.Logger) *CategoryService {
	return &CategoryService{
		store:  store,
		logger: logger.With().Str("service", "categories").Logger(),
		now:    time.Now,
	}
}

// Create appends the category at the end of the ranking.
func (s *CategoryService) Create(ctx context.Context, c models.Category) (models.Category, error) {
	if c.NameSV == "" && c.Name == "" {
		return models.Category{}, errs.NewMissingRequiredFieldError("name")
	}

	existing, err := s.store.FindAll(ctx)
	if err != nil {
		return models.Category{}, errs.NewDatabaseError("list", "categories", err)
	}

	now := s.now()
	c.CreatedAt = now
	c.UpdatedAt = now
	c.DisplayOrder = content.NextCategoryOrder(existing)

	if err := s.store.Add(ctx, &c); err != nil {
		return models.Category{}, errs.NewDatabaseError("create", "category", err)
	}
	return c, nil
}

// Update edits category content without touching its position.
func (s *CategoryService) Update(ctx context.Context, c models.Category) (models.Category, error) {
	existing, err := s.store.FindByID(ctx, c.ID)
	if err != nil {
		return models.Category{}, errs.NewDatabaseError("find", "category", err)
	}

	c.CreatedAt = existing.CreatedAt
	c.DisplayOrder = existing.DisplayOrder
	c.UpdatedAt = s.now()

	if err := s.store.Update(ctx, &c); err != nil {
		return models.Category{}, errs.NewDatabaseError("update", "category", err)
	}
	return c, nil
}

// Move swaps the category with its neighbor and persists displayOrder for
// every category in one batch. Boundary moves return without issuing a
// single write. On a batch failure the reordered list is still returned as
// the optimistic state; there is no rollback, the caller must re-fetch to
// reconcile.
func (s *CategoryService) Move(ctx context.Context, id string, dir content.Direction) ([]models.Category, bool, error) {
	cats, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, false, errs.NewDatabaseError("list", "categories", err)
	}

	reordered, moved := content.MoveCategory(cats, id, dir)
	if !moved {
		return reordered, false, nil
	}

	if err := s.store.UpdateOrders(ctx, reordered); err != nil {
		s.logger.Error().Err(err).Str("categoryId", id).
			Msg("batch reorder write failed, store may disagree with optimistic state")
		return reordered, true, errs.NewDatabaseError("reorder", "categories", err)
	}
	return reordered, true, nil
}

// Delete removes the category and renumbers the survivors so the ranking
// stays dense.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return errs.NewDatabaseError("delete", "category", err)
	}

	remaining, err := s.store.FindAll(ctx)
	if err != nil {
		return errs.NewDatabaseError("list", "categories", err)
	}
	content.SortCategories(remaining)
	content.RenumberCategories(remaining)

	if err := s.store.UpdateOrders(ctx, remaining); err != nil {
		return errs.NewDatabaseError("reorder", "categories", err)
	}
	return nil
}
