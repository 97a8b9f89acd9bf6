package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/evelinalundqvist/portfolio-backend/content"
	"github.com/evelinalundqvist/portfolio-backend/errs"
	"github.com/evelinalundqvist/portfolio-backend/models"
)

// ProjectStore is what the coordinator needs from the project repository.
type ProjectStore interface {
	FindByID(ctx context.Context, id string) (models.Project, error)
	Add(ctx context.Context, p *models.Project) error
	Update(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id string) error
}

// StorageDeleter is the delete side of the object store.
type StorageDeleter interface {
	Delete(ctx context.Context, storagePath string) error
}

// ProjectService wraps project create/update/delete with the invariants the
// record must hold: timestamps stamped, media reduced to its persistable
// projection, remote objects cleaned up best-effort on delete.
type ProjectService struct {
	store   ProjectStore
	storage StorageDeleter
	logger  zerolog.Logger
	now     func() time.Time
}

func NewProjectService(store ProjectStore, storage StorageDeleter, logger zerolog.Logger) *ProjectService {
	return &ProjectService{
		store:   store,
		storage: storage,
		logger:  logger.With().Str("service", "projects").Logger(),
		now:     time.Now,
	}
}

// Save persists the project. UpdatedAt is stamped on every save; CreatedAt
// and DisplayOrder only at creation, never overwritten on edit. Media
// descriptors carrying an upload error are persisted intact so the admin can
// retry just those files later; a media failure never blocks the save.
func (s *ProjectService) Save(ctx context.Context, p models.Project, isEditing bool) (models.Project, error) {
	if !p.Valid() {
		return models.Project{}, errs.NewMissingRequiredFieldError("title")
	}

	now := s.now()
	p.UpdatedAt = now
	if !isEditing {
		p.CreatedAt = now
		p.DisplayOrder = content.ProjectDisplayOrder(now)
	}

	for i := range p.Media {
		p.Media[i] = p.Media[i].Persistable()
	}

	if isEditing {
		existing, err := s.store.FindByID(ctx, p.ID)
		if err != nil {
			return models.Project{}, errs.NewDatabaseError("find", "project", err)
		}
		p.CreatedAt = existing.CreatedAt
		if p.DisplayOrder == 0 {
			p.DisplayOrder = existing.DisplayOrder
		}
		if err := s.store.Update(ctx, &p); err != nil {
			return models.Project{}, errs.NewDatabaseError("update", "project", err)
		}
		return p, nil
	}

	if err := s.store.Add(ctx, &p); err != nil {
		return models.Project{}, errs.NewDatabaseError("create", "project", err)
	}
	return p, nil
}

// Delete removes the record. Remote objects referenced by the media list are
// deleted best-effort first: a storage failure is logged and never stops the
// record delete, orphaned objects are an accepted trade-off.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		return errs.NewDatabaseError("find", "project", err)
	}

	for _, m := range p.Media {
		if m.StoragePath == "" {
			continue
		}
		if err := s.storage.Delete(ctx, m.StoragePath); err != nil {
			s.logger.Warn().Err(err).
				Str("projectId", id).
				Str("storagePath", m.StoragePath).
				Msg("failed to delete media object, record delete proceeds")
		}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return errs.NewDatabaseError("delete", "project", err)
	}
	return nil
}
