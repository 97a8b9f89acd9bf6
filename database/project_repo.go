package database

import (
	"context"

	"github.com/evelinalundqvist/portfolio-backend/models"
)

const projectsCollection = "projects"

type ProjectRepo struct {
	store DocStore
}

func NewProjectRepo(store DocStore) *ProjectRepo {
	return &ProjectRepo{store}
}

// FindAll returns all projects in store order; display ordering is the
// content package's job.
func (r *ProjectRepo) FindAll(ctx context.Context) ([]models.Project, error) {
	docs, err := r.store.List(ctx, projectsCollection, ListOptions{})
	if err != nil {
		return nil, err
	}
	projects := make([]models.Project, 0, len(docs))
	for _, d := range docs {
		projects = append(projects, projectFromDoc(d))
	}
	return projects, nil
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(ctx context.Context, id string) (models.Project, error) {
	doc, err := r.store.Get(ctx, projectsCollection, id)
	if err != nil {
		return models.Project{}, err
	}
	return projectFromDoc(doc), nil
}

// Add inserts a new project and fills in its store-assigned id
func (r *ProjectRepo) Add(ctx context.Context, p *models.Project) error {
	id, err := r.store.Create(ctx, projectsCollection, projectToDoc(*p))
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// Update overwrites an existing project
func (r *ProjectRepo) Update(ctx context.Context, p *models.Project) error {
	return r.store.Update(ctx, projectsCollection, p.ID, projectToDoc(*p))
}

// Delete removes a project record by id
func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, projectsCollection, id)
}

func projectToDoc(p models.Project) map[string]any {
	technologies := make([]any, 0, len(p.Technologies))
	for _, t := range p.Technologies {
		technologies = append(technologies, t)
	}

	return map[string]any{
		"title_sv":       p.TitleSV,
		"title_en":       p.TitleEN,
		"title":          p.Title,
		"description_sv": p.DescriptionSV,
		"description_en": p.DescriptionEN,
		"description":    p.Description,
		"categoryId":     p.CategoryID,
		"technologies":   technologies,
		"media":          mediaListToDoc(p.Media),
		"githubUrl":      p.GithubURL,
		"liveUrl":        p.LiveURL,
		"displayOrder":   p.DisplayOrder,
		"createdAt":      p.CreatedAt,
		"updatedAt":      p.UpdatedAt,
	}
}

func projectFromDoc(d Document) models.Project {
	return models.Project{
		ID:            d.ID,
		TitleSV:       docString(d.Data, "title_sv"),
		TitleEN:       docString(d.Data, "title_en"),
		Title:         docString(d.Data, "title"),
		DescriptionSV: docString(d.Data, "description_sv"),
		DescriptionEN: docString(d.Data, "description_en"),
		Description:   docString(d.Data, "description"),
		CategoryID:    docString(d.Data, "categoryId"),
		Technologies:  docStringSlice(d.Data, "technologies"),
		Media:         docMediaList(d.Data, "media"),
		GithubURL:     docString(d.Data, "githubUrl"),
		LiveURL:       docString(d.Data, "liveUrl"),
		DisplayOrder:  docInt64(d.Data, "displayOrder"),
		CreatedAt:     docTime(d.Data, "createdAt"),
		UpdatedAt:     docTime(d.Data, "updatedAt"),
	}
}
