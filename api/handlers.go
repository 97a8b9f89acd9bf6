package api

import (
	"github.com/rs/zerolog/log"

	"github.com/evelinalundqvist/portfolio-backend/database"
	"github.com/evelinalundqvist/portfolio-backend/media"
	"github.com/evelinalundqvist/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, storage media.ObjectStorage, auth *services.AuthService, cfg map[string]string) *routeHandlers {
	projectService := services.NewProjectService(db.ProjectRepo(), storage, log.Logger)
	categoryService := services.NewCategoryService(db.CategoryRepo(), log.Logger)
	processor := media.NewProcessor(storage, log.Logger)

	return &routeHandlers{
		projectHandler:     newProjectHandler(db.ProjectRepo(), projectService),
		categoryHandler:    newCategoryHandler(db.CategoryRepo(), categoryService),
		messageHandler:     newMessageHandler(db.MessageRepo(), cfg),
		reviewHandler:      newReviewHandler(db.ReviewRepo()),
		siteContentHandler: newSiteContentHandler(db.SiteContentRepo()),
		authHandler:        newAuthHandler(auth),
		mediaHandler:       newMediaHandler(processor),
	}
}
