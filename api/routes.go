package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/evelinalundqvist/portfolio-backend/content"
)

// setupRoutes wires the public surface and the token-gated admin surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/projects", handlers.projectHandler.getPublicProjects())
		r.Get("/categories", handlers.categoryHandler.getPublicCategories())
		r.Get("/reviews", handlers.reviewHandler.getApprovedReviews())
		r.Get("/settings", handlers.siteContentHandler.getPublicSettings())
		r.Get("/about", handlers.siteContentHandler.getPublicAbout())

		r.Post("/message", handlers.messageHandler.createMessage())
		r.Post("/review", handlers.reviewHandler.createReview())

		r.Post("/auth/login", handlers.authHandler.login())
		r.Post("/auth/logout", handlers.authHandler.logout())
	})

	// Admin routes
	r.Route("/admin", func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())
		r.Post("/project/{projectID}/media", handlers.mediaHandler.uploadMedia())

		r.Get("/categories", handlers.categoryHandler.getAllCategories())
		r.Post("/category", handlers.categoryHandler.createCategory())
		r.Put("/category/{categoryID}", handlers.categoryHandler.updateCategory())
		r.Delete("/category/{categoryID}", handlers.categoryHandler.deleteCategory())
		r.Post("/category/{categoryID}/move-up", handlers.categoryHandler.moveCategory(content.MoveUp))
		r.Post("/category/{categoryID}/move-down", handlers.categoryHandler.moveCategory(content.MoveDown))

		r.Get("/messages", handlers.messageHandler.getAllMessages())
		r.Put("/message/{messageID}/read", handlers.messageHandler.markMessageRead())
		r.Delete("/message/{messageID}", handlers.messageHandler.deleteMessage())
		r.Post("/messages/delete", handlers.messageHandler.deleteMessages())

		r.Get("/reviews", handlers.reviewHandler.getAllReviews())
		r.Put("/review/{reviewID}/approve", handlers.reviewHandler.setReviewApproval())
		r.Delete("/review/{reviewID}", handlers.reviewHandler.deleteReview())

		r.Get("/settings", handlers.siteContentHandler.getSettings())
		r.Put("/settings", handlers.siteContentHandler.updateSettings())
		r.Get("/about", handlers.siteContentHandler.getAbout())
		r.Put("/about", handlers.siteContentHandler.updateAbout())
	})
}
