package setup

import (
	"notes-api/app"
	"notes-api/handlers"
	"notes-api/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/", handlers.Root)
	fiberApp.Get("/health", handlers.Health)
	fiberApp.Get("/ready", handlers.Ready(application))
	fiberApp.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	fiberApp.Get("/notes", handlers.ListNotes(application))
	fiberApp.Post("/notes", handlers.CreateNote(application))
}
