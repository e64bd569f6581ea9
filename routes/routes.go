package routes

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"

	"voicepos/handlers"
	"voicepos/metrics"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App, h *handlers.Handlers, m *metrics.Metrics) {
	app.Get("/", h.HandleRoot)
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	// Kept at the root for clients of the original API shape.
	app.Post("/voice-command", h.HandleVoiceCommand)

	api := app.Group("/api/v1")
	api.Post("/voice-command", h.HandleVoiceCommand)
	api.Get("/inventory", h.HandleListInventory)
	api.Get("/inventory/:name", h.HandleGetInventory)
}
