package httpapi

import "github.com/gofiber/fiber/v3"

// registerRoutes attache l'API sous /api/v1. Les routes du wizard et du
// créateur sont authentifiées; la réservation des fans passe par le lien de
// partage, sans compte.
func registerRoutes(app *fiber.App, h *Handler, sessions SessionStarter) {
	api := app.Group("/api/v1")
	auth := Protect(sessions, h)

	// Wizard de création/édition.
	api.Post("/wizard", auth(h.HandleStartWizard))
	api.Post("/wizard/from-event/:id", auth(h.HandleStartEditWizard))
	api.Get("/wizard/:sid", auth(h.HandleGetWizard))
	api.Patch("/wizard/:sid/field", auth(h.HandleSetField))
	api.Post("/wizard/:sid/next", auth(h.HandleNext))
	api.Post("/wizard/:sid/previous", auth(h.HandlePrevious))
	api.Post("/wizard/:sid/jump", auth(h.HandleJump))
	api.Get("/wizard/:sid/review", auth(h.HandleReview))
	api.Post("/wizard/:sid/publish", auth(h.HandlePublish))
	api.Delete("/wizard/:sid", auth(h.HandleCancelWizard))

	// Événements du créateur.
	api.Get("/events", auth(h.HandleListEvents))
	api.Delete("/events/:id", auth(h.HandleDeleteEvent))
	api.Get("/events/:id/rsvps", auth(h.HandleListRSVPs))
	api.Get("/analytics/summary", auth(h.HandleAnalyticsSummary))

	// Surface publique (page RSVP des fans).
	api.Get("/events/:id", h.HandleGetEvent)
	api.Post("/events/:id/rsvps", h.HandleJoin)
	api.Delete("/events/:id/rsvps/:rid", h.HandleCancelRSVP)
}
