package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"liveline/internal/domain"
	"liveline/internal/domain/entities"
)

func (h *Handler) HandleListEvents(c fiber.Ctx) error {
	events, err := h.eventUseCase.ListByOwner(c.Context(), userID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"events": events})
}

// HandleGetEvent sert la page RSVP publique: quiconque a le lien de partage
// peut la voir, donc la réponse ne porte ni les réservations ni les secrets.
func (h *Handler) HandleGetEvent(c fiber.Ctx) error {
	event, err := h.eventUseCase.GetEvent(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(publicEventView(event))
}

// publicEventView strips what the fan-facing page must never see: the owner
// id, every attendee's name and email, and the RTMP ingest credentials of
// custom bindings. The confirmed count replaces the RSVP rows.
func publicEventView(e *entities.Event) fiber.Map {
	platforms := make([]fiber.Map, len(e.Platforms))
	for i, b := range e.Platforms {
		platforms[i] = fiber.Map{
			"platformId":    b.PlatformID,
			"profileUrl":    b.ProfileURL,
			"scheduledLink": b.ScheduledLink,
		}
	}
	confirmed := 0
	for _, r := range e.RSVPs {
		if r.Status == domain.StatusConfirmed {
			confirmed++
		}
	}
	return fiber.Map{
		"id":                 e.ID,
		"title":              e.Title,
		"description":        e.Description,
		"scheduledAt":        e.ScheduledAt,
		"durationMinutes":    e.DurationMinutes,
		"coverImageUrl":      e.CoverImageURL,
		"platforms":          platforms,
		"attendanceLimit":    e.AttendanceLimit,
		"calendarPolicy":     e.CalendarPolicy,
		"requireEmailToRSVP": e.RequireEmailToRSVP,
		"visibility":         e.Visibility,
		"monetization":       e.Monetization,
		"shareUrl":           e.ShareURL,
		"confirmedCount":     confirmed,
	}
}

func (h *Handler) HandleDeleteEvent(c fiber.Ctx) error {
	if err := h.eventUseCase.DeleteEvent(c.Context(), userID(c), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) HandleAnalyticsSummary(c fiber.Ctx) error {
	summary, err := h.analyticsUseCase.Summary(c.Context(), userID(c), time.Now())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(summary)
}
