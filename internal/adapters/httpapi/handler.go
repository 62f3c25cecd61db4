package httpapi

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"liveline/internal/domain"
	"liveline/internal/ports/input"
	"liveline/internal/ports/output"
	"liveline/internal/wizard"
)

// Handler serves the API using use cases; it owns no business rule itself.
type Handler struct {
	eventUseCase     input.EventUseCase
	rsvpUseCase      input.RSVPUseCase
	analyticsUseCase input.AnalyticsUseCase
	registry         *wizard.Registry
	translator       output.Translator
	loc              *time.Location
}

// NewHandler creates a Handler.
func NewHandler(
	eventUseCase input.EventUseCase,
	rsvpUseCase input.RSVPUseCase,
	analyticsUseCase input.AnalyticsUseCase,
	registry *wizard.Registry,
	translator output.Translator,
	loc *time.Location,
) *Handler {
	return &Handler{
		eventUseCase:     eventUseCase,
		rsvpUseCase:      rsvpUseCase,
		analyticsUseCase: analyticsUseCase,
		registry:         registry,
		translator:       translator,
		loc:              loc,
	}
}

// locale extrait la langue préférée de l'en-tête Accept-Language
// ("fr-FR,fr;q=0.9" → "fr").
func locale(c fiber.Ctx) string {
	header := c.Get(fiber.HeaderAcceptLanguage)
	if header == "" {
		return ""
	}
	first, _, _ := strings.Cut(header, ",")
	primary, _, _ := strings.Cut(strings.TrimSpace(first), "-")
	return strings.ToLower(primary)
}

// userID is set by the auth middleware.
func userID(c fiber.Ctx) string {
	uid, _ := c.Locals("user_id").(string)
	return uid
}

// fail translates an error into the API's JSON error shape. Wizard refusals
// carry their step so the client can highlight the right section.
func (h *Handler) fail(c fiber.Ctx, err error) error {
	var verr *wizard.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": h.translator.T(locale(c), "wizard."+string(verr.Reason), nil),
			"code":  string(verr.Reason),
			"step":  int(verr.Step),
		})
	}
	if code := domain.Code(err); code != "" {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": h.translator.T(locale(c), "errors."+code, nil),
			"code":  code,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": h.translator.T(locale(c), "errors.generic", nil),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrDraftNotFound),
		errors.Is(err, domain.ErrRSVPNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotOwner):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrInvalidToken):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrPublishInFlight),
		errors.Is(err, domain.ErrRSVPExists),
		errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrDuplicatePlatform):
		return fiber.StatusConflict
	default:
		return fiber.StatusUnprocessableEntity
	}
}
