package httpapi

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"liveline/internal/adapters/httpapi/dto"
	"liveline/internal/domain"
)

// HandleJoin enregistre la réservation d'un fan; l'endpoint est public, le
// lien de partage suffit.
func (h *Handler) HandleJoin(c fiber.Ctx) error {
	var req dto.JoinRequest
	if err := c.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "corps de requête illisible")
	}
	if err := dto.Validate(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	message, rsvp, err := h.rsvpUseCase.JoinEvent(c.Context(), locale(c), c.Params("id"), req.Name, req.Email)
	if err != nil {
		if message != "" {
			return c.Status(statusFor(err)).JSON(fiber.Map{
				"error": message,
				"code":  domain.Code(err),
			})
		}
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": message,
		"rsvp":    rsvp,
	})
}

func (h *Handler) HandleCancelRSVP(c fiber.Ctx) error {
	rsvpID, err := strconv.ParseUint(c.Params("rid"), 10, 64)
	if err != nil {
		return h.fail(c, domain.ErrRSVPNotFound)
	}
	if err := h.rsvpUseCase.CancelRSVP(c.Context(), c.Params("id"), uint(rsvpID)); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListRSVPs liste les réservations d'un événement du créateur connecté.
func (h *Handler) HandleListRSVPs(c fiber.Ctx) error {
	rsvps, err := h.rsvpUseCase.ListByEvent(c.Context(), userID(c), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"rsvps": rsvps})
}
