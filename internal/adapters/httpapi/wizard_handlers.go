package httpapi

import (
	"github.com/gofiber/fiber/v3"

	"liveline/internal/adapters/httpapi/dto"
	"liveline/internal/domain"
	"liveline/internal/domain/entities"
	"liveline/internal/wizard"
)

// sessionState is the wizard payload returned after every transition: current
// step plus the full draft, so the client never carries state of its own.
func sessionState(s *wizard.Session) fiber.Map {
	step := s.Step()
	return fiber.Map{
		"sessionId": s.ID,
		"eventId":   s.EventID,
		"step":      int(step),
		"stepName":  step.String(),
		"draft":     s.Draft(),
	}
}

// HandleStartWizard ouvre une session de création avec le brouillon par défaut.
func (h *Handler) HandleStartWizard(c fiber.Ctx) error {
	s := h.registry.Create(userID(c), entities.NewEventDraft(), "")
	return c.Status(fiber.StatusCreated).JSON(sessionState(s))
}

// HandleStartEditWizard ouvre une session d'édition hydratée depuis un
// événement publié.
func (h *Handler) HandleStartEditWizard(c fiber.Ctx) error {
	eventID := c.Params("id")
	draft, err := h.eventUseCase.LoadForEdit(c.Context(), userID(c), eventID)
	if err != nil {
		return h.fail(c, err)
	}
	s := h.registry.Create(userID(c), draft, eventID)
	return c.Status(fiber.StatusCreated).JSON(sessionState(s))
}

func (h *Handler) HandleGetWizard(c fiber.Ctx) error {
	s, err := h.registry.Get(c.Params("sid"), userID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(sessionState(s))
}

func (h *Handler) HandleSetField(c fiber.Ctx) error {
	s, err := h.registry.Get(c.Params("sid"), userID(c))
	if err != nil {
		return h.fail(c, err)
	}
	var req dto.SetFieldRequest
	if err := c.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "corps de requête illisible")
	}
	if err := dto.Validate(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if _, err := s.SetField(req.Field, req.Value); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(sessionState(s))
}

// HandleNext valide l'étape courante puis avance; en cas de refus l'étape ne
// bouge pas et la raison localisée est renvoyée.
func (h *Handler) HandleNext(c fiber.Ctx) error {
	s, err := h.registry.Get(c.Params("sid"), userID(c))
	if err != nil {
		return h.fail(c, err)
	}
	step, res := s.Next()
	if !res.OK {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": h.translator.T(locale(c), "wizard."+string(res.Reason), nil),
			"code":  string(res.Reason),
			"step":  int(step),
		})
	}
	return c.JSON(sessionState(s))
}

func (h *Handler) HandlePrevious(c fiber.Ctx) error {
	s, err := h.registry.Get(c.Params("sid"), userID(c))
	if err != nil {
		return h.fail(c, err)
	}
	s.Previous()
	return c.JSON(sessionState(s))
}

func (h *Handler) HandleJump(c fiber.Ctx) error {
	s, err := h.registry.Get(c.Params("sid"), userID(c))
	if err != nil {
		return h.fail(c, err)
	}
	var req dto.JumpRequest
	if err := c.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "corps de requête illisible")
	}
	if _, err := s.JumpTo(wizard.Step(req.Step)); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(sessionState(s))
}

// HandleReview projette le brouillon en sections relisibles, avec les
// libellés localisés.
func (h *Handler) HandleReview(c fiber.Ctx) error {
	s, err := h.registry.Get(c.Params("sid"), userID(c))
	if err != nil {
		return h.fail(c, err)
	}
	sections := s.Review(h.loc)
	loc := locale(c)
	rendered := make([]fiber.Map, len(sections))
	for i, section := range sections {
		fields := make([]fiber.Map, len(section.Fields))
		for j, f := range section.Fields {
			value := f.Value
			if f.ValueKey != "" {
				value = h.translator.T(loc, f.ValueKey, nil)
			}
			fields[j] = fiber.Map{
				"label": h.translator.T(loc, f.LabelKey, nil),
				"value": value,
			}
		}
		rendered[i] = fiber.Map{
			"key":    section.Key,
			"step":   int(section.Step),
			"fields": fields,
		}
	}
	return c.JSON(fiber.Map{"sections": rendered})
}

// HandlePublish crée ou met à jour l'événement depuis le brouillon. La
// session est détruite en cas de succès; en cas d'échec elle est réarmée et
// le brouillon reste intact pour un nouvel essai.
func (h *Handler) HandlePublish(c fiber.Ctx) error {
	s, err := h.registry.Get(c.Params("sid"), userID(c))
	if err != nil {
		return h.fail(c, err)
	}
	if s.Step() != wizard.StepReview {
		return h.fail(c, domain.ErrStepOutOfRange)
	}
	draft, err := s.BeginPublish()
	if err != nil {
		return h.fail(c, err)
	}

	var event *entities.Event
	if s.EventID == "" {
		event, err = h.eventUseCase.CreateFromDraft(c.Context(), userID(c), draft)
	} else {
		event, err = h.eventUseCase.UpdateFromDraft(c.Context(), userID(c), s.EventID, draft)
	}
	if err != nil {
		s.EndPublish()
		return h.fail(c, err)
	}

	h.registry.Delete(s.ID)
	status := fiber.StatusCreated
	if s.EventID != "" {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(fiber.Map{
		"event":            event,
		"confirmationPath": "/events/" + event.ID + "/confirmation",
	})
}

// HandleCancelWizard jette le brouillon.
func (h *Handler) HandleCancelWizard(c fiber.Ctx) error {
	s, err := h.registry.Get(c.Params("sid"), userID(c))
	if err != nil {
		return h.fail(c, err)
	}
	h.registry.Delete(s.ID)
	return c.SendStatus(fiber.StatusNoContent)
}
