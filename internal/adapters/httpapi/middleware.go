package httpapi

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"

	"liveline/internal/application"
	"liveline/internal/domain"
)

// SessionStarter verifies a bearer token and provisions the creator profile
// once per session start.
type SessionStarter interface {
	StartSession(ctx context.Context, token string) (application.Identity, error)
}

// Protect retourne un wrapper qui vérifie le jeton du fournisseur d'identité
// hébergé et pose l'identifiant du créateur dans les locals de la requête
// avant de passer la main au handler. Composition explicite plutôt que
// middleware de groupe: les routes publiques partagent le même préfixe.
func Protect(sessions SessionStarter, h *Handler) func(fiber.Handler) fiber.Handler {
	return func(next fiber.Handler) fiber.Handler {
		return func(c fiber.Ctx) error {
			header := c.Get(fiber.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				return h.fail(c, domain.ErrInvalidToken)
			}
			id, err := sessions.StartSession(c.Context(), strings.TrimSpace(token))
			if err != nil {
				return h.fail(c, err)
			}
			c.Locals("user_id", id.UserID)
			return next(c)
		}
	}
}
