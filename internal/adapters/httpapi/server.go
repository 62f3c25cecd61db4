package httpapi

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/sirupsen/logrus"
)

// Server is the HTTP adapter: a Fiber app plus the wiring of its routes.
type Server struct {
	app  *fiber.App
	addr string
	log  *logrus.Entry
}

// NewServer builds the Fiber app with its middleware chain and registers the
// API routes.
func NewServer(addr string, h *Handler, sessions SessionStarter, log *logrus.Entry) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "liveline API",
		ErrorHandler: errorHandler,
	})

	app.Use(requestid.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{fiber.HeaderAuthorization, fiber.HeaderContentType, fiber.HeaderAcceptLanguage},
	}))

	registerRoutes(app, h, sessions)

	return &Server{app: app, addr: addr, log: log}
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	s.log.WithField("addr", s.addr).Info("Démarrage du serveur HTTP")
	return s.app.Listen(s.addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// errorHandler renders fiber-level errors (bad routes, unreadable bodies) in
// the same JSON shape as domain failures.
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	return c.Status(code).JSON(fiber.Map{"error": message})
}
