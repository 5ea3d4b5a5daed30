package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/simak-go-api/internal/config"
	"github.com/noah-isme/simak-go-api/internal/handler"
	"github.com/noah-isme/simak-go-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler       *handler.AuthHandler
	StudentHandler    *handler.StudentHandler
	DashboardHandler  *handler.DashboardHandler
	SessionMiddleware fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(app)
	}

	// Use provided session middleware, or a no-op if nil
	sessionMiddleware := deps.SessionMiddleware
	if sessionMiddleware == nil {
		sessionMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	protected := app.Group("", sessionMiddleware)
	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(protected)
	}
	if deps.DashboardHandler != nil {
		deps.DashboardHandler.Register(protected)
	}
}
