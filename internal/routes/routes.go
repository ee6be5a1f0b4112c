package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/B7A9F/exercices-api/internal/auth"
	"github.com/B7A9F/exercices-api/internal/debug"
	"github.com/B7A9F/exercices-api/internal/handlers"
	"github.com/B7A9F/exercices-api/internal/middleware"
)

// Deps carries everything route registration needs.
type Deps struct {
	Users     *handlers.UserHandler
	Exercices *handlers.ExerciceHandler
	Health    *handlers.HealthHandler
	Issuer    *auth.TokenIssuer
}

// Register binds all endpoints onto the app.
func Register(app *fiber.App, deps Deps) {
	api := app.Group("/api")

	api.Get("/health", deps.Health.Health)

	// Authentication endpoints are public but rate limited.
	users := api.Group("/users")
	users.Post("/register", middleware.AuthRateLimiter(), deps.Users.Register)
	users.Post("/login", middleware.AuthRateLimiter(), deps.Users.Login)

	// Everything under /api/exercices requires a bearer token.
	ex := api.Group("/exercices")
	ex.Use(middleware.ValidateToken(deps.Issuer))
	ex.Get("/", deps.Exercices.GetAll)
	ex.Post("/", deps.Exercices.Create)
	ex.Get("/local", deps.Exercices.GetLocal)
	ex.Get("/remote", deps.Exercices.GetRemote)
	ex.Get("/:id", deps.Exercices.Get)
	ex.Put("/:id", deps.Exercices.Update)
	ex.Delete("/:id", deps.Exercices.Delete)

	// WebSocket for the debug dashboard.
	app.Use("/ws/debug", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/debug", websocket.New(func(c *websocket.Conn) {
		debug.HandleWebSocketFiber(c)
	}))
}
