package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/accounts/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, user *handlers.UserHandler, health *handlers.HealthHandler, authMW fiber.Handler) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	u := app.Group("/user")
	u.Post("/create", user.Create)
	u.Post("/token", user.Token)
	u.Get("/me", authMW, user.Me)
	u.Patch("/me", authMW, user.UpdateMe)
	// POST is not permitted on the profile resource
	u.Post("/me", user.MeNotAllowed)
	u.Post("/logout", authMW, user.Logout)
	u.Get("/list", authMW, user.List)
}
