package handlers

import (
	"context"
	"time"

	"notes-api/app"

	"github.com/gofiber/fiber/v2"
)

func Health(c *fiber.Ctx) error {
	return success(c, fiber.Map{"status": "ok"})
}

// Ready reports whether the database answers a ping
func Ready(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := a.DB.PingContext(ctx); err != nil {
			a.Logger.Warn("readiness check failed", "error", err)
			return serviceUnavailable(c, "database not ready")
		}

		return success(c, fiber.Map{"status": "ready"})
	}
}
