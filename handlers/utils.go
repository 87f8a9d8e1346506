package handlers

import (
	"notes-api/app"
	"notes-api/middleware"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func unprocessable(c *fiber.Ctx, detail interface{}) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": detail})
}

func serviceUnavailable(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"detail": message})
}

// serverErrorWithDetails logs err and answers with message only
func serverErrorWithDetails(a *app.App, c *fiber.Ctx, message string, err error) error {
	a.Logger.Error("server error",
		"request_id", middleware.GetRequestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": message})
}
