package middleware

import (
	"errors"
	"strconv"

	"notes-api/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request counts and latency per matched route
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}

		done := metrics.RequestStarted()
		err := c.Next()

		status := responseStatus(c, err)

		done(c.Method(), c.Route().Path, strconv.Itoa(status))
		return err
	}
}

// responseStatus predicts the status the error handler will write for err
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var e *fiber.Error
	if errors.As(err, &e) {
		return e.Code
	}
	return fiber.StatusInternalServerError
}
