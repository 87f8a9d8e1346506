package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	app := fiber.New()
	app.Use(StructuredLogger(logger))

	var seenID string
	app.Get("/ok", func(c *fiber.Ctx) error {
		seenID = GetRequestID(c)
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)

	assert.NotEmpty(t, seenID)
	assert.Equal(t, seenID, resp.Header.Get("X-Request-ID"))
	assert.Contains(t, buf.String(), "request completed")
	assert.Contains(t, buf.String(), "request_id="+seenID)

	buf.Reset()
	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "client error")
}

func TestSecurity(t *testing.T) {
	app := fiber.New()
	app.Use(Security())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
}

func TestResponseStatus(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		assert.Equal(t, fiber.StatusOK, responseStatus(c, nil))
		assert.Equal(t, fiber.StatusTeapot, responseStatus(c, fiber.NewError(fiber.StatusTeapot, "tea")))
		assert.Equal(t, fiber.StatusInternalServerError, responseStatus(c, errors.New("boom")))
		return nil
	})

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
}
